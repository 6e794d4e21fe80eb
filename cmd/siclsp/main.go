// Command siclsp starts the SIC/XE editor-assist server over stdio, TCP, or
// a browser-facing websocket.
package main

import (
	"fmt"
	"os"

	"github.com/grimdork/climate"

	"github.com/sicxeasm/sicxe/langserver"
)

type options struct {
	TCP       string `short:"t" long:"tcp" help:"listen for TCP connections on this address instead of stdio"`
	Websocket string `short:"w" long:"websocket" help:"listen for websocket connections on this address instead of stdio"`
}

func main() {
	var opts options
	if err := climate.Parse(&opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var err error
	switch {
	case opts.Websocket != "":
		err = langserver.ListenAndServeWebsocket(opts.Websocket)
	case opts.TCP != "":
		err = langserver.ListenAndServeTCP(opts.TCP)
	default:
		langserver.ListenAndServeStdio()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
