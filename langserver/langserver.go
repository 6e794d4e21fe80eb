package langserver

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"os"

	"github.com/sourcegraph/jsonrpc2"
)

// stdrwc adapts stdin/stdout to the io.ReadWriteCloser jsonrpc2 streams over.
type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

// Serve runs the language server over an already-established connection
// (stdio, a TCP socket, or a websocket-backed io.ReadWriteCloser) and blocks
// until the peer disconnects.
func Serve(rwc io.ReadWriteCloser) {
	conn := jsonrpc2.NewConn(context.Background(), jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{}), handler{})
	<-conn.DisconnectNotify()
}

// ListenAndServeStdio runs one server instance over the process's own
// stdin/stdout, the mode an editor spawns the server in as a child process.
func ListenAndServeStdio() {
	Serve(stdrwc{})
}

// ListenAndServeTCP accepts connections on addr and runs one server per
// connection, concurrently.
func ListenAndServeTCP(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer lis.Close()

	log.Printf("sicxe language server: listening on %s", addr)
	id := 0
	for {
		conn, err := lis.Accept()
		if err != nil {
			return err
		}
		id++
		connID := id
		log.Printf("sicxe language server: connection #%d accepted", connID)
		go func() {
			Serve(conn)
			log.Printf("sicxe language server: connection #%d closed", connID)
		}()
	}
}

type handler struct{}

func (handler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	switch req.Method {
	case "initialize":
		handleInitialize(conn, req)
	case "textDocument/didOpen":
		handleDidOpen(conn, req)
	case "textDocument/didChange":
		handleDidChange(conn, req)
	case "textDocument/diagnostic":
		handleDiagnostic(conn, req)
	case "textDocument/hover":
		handleHover(conn, req)
	case "textDocument/didClose":
		handleDidClose(conn, req)
	case "shutdown":
		conn.Reply(context.Background(), req.ID, nil)
	case "exit":
		conn.Close()
	}
}

func handleDidClose(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params TextDocumentIdentifier
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		return
	}
	delete(documents, params.URI)
}

func handleInitialize(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	result := InitializeResult{}
	result.Capabilities.TextDocumentSync = 1
	result.Capabilities.HoverProvider = true
	conn.Reply(context.Background(), req.ID, result)
}
