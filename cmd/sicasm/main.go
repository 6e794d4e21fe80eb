// Command sicasm assembles a SIC/XE source file into an object byte stream
// and, optionally, a printable listing.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/grimdork/climate"

	"github.com/sicxeasm/sicxe/assembler"
	"github.com/sicxeasm/sicxe/listing"
	"github.com/sicxeasm/sicxe/source"
)

// options are the command's flags. climate fills this from os.Args using
// the struct tags.
type options struct {
	Input   string `short:"i" long:"input" help:"source file to assemble" required:"true"`
	Origin  string `short:"o" long:"origin" help:"origin address, decimal or 0x-prefixed hex" default:"0"`
	Object  string `short:"O" long:"object" help:"object file output path (stdout if empty)"`
	Listing bool   `short:"l" long:"listing" help:"print an assembly listing to stderr"`
}

func main() {
	var opts options
	if err := climate.Parse(&opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	text, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", opts.Input, err)
	}

	origin, err := parseAddress(opts.Origin)
	if err != nil {
		return fmt.Errorf("parsing origin: %w", err)
	}

	lines, err := source.Parse(string(text))
	if err != nil {
		return diagnose(opts.Input, err)
	}

	code, err := assembler.Assemble(lines)
	if err != nil {
		return diagnose(opts.Input, err)
	}

	if opts.Listing {
		rows := listing.Build(origin, sourceTexts(string(text)), code)
		fmt.Fprintln(os.Stderr, listing.Render(rows))
	}

	var object []byte
	for _, instr := range code {
		object = append(object, instr...)
	}

	if opts.Object == "" {
		_, err = os.Stdout.Write(object)
		return err
	}
	return os.WriteFile(opts.Object, object, 0644)
}

// sourceTexts pairs each non-blank, non-comment line back up with the rows
// Assemble produced, in the same order Parse walked the input.
func sourceTexts(text string) []string {
	var out []string
	for _, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, ".") {
			continue
		}
		out = append(out, line)
	}
	return out
}

func parseAddress(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	return uint32(v), err
}

// diagnose classifies a core or parse error for command-line reporting,
// kept here rather than in the assembler package: the core's job is to
// report that assembly failed, not to format that failure for a terminal.
func diagnose(file string, err error) error {
	if pe, ok := err.(*source.ParseError); ok {
		return fmt.Errorf("%s:%d: %w", file, pe.Line, pe.Err)
	}
	return fmt.Errorf("%s: assembly failed: %w", file, err)
}
