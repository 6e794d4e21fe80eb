// Package listing renders the result of an assembly run — addresses, the
// bytes emitted per line, and the original source text — into a
// human-readable three-column trace, the conventional companion to an
// assembler's object-code output.
//
// Where a disassembler walks already-assembled bytes back into mnemonics,
// this package walks the assembler's own [][]byte result forward alongside
// the source lines it came from.
package listing

import (
	"fmt"
	"strings"
)

// Row is one listing line: the address the line started at, the bytes it
// emitted, and the source text it came from.
type Row struct {
	Address uint32
	Bytes   []byte
	Source  string
}

// Build pairs per-line byte vectors (as returned by assembler.Assemble)
// with their source text and starting addresses, accumulating the address
// the same way the core's second pass does: each row's address is the sum
// of every prior row's byte count, starting from origin.
func Build(origin uint32, sources []string, code [][]byte) []Row {
	rows := make([]Row, len(code))
	addr := origin
	for i, bytes := range code {
		src := ""
		if i < len(sources) {
			src = sources[i]
		}
		rows[i] = Row{Address: addr, Bytes: bytes, Source: src}
		addr += uint32(len(bytes))
	}
	return rows
}

// Render formats rows as fixed-width "address  hex-bytes  source" lines.
func Render(rows []Row) string {
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%04X  %-24s  %s\n", r.Address, hexBytes(r.Bytes), r.Source)
	}
	return b.String()
}

// hexBytes renders bytes as space-separated uppercase hex pairs.
func hexBytes(bytes []byte) string {
	if len(bytes) == 0 {
		return ""
	}
	parts := make([]string, len(bytes))
	for i, b := range bytes {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}
