package langserver

import (
	"fmt"
	"strings"

	"github.com/sicxeasm/sicxe/registers"
)

// directiveHover gives a one-line description per directive. The
// instruction set itself is large enough that its descriptions are
// generated from the catalogue (see instructionHover) rather than
// hand-written one by one.
var directiveHover = map[string]string{
	"BYTE":  "BYTE — one or more literal bytes at the current location.",
	"WORD":  "WORD — a 3-byte big-endian literal at the current location.",
	"RESB":  "RESB n — reserve n zero bytes.",
	"RESW":  "RESW n — reserve 3n zero bytes.",
	"START": "START n — reserves n bytes at the current location; does not set a load address.",
	"END":   "END — marks the end of the program; emits nothing.",
}

// registerHover describes a register name.
func registerHover(name string) (string, bool) {
	code, ok := registers.Lookup(name)
	if !ok {
		return "", false
	}
	if name == registers.Indexing {
		return fmt.Sprintf("Register `%s` (code %d) — the indexing register.", name, code), true
	}
	return fmt.Sprintf("Register `%s` (code %d).", name, code), true
}

// HoverText returns hover text for a token under the cursor: a register,
// directive, or instruction mnemonic name. The empty string means nothing
// is known about the token.
func HoverText(token string) string {
	upper := strings.ToUpper(strings.TrimPrefix(token, "+"))

	if text, ok := registerHover(upper); ok {
		return text
	}
	if text, ok := directiveHover[upper]; ok {
		return text
	}
	if text, ok := instructionHover(upper); ok {
		return text
	}
	return ""
}
