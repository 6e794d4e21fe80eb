// Package source is the lexer/parser that produces the []assembler.Line
// stream the core consumes, kept external to the core itself so the core
// never depends on concrete source syntax. Comment stripping, label
// detection, and mnemonic/operand splitting follow the same shape as a
// traditional line-oriented assembler parser, adapted to SIC/XE's
// column-style labels, the '+' extended-format prefix, and '#'/'@'
// addressing-mode sigils. Both cmd/sicasm and langserver import this
// package rather than each growing their own copy.
package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sicxeasm/sicxe/assembler"
)

// ParseError names the 1-based source line a parse failure occurred on.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse scans SIC/XE assembly text into a slice of assembler.Line values.
// Lines are returned in source order, one per non-blank, non-comment input
// line. A comment is any line whose first non-space character is '.'.
// Inline comments are not supported — '.' never appears inside a SIC/XE
// operand, so only whole-line comments are recognized.
func Parse(text string) ([]assembler.Line, error) {
	var lines []assembler.Line

	for i, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, ".") {
			continue
		}

		fields := strings.Fields(line)

		var label string
		if len(fields) > 1 && !looksLikeMnemonic(fields[0]) {
			label = fields[0]
			fields = fields[1:]
		}

		mnemonicTok := fields[0]
		extended := strings.HasPrefix(mnemonicTok, "+")
		name := strings.ToUpper(strings.TrimPrefix(mnemonicTok, "+"))

		var operands []assembler.Operand
		if len(fields) > 1 {
			operandStr := strings.Join(fields[1:], "")
			for _, tok := range strings.Split(operandStr, ",") {
				op, err := parseDirectiveAwareOperand(name, tok)
				if err != nil {
					return nil, &ParseError{Line: i + 1, Err: err}
				}
				operands = append(operands, op)
			}
		}

		lines = append(lines, assembler.Line{
			Label:    label,
			Mnemonic: assembler.Mnemonic{Name: name, Extended: extended},
			Operands: operands,
		})
	}

	return lines, nil
}

// looksLikeMnemonic reports whether tok names a known instruction or
// directive, used to decide whether a line's first field is a label.
func looksLikeMnemonic(tok string) bool {
	name := strings.ToUpper(strings.TrimPrefix(tok, "+"))
	if assembler.IsDirective(name) {
		return true
	}
	_, ok := assembler.Lookup(name)
	return ok
}

// parseDirectiveAwareOperand parses one operand for mnemonic name. Plain
// instruction operands use parseOperand's '#'/'@' sigils. BYTE's literal
// carries no sigil in classic source (BYTE X'F1', BYTE C'EOF') yet the core
// requires it tagged Immediate; WORD/RESB/RESW/START likewise carry no sigil
// but the core requires Simple. Those directives never take a symbol
// operand, so the sigil-less surface syntax is unambiguous here without
// needing the nixbpe-style addressing distinction real instructions have.
func parseDirectiveAwareOperand(name, tok string) (assembler.Operand, error) {
	switch name {
	case "BYTE":
		val, ok := parseLiteral(tok)
		if !ok {
			return assembler.Operand{}, fmt.Errorf("BYTE operand must be a literal: %q", tok)
		}
		return assembler.Operand{Literal: val, Mode: assembler.Immediate}, nil

	case "WORD", "RESB", "RESW", "START":
		val, ok := parseLiteral(tok)
		if !ok {
			return assembler.Operand{}, fmt.Errorf("%s operand must be a literal: %q", name, tok)
		}
		return assembler.Operand{Literal: val, Mode: assembler.Simple}, nil

	default:
		return parseOperand(tok)
	}
}

// parseOperand parses one operand: an optional '#' (Immediate) or '@'
// (Indirect) sigil, followed by a literal or a symbol name.
func parseOperand(tok string) (assembler.Operand, error) {
	mode := assembler.Simple
	switch {
	case strings.HasPrefix(tok, "#"):
		mode = assembler.Immediate
		tok = tok[1:]
	case strings.HasPrefix(tok, "@"):
		mode = assembler.Indirect
		tok = tok[1:]
	}

	if val, ok := parseLiteral(tok); ok {
		return assembler.Operand{Literal: val, Mode: mode}, nil
	}
	if tok == "" {
		return assembler.Operand{}, fmt.Errorf("empty operand")
	}
	return assembler.Operand{Symbol: strings.ToUpper(tok), Mode: mode}, nil
}

// parseLiteral recognizes decimal digits, 0x-prefixed hex, classic SIC/XE
// X'..' hex literals, and C'..' character literals (each character packed
// big-endian into one integer, matching how BYTE C'EOF' is conventionally
// written).
func parseLiteral(tok string) (int64, bool) {
	switch {
	case strings.HasPrefix(tok, "X'") && strings.HasSuffix(tok, "'"):
		v, err := strconv.ParseInt(tok[2:len(tok)-1], 16, 64)
		return v, err == nil

	case strings.HasPrefix(tok, "C'") && strings.HasSuffix(tok, "'"):
		var v int64
		for _, r := range tok[2 : len(tok)-1] {
			v = v<<8 | int64(byte(r))
		}
		return v, true

	case strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X"):
		v, err := strconv.ParseInt(tok[2:], 16, 64)
		return v, err == nil

	default:
		v, err := strconv.ParseInt(tok, 10, 64)
		return v, err == nil
	}
}
