package source

import (
	"testing"

	"github.com/sicxeasm/sicxe/assembler"
)

func TestParseBasicLine(t *testing.T) {
	lines, err := Parse("FIVE WORD 5")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	l := lines[0]
	if l.Label != "FIVE" || l.Mnemonic.Name != "WORD" {
		t.Errorf("got %+v", l)
	}
	if len(l.Operands) != 1 || l.Operands[0].Literal != 5 {
		t.Errorf("got operands %+v", l.Operands)
	}
}

func TestParseExtendedAndSigils(t *testing.T) {
	lines, err := Parse("+LDA #5\nSTCH @BUF")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !lines[0].Mnemonic.Extended {
		t.Error("expected +LDA to set Extended")
	}
	if lines[0].Operands[0].Mode != assembler.Immediate || lines[0].Operands[0].Literal != 5 {
		t.Errorf("got %+v", lines[0].Operands[0])
	}
	if lines[1].Operands[0].Mode != assembler.Indirect || lines[1].Operands[0].Symbol != "BUF" {
		t.Errorf("got %+v", lines[1].Operands[0])
	}
}

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	lines, err := Parse(". a comment\n\nRSUB\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].Mnemonic.Name != "RSUB" {
		t.Errorf("got %+v", lines)
	}
}

func TestParseTwoRegisterOperands(t *testing.T) {
	lines, err := Parse("COMPR A,X")
	if err != nil {
		t.Fatal(err)
	}
	ops := lines[0].Operands
	if len(ops) != 2 || ops[0].Symbol != "A" || ops[1].Symbol != "X" {
		t.Errorf("got %+v", ops)
	}
}

func TestParseCharacterLiteral(t *testing.T) {
	lines, err := Parse("BYTE C'AB'")
	if err != nil {
		t.Fatal(err)
	}
	if lines[0].Operands[0].Literal != 0x4142 {
		t.Errorf("got %#x, want 0x4142", lines[0].Operands[0].Literal)
	}
}
