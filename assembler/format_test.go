package assembler

import "testing"

func TestFormatSelector_ExtendedRejectsFormat3(t *testing.T) {
	s := newState()
	line := Line{Mnemonic: Mnemonic{Name: "LDA", Extended: true}, Operands: []Operand{lit(5, Immediate)}}
	format, err := lineFormat(line, s)
	if err != nil {
		t.Fatal(err)
	}
	if format != 4 {
		t.Errorf("extended mnemonic: got format %d, want 4", format)
	}
}

func TestFormatSelector_AbsoluteRequiredSkipsDisplacement(t *testing.T) {
	s := newState()
	s.setAddress(1_000_000) // would never fit a displacement field
	line := Line{Mnemonic: Mnemonic{Name: "LDA"}, Operands: []Operand{lit(5, Immediate)}}
	format, err := lineFormat(line, s)
	if err != nil {
		t.Fatal(err)
	}
	if format != 3 {
		t.Errorf("absolute-required operand: got format %d, want 3", format)
	}
}

func TestFormatSelector_Format2RequiresConvertibleOperands(t *testing.T) {
	s := newState()
	line := Line{Mnemonic: Mnemonic{Name: "CLEAR"}, Operands: []Operand{sym("NOTAREGISTER", Simple)}}
	_, err := lineFormat(line, s)
	if err == nil {
		t.Fatal("expected an error for an unconvertible format-2 operand")
	}
}

func TestFormatSelector_Format1RequiresNoOperands(t *testing.T) {
	s := newState()
	line := Line{Mnemonic: Mnemonic{Name: "FIX"}, Operands: []Operand{lit(1, Simple)}}
	_, err := lineFormat(line, s)
	if err == nil {
		t.Fatal("expected an error: FIX takes no operands")
	}
}

func TestSizeOracle_MatchesChosenFormat(t *testing.T) {
	s := newState()
	line := Line{Mnemonic: Mnemonic{Name: "CLEAR"}, Operands: []Operand{sym("A", Simple)}}
	size, ok := sizeofLine(line, s)
	if !ok || size != 2 {
		t.Errorf("CLEAR A: got %v, %v, want 2, true", size, ok)
	}
}

func TestFormat3UpgradesToFormat4OnOutOfRangeDisplacement(t *testing.T) {
	// Pass one predicts format 3 (undefined symbol resolves to current
	// address, disp 0). By pass two the symbol resolves far away, so the
	// encoder upgrades to format 4 and emits 4 bytes instead of the 3
	// pass one predicted — an acknowledged divergence between the two
	// passes' size predictions, see DESIGN.md.
	lines := []Line{
		{Mnemonic: Mnemonic{Name: "LDA"}, Operands: []Operand{sym("FAR", Simple)}},
	}
	s := newState()
	firstPass(lines, s)
	size, _ := sizeofLine(lines[0], s)
	if size != 3 {
		t.Fatalf("pass one predicted %d bytes, want 3", size)
	}

	s2 := newState()
	s2.defineSymbol("FAR", 1_000_000)
	bytes, err := encodeLine(lines[0], s2)
	if err != nil {
		t.Fatal(err)
	}
	if len(bytes) != 4 {
		t.Errorf("expected the format-4 upgrade to emit 4 bytes, got %d", len(bytes))
	}
}
