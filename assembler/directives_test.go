package assembler

import "testing"

func TestMinimalBigEndianBytes(t *testing.T) {
	cases := []struct {
		value int64
		want  []byte
	}{
		{0, []byte{0x00}},
		{0x41, []byte{0x41}},
		{0x4142, []byte{0x41, 0x42}},
		{0x414243, []byte{0x41, 0x42, 0x43}},
	}
	for _, c := range cases {
		got := minimalBigEndianBytes(c.value)
		if len(got) != len(c.want) {
			t.Fatalf("value %#x: got % X, want % X", c.value, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("value %#x: got % X, want % X", c.value, got, c.want)
			}
		}
	}
}

func TestWordDirectiveTruncatesTo24Bits(t *testing.T) {
	s := newState()
	bytes, err := encodeLine(Line{
		Mnemonic: Mnemonic{Name: "WORD"},
		Operands: []Operand{lit(0x01_00_00_00+10, Simple)},
	}, s)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x00, 0x00, 0x0A}
	for i := range want {
		if bytes[i] != want[i] {
			t.Fatalf("got % X, want % X", bytes, want)
		}
	}
}

func TestStartTreatedAsReserve(t *testing.T) {
	s := newState()
	bytes, err := encodeLine(Line{
		Mnemonic: Mnemonic{Name: "START"},
		Operands: []Operand{lit(4, Simple)},
	}, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(bytes) != 4 {
		t.Fatalf("START 4: got %d bytes, want 4", len(bytes))
	}
}

func TestDirectiveRejectsMalformedOperand(t *testing.T) {
	s := newState()
	_, err := encodeLine(Line{
		Mnemonic: Mnemonic{Name: "BYTE"},
		Operands: []Operand{sym("NOTALITERAL", Immediate)},
	}, s)
	if err == nil {
		t.Fatal("expected BYTE with a symbolic operand to fail")
	}
}

func TestEndEmitsNothing(t *testing.T) {
	s := newState()
	bytes, err := encodeLine(Line{Mnemonic: Mnemonic{Name: "END"}}, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(bytes) != 0 {
		t.Fatalf("END: got %d bytes, want 0", len(bytes))
	}
}
