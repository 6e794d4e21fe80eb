package listing

import "testing"

func TestBuildAccumulatesAddress(t *testing.T) {
	code := [][]byte{{0x03, 0x20, 0x03}, {0x00, 0x00, 0x00}}
	sources := []string{"LDA FIVE", "RESB 3"}

	rows := Build(0x1000, sources, code)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Address != 0x1000 {
		t.Errorf("row 0 address = %#x, want 0x1000", rows[0].Address)
	}
	if rows[1].Address != 0x1003 {
		t.Errorf("row 1 address = %#x, want 0x1003", rows[1].Address)
	}
}

func TestRenderIncludesSourceText(t *testing.T) {
	rows := Build(0, []string{"RSUB"}, [][]byte{{0x4F, 0x00, 0x00}})
	out := Render(rows)
	if len(out) == 0 {
		t.Fatal("expected non-empty rendered listing")
	}
}
