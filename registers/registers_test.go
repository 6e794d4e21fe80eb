package registers

import "testing"

func TestLookup(t *testing.T) {
	cases := []struct {
		name string
		code uint8
		ok   bool
	}{
		{"A", 0, true},
		{"X", 1, true},
		{"PC", 8, true},
		{"Q", 0, false},
	}
	for _, c := range cases {
		code, ok := Lookup(c.name)
		if ok != c.ok || (ok && code != c.code) {
			t.Errorf("Lookup(%q) = %d, %v; want %d, %v", c.name, code, ok, c.code, c.ok)
		}
	}
}

func TestIndexingCodeMatchesLookup(t *testing.T) {
	code, ok := Lookup(Indexing)
	if !ok || code != IndexingCode {
		t.Fatalf("Lookup(Indexing) = %d, %v; want %d, true", code, ok, IndexingCode)
	}
}
