package langserver

import "testing"

func TestTokenAtFindsMnemonic(t *testing.T) {
	text := "FIVE WORD 5\nLDA FIVE"
	tok := tokenAt(text, TextPosition{Line: 1, Character: 1})
	if tok != "LDA" {
		t.Errorf("got %q, want LDA", tok)
	}
}

func TestTokenAtStripsSigils(t *testing.T) {
	text := "+LDA #5"
	tok := tokenAt(text, TextPosition{Line: 0, Character: 0})
	if tok != "LDA" {
		t.Errorf("got %q, want LDA", tok)
	}
}

func TestAssembleAndCacheReportsParseFailure(t *testing.T) {
	uri := DocumentURI("file:///bad.asm")
	documents[uri] = document{Text: "LDA #\n"}

	diagnostics := assembleAndCache(uri)
	if len(diagnostics) == 0 {
		t.Fatal("expected a diagnostic for the malformed operand")
	}
}

func TestAssembleAndCacheClearsOnFix(t *testing.T) {
	uri := DocumentURI("file:///fixed.asm")
	documents[uri] = document{Text: "LDA #\n"}
	if len(assembleAndCache(uri)) == 0 {
		t.Fatal("expected a diagnostic before the fix")
	}

	doc := documents[uri]
	doc.Text = "LDA #5\n"
	documents[uri] = doc

	diagnostics := assembleAndCache(uri)
	if len(diagnostics) != 0 {
		t.Errorf("expected no diagnostics for valid source, got %v", diagnostics)
	}
}
