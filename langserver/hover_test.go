package langserver

import "testing"

func TestHoverTextRegister(t *testing.T) {
	text := HoverText("X")
	if text == "" {
		t.Fatal("expected hover text for register X")
	}
}

func TestHoverTextDirective(t *testing.T) {
	text := HoverText("resb")
	if text == "" {
		t.Fatal("expected hover text for RESB")
	}
}

func TestHoverTextInstruction(t *testing.T) {
	text := HoverText("+lda")
	if text == "" {
		t.Fatal("expected hover text for LDA")
	}
}

func TestHoverTextUnknown(t *testing.T) {
	if text := HoverText("NOTATHING"); text != "" {
		t.Fatalf("expected no hover text, got %q", text)
	}
}
