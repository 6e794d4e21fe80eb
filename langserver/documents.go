package langserver

import (
	"context"
	"encoding/json"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/sicxeasm/sicxe/assembler"
	"github.com/sicxeasm/sicxe/source"
)

// document is the cached state for one open URI: its current text and the
// diagnostics produced by the most recent parse/assemble attempt.
type document struct {
	Text        string
	Diagnostics []Diagnostic
}

var documents = make(map[DocumentURI]document)

// assembleAndCache re-runs Parse+Assemble against uri's current text and
// stores the resulting diagnostics, replacing whatever was cached before.
func assembleAndCache(uri DocumentURI) []Diagnostic {
	doc := documents[uri]

	diagnostics := []Diagnostic{}
	lines, err := source.Parse(doc.Text)
	if err == nil {
		_, err = assembler.Assemble(lines)
	}
	if err != nil {
		diagnostics = append(diagnostics, diagnosticFromError(err))
	}

	doc.Diagnostics = diagnostics
	documents[uri] = doc
	return diagnostics
}

// diagnosticFromError locates a failure as precisely as the error allows: a
// *source.ParseError carries a 1-based source line, anything else (an
// assembler core error, which carries no position) is reported at line 0.
func diagnosticFromError(err error) Diagnostic {
	line := 0
	if pe, ok := err.(*source.ParseError); ok {
		line = pe.Line - 1
		if line < 0 {
			line = 0
		}
	}
	return Diagnostic{
		Range: TextRange{
			Start: TextPosition{Line: line, Character: 0},
			End:   TextPosition{Line: line, Character: 1 << 10},
		},
		Severity: 1,
		Message:  err.Error(),
	}
}

func replyError(conn *jsonrpc2.Conn, id jsonrpc2.ID, message string) {
	rpcErr := &jsonrpc2.Error{}
	rpcErr.SetError(message)
	conn.ReplyWithError(context.Background(), id, rpcErr)
}

func handleDidOpen(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params DidOpenTextDocumentParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		replyError(conn, req.ID, "invalid didOpen params")
		return
	}

	uri := params.TextDocument.URI
	documents[uri] = document{Text: params.TextDocument.Text}

	diagnostics := assembleAndCache(uri)
	conn.Notify(context.Background(), "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func handleDidChange(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params DidChangeTextDocumentParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		replyError(conn, req.ID, "invalid didChange params")
		return
	}
	if len(params.ContentChanges) == 0 {
		return
	}

	uri := params.TextDocument.URI
	doc := documents[uri]
	doc.Text = params.ContentChanges[len(params.ContentChanges)-1].Text
	documents[uri] = doc

	diagnostics := assembleAndCache(uri)
	conn.Notify(context.Background(), "textDocument/publishDiagnostics", PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func handleDiagnostic(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params TextDocumentIdentifier
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		replyError(conn, req.ID, "invalid diagnostic params")
		return
	}

	doc := documents[params.URI]
	conn.Reply(context.Background(), req.ID, PublishDiagnosticsParams{
		URI:         params.URI,
		Diagnostics: doc.Diagnostics,
	})
}

func handleHover(conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	var params TextDocumentPositionParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		replyError(conn, req.ID, "invalid hover params")
		return
	}

	doc := documents[params.TextDocument.URI]
	token := tokenAt(doc.Text, params.Position)
	text := HoverText(token)
	if text == "" {
		conn.Reply(context.Background(), req.ID, nil)
		return
	}

	conn.Reply(context.Background(), req.ID, Hover{
		Contents: MarkupContent{Kind: "plaintext", Value: text},
	})
}

// tokenAt extracts the whitespace-delimited token surrounding pos within
// text, stripped of SIC/XE's '+'/'#'/'@' prefix sigils so it can be looked
// up by bare mnemonic, register, or directive name.
func tokenAt(text string, pos TextPosition) string {
	line := lineOf(text, pos.Line)
	col := pos.Character
	if col > len(line) {
		col = len(line)
	}

	start, end := col, col
	for start > 0 && !isSep(line[start-1]) {
		start--
	}
	for end < len(line) && !isSep(line[end]) {
		end++
	}

	return trimSigils(line[start:end])
}

func lineOf(text string, n int) string {
	start := 0
	line := 0
	for i, r := range text {
		if line == n {
			for j := i; j < len(text); j++ {
				if text[j] == '\n' {
					return text[i:j]
				}
			}
			return text[i:]
		}
		if r == '\n' {
			line++
			start = i + 1
		}
	}
	if line == n {
		return text[start:]
	}
	return ""
}

func isSep(b byte) bool {
	return b == ' ' || b == '\t' || b == ','
}

func trimSigils(tok string) string {
	for len(tok) > 0 && (tok[0] == '+' || tok[0] == '#' || tok[0] == '@') {
		tok = tok[1:]
	}
	return tok
}
