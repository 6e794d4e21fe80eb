// Package langserver is a minimal editor-assist server for SIC/XE source:
// hover text for mnemonics, registers, and directives, plus diagnostics
// republished from a fresh assemble attempt on every edit. It speaks
// JSON-RPC 2.0 over stdio, TCP (via sourcegraph/jsonrpc2), or a browser
// WebSocket (via gorilla/websocket, adapted to the same io.ReadWriteCloser
// jsonrpc2 already expects).
package langserver

// DocumentURI identifies an open text document, as in the LSP spec.
type DocumentURI string

// TextPosition is a zero-based line/column pair.
type TextPosition struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// TextRange spans from Start to End within a document.
type TextRange struct {
	Start TextPosition `json:"start"`
	End   TextPosition `json:"end"`
}

// Diagnostic reports one problem found assembling a document.
type Diagnostic struct {
	Range    TextRange `json:"range"`
	Severity int       `json:"severity"`
	Message  string    `json:"message"`
}

// TextDocumentItem is the document payload sent with didOpen.
type TextDocumentItem struct {
	URI  DocumentURI `json:"uri"`
	Text string      `json:"text"`
}

// DidOpenTextDocumentParams is the payload of textDocument/didOpen.
type DidOpenTextDocumentParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

// TextDocumentIdentifier names a document by URI alone.
type TextDocumentIdentifier struct {
	URI DocumentURI `json:"uri"`
}

// TextDocumentContentChangeEvent carries a document's full replacement
// text; this server only registers full-document sync, not incremental
// ranges.
type TextDocumentContentChangeEvent struct {
	Text string `json:"text"`
}

// DidChangeTextDocumentParams is the payload of textDocument/didChange.
type DidChangeTextDocumentParams struct {
	TextDocument   TextDocumentIdentifier            `json:"textDocument"`
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

// PublishDiagnosticsParams is the server->client diagnostics push.
type PublishDiagnosticsParams struct {
	URI         DocumentURI  `json:"uri"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// TextDocumentPositionParams locates a cursor within a document, used by hover.
type TextDocumentPositionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     TextPosition           `json:"position"`
}

// MarkupContent is hover response body text.
type MarkupContent struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// Hover is the response to textDocument/hover.
type Hover struct {
	Contents MarkupContent `json:"contents"`
}

// ServerCapabilities is advertised in response to initialize.
type ServerCapabilities struct {
	TextDocumentSync int  `json:"textDocumentSync"`
	HoverProvider    bool `json:"hoverProvider"`
}

// InitializeResult is the response to the initialize request.
type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
}
