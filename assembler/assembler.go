// Package assembler is the core of a two-pass SIC/XE assembler: symbol
// binding, format selection, and bit-exact instruction/directive encoding.
// It consumes an already-parsed []Line (the lexer/parser is an external
// collaborator, see package source) and produces one big-endian byte vector
// per input line.
package assembler

// Assemble runs both passes over lines and returns one byte vector per
// line, in input order. Failure is modeled as plain absence: a non-nil
// error is the result, with no successful byte vectors alongside it.
//
// First pass silently stops binding labels at the first line it cannot
// size, rather than surfacing that as an error of its own (preserved as a
// documented behavior, see DESIGN.md). That line then almost always fails
// to encode in the second pass for the same reason, which is where the
// failure actually surfaces to the caller.
func Assemble(lines []Line) ([][]byte, error) {
	s := newState()

	firstPass(lines, s)

	return secondPass(lines, s)
}
