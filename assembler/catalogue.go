package assembler

import "strings"

// OpDesc describes one SIC/XE instruction mnemonic: its opcode byte (upper
// six bits significant, low two bits zero at rest) and the formats the
// format selector may try, in the order it should try them.
type OpDesc struct {
	Mnemonic        string
	Opcode          byte
	PermittedFormats []int
}

// format3or4 is the common case: try format 3 first, upgrading to format 4
// either because the source wrote a '+' prefix or because format 3's
// displacement doesn't fit.
var format3or4 = []int{3, 4}

// operations is the static mnemonic -> opcode descriptor table for the
// SIC/XE instruction set. Opcodes are the standard published byte values;
// each already carries zero in its low two bits.
var operations = buildCatalogue()

func buildCatalogue() map[string]OpDesc {
	ops := []OpDesc{
		// Format 1
		{"FIX", 0xC4, []int{1}},
		{"FLOAT", 0xC0, []int{1}},
		{"HIO", 0xF4, []int{1}},
		{"NORM", 0xC8, []int{1}},
		{"SIO", 0xF0, []int{1}},
		{"TIO", 0xF8, []int{1}},

		// Format 2
		{"ADDR", 0x90, []int{2}},
		{"CLEAR", 0xB4, []int{2}},
		{"COMPR", 0xA0, []int{2}},
		{"DIVR", 0x9C, []int{2}},
		{"MULR", 0x98, []int{2}},
		{"RMO", 0xAC, []int{2}},
		{"SHIFTL", 0xA4, []int{2}},
		{"SHIFTR", 0xA8, []int{2}},
		{"SUBR", 0x94, []int{2}},
		{"SVC", 0xB0, []int{2}},
		{"TIXR", 0xB8, []int{2}},

		// Format 3/4
		{"ADD", 0x18, format3or4},
		{"ADDF", 0x58, format3or4},
		{"AND", 0x40, format3or4},
		{"COMP", 0x28, format3or4},
		{"COMPF", 0x88, format3or4},
		{"DIV", 0x24, format3or4},
		{"DIVF", 0x64, format3or4},
		{"J", 0x3C, format3or4},
		{"JEQ", 0x30, format3or4},
		{"JGT", 0x34, format3or4},
		{"JLT", 0x38, format3or4},
		{"JSUB", 0x48, format3or4},
		{"LDA", 0x00, format3or4},
		{"LDB", 0x68, format3or4},
		{"LDCH", 0x50, format3or4},
		{"LDF", 0x70, format3or4},
		{"LDL", 0x08, format3or4},
		{"LDS", 0x6C, format3or4},
		{"LDT", 0x74, format3or4},
		{"LDX", 0x04, format3or4},
		{"LPS", 0xD0, format3or4},
		{"MUL", 0x20, format3or4},
		{"MULF", 0x60, format3or4},
		{"OR", 0x44, format3or4},
		{"RD", 0xD8, format3or4},
		{"RSUB", 0x4C, format3or4},
		{"SSK", 0xEC, format3or4},
		{"STA", 0x0C, format3or4},
		{"STB", 0x78, format3or4},
		{"STCH", 0x54, format3or4},
		{"STF", 0x80, format3or4},
		{"STI", 0xD4, format3or4},
		{"STL", 0x14, format3or4},
		{"STS", 0x7C, format3or4},
		{"STSW", 0xE8, format3or4},
		{"STT", 0x84, format3or4},
		{"STX", 0x10, format3or4},
		{"SUB", 0x1C, format3or4},
		{"SUBF", 0x5C, format3or4},
		{"TD", 0xE0, format3or4},
		{"TIX", 0x2C, format3or4},
		{"WD", 0xDC, format3or4},
	}

	table := make(map[string]OpDesc, len(ops))
	for _, op := range ops {
		table[op.Mnemonic] = op
	}
	return table
}

// lookupOp returns the OpDesc for a mnemonic, case-insensitively.
func lookupOp(mnemonic string) (OpDesc, bool) {
	op, ok := operations[strings.ToUpper(mnemonic)]
	return op, ok
}

// Lookup exposes the mnemonic catalogue to callers outside the package
// (the listing/langserver tooling that describes a mnemonic without
// assembling anything).
func Lookup(mnemonic string) (OpDesc, bool) {
	return lookupOp(mnemonic)
}

// IsDirective exposes directive-name recognition to callers outside the
// package, for the same reason as Lookup.
func IsDirective(mnemonic string) bool {
	return isDirective(mnemonic)
}

// directiveSet names the recognized assembler directives. Anything outside
// this set and outside the OpDesc table is an unresolvable mnemonic.
var directiveSet = map[string]bool{
	"BYTE":  true,
	"WORD":  true,
	"RESB":  true,
	"RESW":  true,
	"START": true,
	"END":   true,
}

// isDirective reports whether mnemonic names a directive, case-insensitively.
func isDirective(mnemonic string) bool {
	return directiveSet[strings.ToUpper(mnemonic)]
}
