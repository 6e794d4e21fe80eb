// Package registers holds the SIC/XE register name table consumed by the
// assembler's format-2 encoder and its indexing-register (x-bit) check.
package registers

// byName maps a SIC/XE register mnemonic to its 4-bit code.
var byName = map[string]uint8{
	"A":  0,
	"X":  1,
	"L":  2,
	"B":  3,
	"S":  4,
	"T":  5,
	"F":  6,
	"PC": 8,
	"SW": 9,
}

// Indexing is the register whose presence as a second format-3/4 operand
// sets the x (indexed addressing) flag.
const Indexing = "X"

// IndexingCode is Indexing's 4-bit code.
const IndexingCode uint8 = 1

// Lookup returns a register's 4-bit code and whether name names a register.
func Lookup(name string) (uint8, bool) {
	code, ok := byName[name]
	return code, ok
}
