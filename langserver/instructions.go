package langserver

import (
	"fmt"
	"strings"

	"github.com/sicxeasm/sicxe/assembler"
)

// instructionHover describes an instruction mnemonic by its catalogue
// entry: opcode and permitted formats. Unlike directiveHover's hand-written
// table, this is derived from the same catalogue the core assembler
// consults, so it can never drift out of sync with what actually assembles.
func instructionHover(mnemonic string) (string, bool) {
	op, ok := assembler.Lookup(mnemonic)
	if !ok {
		return "", false
	}

	formats := make([]string, len(op.PermittedFormats))
	for i, f := range op.PermittedFormats {
		formats[i] = fmt.Sprintf("%d", f)
	}

	return fmt.Sprintf("%s — opcode 0x%02X, format %s.",
		op.Mnemonic, op.Opcode, strings.Join(formats, "/")), true
}
