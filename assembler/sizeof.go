package assembler

// sizeofLine predicts a line's emitted byte count without encoding it,
// trying the instruction strategy first and falling back to the directive
// size table. The returned bool is false when neither strategy matches.
func sizeofLine(line Line, s *State) (Address, bool) {
	if !isDirective(line.Mnemonic.Name) {
		if format, err := lineFormat(line, s); err == nil {
			return Address(format), true
		}
		if _, ok := lookupOp(line.Mnemonic.Name); ok {
			// Matched as an instruction but no format validated: size is
			// still undetermined, but this isn't a directive either.
			return 0, false
		}
	}

	size, err := directiveSize(line.Mnemonic.Name, line.Operands)
	if err != nil {
		return 0, false
	}
	return size, true
}
