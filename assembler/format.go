package assembler

import "github.com/sicxeasm/sicxe/registers"

// lineFormat chooses the instruction format for a line: it looks up the
// mnemonic, then walks its permitted-formats sequence in order, returning
// the first format whose operand shape validates.
//
// lineFormat never consults resolved symbol addresses except through
// operandAddress, whose pass-one behavior (undefined symbol resolves to the
// current address) keeps format selection stable across both passes for
// every definable symbol.
func lineFormat(line Line, s *State) (int, error) {
	op, ok := lookupOp(line.Mnemonic.Name)
	if !ok {
		return 0, ErrUnknownMnemonic
	}

	for _, format := range op.PermittedFormats {
		switch format {
		case 1:
			if len(line.Operands) == 0 {
				return 1, nil
			}
		case 2:
			if validFormat2Operands(line.Operands) {
				return 2, nil
			}
		case 3:
			if !line.Mnemonic.Extended && validFormat3(line, s) {
				return 3, nil
			}
		case 4:
			return 4, nil
		}
	}
	return 0, ErrOperandShape
}

// validFormat2Operands reports whether 1 or 2 operands each convert to a
// 4-bit register/literal code.
func validFormat2Operands(operands []Operand) bool {
	if len(operands) != 1 && len(operands) != 2 {
		return false
	}
	for _, op := range operands {
		if _, ok := registerCode(op); !ok {
			return false
		}
	}
	return true
}

// registerCode converts an operand to a 4-bit format-2 code: a register
// name via the register table, or a literal integer cast to byte.
func registerCode(op Operand) (uint8, bool) {
	if op.IsSymbol() {
		return registers.Lookup(op.Symbol)
	}
	return uint8(op.Literal), true
}

// validFormat3 is format 3's acceptance test in the format selector.
// Operand-less lines and absolute-required operands are accepted outright.
//
// Otherwise the test is disp >= -2048 OR disp < 4096. Every integer
// satisfies at least one side of that OR, so the selector accepts format 3
// for every displacement; an out-of-range displacement is caught only by
// encodeFormat3, which then upgrades to format 4. The OR is kept as written
// rather than narrowed to -2048 <= disp < 4096 — see DESIGN.md.
func validFormat3(line Line, s *State) bool {
	if len(line.Operands) == 0 {
		return true
	}
	op := line.Operands[0]
	if isAbsoluteRequired(op) {
		return true
	}
	addr := operandAddress(op, s)
	disp := int64(s.getAddress()) - int64(addr)
	return disp >= -2048 || disp < 4096
}
