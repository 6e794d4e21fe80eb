package assembler

import "errors"

// Sentinel errors the core can return. Callers can classify failures against
// these with errors.Is rather than parsing message text. The
// core itself never branches on which sentinel it returned.
var (
	// ErrUnknownMnemonic means the mnemonic matches neither an OpDesc nor a directive.
	ErrUnknownMnemonic = errors.New("assembler: unknown mnemonic")
	// ErrOperandShape means no permitted format validated the operand shape.
	ErrOperandShape = errors.New("assembler: operand shape matches no permitted format")
	// ErrBadRegisterOperand means a format-2 operand didn't convert to a 4-bit code.
	ErrBadRegisterOperand = errors.New("assembler: operand is not a valid register or literal byte")
	// ErrBadDirectiveOperand means a directive received malformed operands.
	ErrBadDirectiveOperand = errors.New("assembler: malformed directive operand")
)
