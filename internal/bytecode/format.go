package bytecode

import (
	"fmt"
	"strings"
)

// RefResolver resolves a table-indexing operand to a display string.
// Returning false leaves the operand numeric.
type RefResolver func(ref RefKind, index uint32) (string, bool)

// Format renders an instruction as a listing line, annotating string,
// function, and bigint table operands through the resolver:
//
//	24  GetById r2, r0, 0, 14        ; "length"
//
// A nil resolver yields the plain Instruction.String form.
func Format(info InstructionInfo, resolver RefResolver) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%6d  %s", info.Offset, info.Instruction.String())

	if resolver == nil {
		return b.String()
	}
	var notes []string
	for i, operand := range info.Instruction.Op.Operands() {
		if operand.Ref == RefNone {
			continue
		}
		resolved, ok := resolver(operand.Ref, uint32(info.Instruction.Args[i]))
		if !ok {
			continue
		}
		switch operand.Ref {
		case RefString:
			notes = append(notes, fmt.Sprintf("%q", resolved))
		default:
			notes = append(notes, resolved)
		}
	}
	if len(notes) > 0 {
		fmt.Fprintf(&b, "\t; %s", strings.Join(notes, ", "))
	}
	return b.String()
}
