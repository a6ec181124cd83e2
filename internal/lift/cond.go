package lift

import (
	"github.com/scigolib/hbcdec/internal/bytecode"
	"github.com/scigolib/hbcdec/internal/jsast"
)

// condTest extracts the branch condition of a conditional jump as the
// expression that is true iff the branch is taken.
//
//	JmpTrue r        -> r
//	JmpFalse r       -> !r
//	JmpUndefined r   -> r === undefined
//	J<cmp> a, b      -> a <cmp> b
//	JNot<cmp> a, b   -> !(a <cmp> b)
//
// The N-suffixed numeric fast paths produce the same surface syntax.
func condTest(in bytecode.Instruction) (jsast.Expr, error) {
	reg := func(i int) jsast.Expr { return jsast.Reg(in.Reg(i)) }
	cmp := func(op string, negated bool) (jsast.Expr, error) {
		bin := &jsast.Binary{Op: op, L: reg(1), R: reg(2)}
		if negated {
			return &jsast.Unary{Op: "!", X: &jsast.Paren{X: bin}}, nil
		}
		return bin, nil
	}

	switch in.Op {
	case bytecode.OpJmpTrue, bytecode.OpJmpTrueLong:
		return reg(1), nil
	case bytecode.OpJmpFalse, bytecode.OpJmpFalseLong:
		return &jsast.Unary{Op: "!", X: reg(1)}, nil
	case bytecode.OpJmpUndefined, bytecode.OpJmpUndefinedLong:
		return &jsast.Binary{Op: "===", L: reg(1), R: &jsast.Ident{Name: "undefined"}}, nil

	case bytecode.OpJLess, bytecode.OpJLessLong,
		bytecode.OpJLessN, bytecode.OpJLessNLong:
		return cmp("<", false)
	case bytecode.OpJNotLess, bytecode.OpJNotLessLong,
		bytecode.OpJNotLessN, bytecode.OpJNotLessNLong:
		return cmp("<", true)

	case bytecode.OpJLessEqual, bytecode.OpJLessEqualLong,
		bytecode.OpJLessEqualN, bytecode.OpJLessEqualNLong:
		return cmp("<=", false)
	case bytecode.OpJNotLessEqual, bytecode.OpJNotLessEqualLong,
		bytecode.OpJNotLessEqualN, bytecode.OpJNotLessEqualNLong:
		return cmp("<=", true)

	case bytecode.OpJGreater, bytecode.OpJGreaterLong,
		bytecode.OpJGreaterN, bytecode.OpJGreaterNLong:
		return cmp(">", false)
	case bytecode.OpJNotGreater, bytecode.OpJNotGreaterLong,
		bytecode.OpJNotGreaterN, bytecode.OpJNotGreaterNLong:
		return cmp(">", true)

	case bytecode.OpJGreaterEqual, bytecode.OpJGreaterEqualLong,
		bytecode.OpJGreaterEqualN, bytecode.OpJGreaterEqualNLong:
		return cmp(">=", false)
	case bytecode.OpJNotGreaterEqual, bytecode.OpJNotGreaterEqualLong,
		bytecode.OpJNotGreaterEqualN, bytecode.OpJNotGreaterEqualNLong:
		return cmp(">=", true)

	case bytecode.OpJEqual, bytecode.OpJEqualLong:
		return cmp("==", false)
	case bytecode.OpJNotEqual, bytecode.OpJNotEqualLong:
		return cmp("!=", false)
	case bytecode.OpJStrictEqual, bytecode.OpJStrictEqualLong:
		return cmp("===", false)
	case bytecode.OpJStrictNotEqual, bytecode.OpJStrictNotEqualLong:
		return cmp("!==", false)
	}

	return nil, &StructuralAmbiguityError{
		Reason: "block tail " + in.Op.Name() + " is not a conditional branch",
	}
}
