package lift

import (
	"fmt"
	"strings"

	"github.com/scigolib/hbcdec/internal/bytecode"
	"github.com/scigolib/hbcdec/internal/hbc"
	"github.com/scigolib/hbcdec/internal/jsast"
)

func assign(lhs, rhs jsast.Expr) jsast.Stmt {
	return &jsast.ExprStmt{X: &jsast.Assign{L: lhs, R: rhs}}
}

func assignReg(dst uint32, rhs jsast.Expr) jsast.Stmt {
	return assign(jsast.Reg(dst), rhs)
}

func member(obj jsast.Expr, name string) jsast.Expr {
	return &jsast.Member{Obj: obj, Prop: &jsast.Ident{Name: name}}
}

func computed(obj, prop jsast.Expr) jsast.Expr {
	return &jsast.Member{Obj: obj, Prop: prop, Computed: true}
}

func call(callee jsast.Expr, args ...jsast.Expr) jsast.Expr {
	return &jsast.Call{Callee: callee, Args: args}
}

// bindCall renders the calling convention closure.bind(thisArg)(args…):
// the first explicit register of every Call* form is the receiver.
func bindCall(closure, thisArg jsast.Expr, args ...jsast.Expr) jsast.Expr {
	return &jsast.Call{
		Callee: call(member(closure, "bind"), thisArg),
		Args:   args,
	}
}

func num(v float64) jsast.Expr { return &jsast.Number{Value: v} }

// binaryOps maps arithmetic/logic/compare opcodes to their JavaScript
// operator. The N-suffixed numeric fast paths share the operator of
// their generic forms.
var binaryOps = map[bytecode.Opcode]string{
	bytecode.OpEq:         "==",
	bytecode.OpStrictEq:   "===",
	bytecode.OpNeq:        "!=",
	bytecode.OpStrictNeq:  "!==",
	bytecode.OpLess:       "<",
	bytecode.OpLessEq:     "<=",
	bytecode.OpGreater:    ">",
	bytecode.OpGreaterEq:  ">=",
	bytecode.OpAdd:        "+",
	bytecode.OpAddN:       "+",
	bytecode.OpSub:        "-",
	bytecode.OpSubN:       "-",
	bytecode.OpMul:        "*",
	bytecode.OpMulN:       "*",
	bytecode.OpDiv:        "/",
	bytecode.OpDivN:       "/",
	bytecode.OpMod:        "%",
	bytecode.OpLShift:     "<<",
	bytecode.OpRShift:     ">>",
	bytecode.OpURshift:    ">>>",
	bytecode.OpBitAnd:     "&",
	bytecode.OpBitXor:     "^",
	bytecode.OpBitOr:      "|",
	bytecode.OpInstanceOf: "instanceof",
	bytecode.OpIsIn:       "in",
}

// lowerBlock translates the straight-line instructions of one basic
// block into statements. Branch instructions lower to nothing here;
// structural recovery consumes them.
func lowerBlock(f *hbc.BytecodeFile, block []int, instructions []bytecode.InstructionInfo) ([]jsast.Stmt, error) {
	var stmts []jsast.Stmt
	for _, index := range block {
		info := instructions[index]
		out, err := lowerInstruction(f, info, stmts)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, out...)
	}
	return stmts, nil
}

// lowerInstruction maps one instruction to zero or more statements.
// prior holds the statements already lowered for the current block;
// the generic Call/Construct forms mine it for argument registers.
//
//nolint:maintidx // one arm per v93 opcode family; splitting would obscure the table
func lowerInstruction(f *hbc.BytecodeFile, info bytecode.InstructionInfo, prior []jsast.Stmt) ([]jsast.Stmt, error) {
	in := info.Instruction
	reg := func(i int) jsast.Expr { return jsast.Reg(in.Reg(i)) }
	one := func(s jsast.Stmt) ([]jsast.Stmt, error) { return []jsast.Stmt{s}, nil }
	noStmts := func() ([]jsast.Stmt, error) { return nil, nil }
	unimplemented := func() ([]jsast.Stmt, error) {
		return nil, &UnimplementedOpcodeError{Op: in.Op, Offset: info.Offset}
	}
	// Property names come from the string table; a dangling index is
	// container corruption, not a lift limitation.
	propName := func(argIndex int) (string, error) {
		idx := uint32(in.Args[argIndex])
		s, ok := f.GetString(idx)
		if !ok {
			return "", fmt.Errorf("%s at offset %d references missing string %d",
				in.Op.Name(), info.Offset, idx)
		}
		return s, nil
	}

	if op, ok := binaryOps[in.Op]; ok {
		return one(assignReg(in.Reg(0), &jsast.Binary{Op: op, L: reg(1), R: reg(2)}))
	}

	switch in.Op {
	// Moves and constants.
	case bytecode.OpMov, bytecode.OpMovLong:
		return one(assignReg(in.Reg(0), reg(1)))
	case bytecode.OpLoadConstUInt8, bytecode.OpLoadConstInt:
		return one(assignReg(in.Reg(0), num(float64(in.Args[1]))))
	case bytecode.OpLoadConstDouble:
		return one(assignReg(in.Reg(0), num(in.Double)))
	case bytecode.OpLoadConstZero:
		return one(assignReg(in.Reg(0), num(0)))
	case bytecode.OpLoadConstTrue:
		return one(assignReg(in.Reg(0), &jsast.Bool{Value: true}))
	case bytecode.OpLoadConstFalse:
		return one(assignReg(in.Reg(0), &jsast.Bool{Value: false}))
	case bytecode.OpLoadConstNull:
		return one(assignReg(in.Reg(0), &jsast.Null{}))
	case bytecode.OpLoadConstUndefined, bytecode.OpLoadConstEmpty:
		return one(assignReg(in.Reg(0), &jsast.Ident{Name: "undefined"}))
	case bytecode.OpLoadConstString, bytecode.OpLoadConstStringLongIndex:
		s, _ := f.GetString(uint32(in.Args[1]))
		return one(assignReg(in.Reg(0), &jsast.Str{Value: s}))

	// Unary operators.
	case bytecode.OpNegate:
		return one(assignReg(in.Reg(0), &jsast.Unary{Op: "-", X: reg(1)}))
	case bytecode.OpNot:
		return one(assignReg(in.Reg(0), &jsast.Unary{Op: "!", X: reg(1)}))
	case bytecode.OpBitNot:
		return one(assignReg(in.Reg(0), &jsast.Unary{Op: "~", X: reg(1)}))
	case bytecode.OpTypeOf:
		return one(assignReg(in.Reg(0), &jsast.Unary{Op: "typeof", X: reg(1)}))

	// Increment and decrement, as postfix updates when source and
	// destination coincide.
	case bytecode.OpInc:
		if in.Reg(0) == in.Reg(1) {
			return one(&jsast.ExprStmt{X: &jsast.Update{Op: "++", X: reg(1)}})
		}
		return one(assignReg(in.Reg(0), &jsast.Binary{Op: "+", L: reg(1), R: num(1)}))
	case bytecode.OpDec:
		if in.Reg(0) == in.Reg(1) {
			return one(&jsast.ExprStmt{X: &jsast.Update{Op: "--", X: reg(1)}})
		}
		return one(assignReg(in.Reg(0), &jsast.Binary{Op: "-", L: reg(1), R: num(1)}))

	// Coercions.
	case bytecode.OpToNumber:
		return one(assignReg(in.Reg(0), call(&jsast.Ident{Name: "Number"}, reg(1))))
	case bytecode.OpToInt32:
		return one(assignReg(in.Reg(0), &jsast.Binary{Op: "|", L: reg(1), R: num(0)}))
	case bytecode.OpAddEmptyString:
		return one(assignReg(in.Reg(0), &jsast.Binary{Op: "+", L: &jsast.Str{}, R: reg(1)}))

	// Object and array construction. Buffer-initialized literals lower
	// to empty literals; the serialized-literal buffers are not
	// expanded.
	case bytecode.OpNewObject, bytecode.OpNewObjectWithBuffer, bytecode.OpNewObjectWithBufferLong:
		return one(assignReg(in.Reg(0), &jsast.Object{}))
	case bytecode.OpNewArray, bytecode.OpNewArrayWithBuffer, bytecode.OpNewArrayWithBufferLong:
		return one(assignReg(in.Reg(0), &jsast.Array{}))
	case bytecode.OpNewObjectWithParent:
		return one(assignReg(in.Reg(0), call(member(&jsast.Ident{Name: "Object"}, "create"), reg(1))))

	// Property access by name.
	case bytecode.OpGetByIdShort, bytecode.OpGetById, bytecode.OpGetByIdLong,
		bytecode.OpTryGetById, bytecode.OpTryGetByIdLong:
		name, err := propName(3)
		if err != nil {
			return nil, err
		}
		return one(assignReg(in.Reg(0), member(reg(1), name)))
	case bytecode.OpPutById, bytecode.OpPutByIdLong,
		bytecode.OpTryPutById, bytecode.OpTryPutByIdLong:
		name, err := propName(3)
		if err != nil {
			return nil, err
		}
		return one(assign(member(reg(0), name), reg(1)))
	case bytecode.OpPutNewOwnByIdShort, bytecode.OpPutNewOwnById, bytecode.OpPutNewOwnByIdLong:
		name, err := propName(2)
		if err != nil {
			return nil, err
		}
		return one(assign(member(reg(0), name), reg(1)))
	case bytecode.OpDelById, bytecode.OpDelByIdLong:
		name, err := propName(2)
		if err != nil {
			return nil, err
		}
		return one(assignReg(in.Reg(0), &jsast.Unary{Op: "delete", X: member(reg(1), name)}))

	// Property access by value or index.
	case bytecode.OpGetByVal:
		return one(assignReg(in.Reg(0), computed(reg(1), reg(2))))
	case bytecode.OpPutByVal:
		return one(assign(computed(reg(0), reg(1)), reg(2)))
	case bytecode.OpDelByVal:
		return one(assignReg(in.Reg(0), &jsast.Unary{Op: "delete", X: computed(reg(1), reg(2))}))
	case bytecode.OpPutOwnByIndex, bytecode.OpPutOwnByIndexL:
		return one(assign(computed(reg(0), num(float64(in.Args[2]))), reg(1)))
	case bytecode.OpPutOwnByVal:
		if in.Flag(3) {
			return one(assign(computed(reg(0), reg(2)), reg(1)))
		}
		return one(&jsast.ExprStmt{X: call(
			member(&jsast.Ident{Name: "Object"}, "defineProperty"),
			reg(0), reg(2),
			&jsast.Object{Props: []jsast.Prop{
				{Key: "value", Value: reg(1)},
				{Key: "enumerable", Value: &jsast.Bool{Value: false}},
			}},
		)})
	case bytecode.OpPutOwnGetterSetterByVal:
		return one(&jsast.ExprStmt{X: call(
			member(&jsast.Ident{Name: "Object"}, "defineProperty"),
			reg(0), reg(1),
			&jsast.Object{Props: []jsast.Prop{
				{Key: "get", Value: reg(2)},
				{Key: "set", Value: reg(3)},
				{Key: "enumerable", Value: &jsast.Bool{Value: in.Flag(4)}},
			}},
		)})

	// Property enumeration.
	case bytecode.OpGetPNameList:
		return []jsast.Stmt{
			assignReg(in.Reg(2), num(0)),
			assignReg(in.Reg(0), call(member(&jsast.Ident{Name: "Object"}, "keys"), reg(1))),
			assignReg(in.Reg(3), member(reg(0), "length")),
		}, nil
	case bytecode.OpGetNextPName:
		return []jsast.Stmt{
			assignReg(in.Reg(0), computed(reg(1), reg(3))),
			&jsast.ExprStmt{X: &jsast.Update{Op: "++", X: reg(3)}},
		}, nil

	// Calls. Fixed-arity forms pass the receiver to bind and the rest
	// as arguments; the generic forms recover argument registers from
	// the trailing assignments already lowered for this block.
	case bytecode.OpCall1:
		return one(assignReg(in.Reg(0), bindCall(reg(1), reg(2))))
	case bytecode.OpCall2:
		return one(assignReg(in.Reg(0), bindCall(reg(1), reg(2), reg(3))))
	case bytecode.OpCall3:
		return one(assignReg(in.Reg(0), bindCall(reg(1), reg(2), reg(3), reg(4))))
	case bytecode.OpCall4:
		return one(assignReg(in.Reg(0), bindCall(reg(1), reg(2), reg(3), reg(4), reg(5))))
	case bytecode.OpCall:
		args := trailingAssignTargets(prior, int(in.Args[2]))
		receiver := jsast.Expr(&jsast.Ident{Name: "undefined"})
		if len(args) > 0 {
			receiver = args[0]
			args = args[1:]
		}
		return one(assignReg(in.Reg(0), bindCall(reg(1), receiver, args...)))
	case bytecode.OpConstruct:
		args := trailingAssignTargets(prior, int(in.Args[2]))
		return one(assignReg(in.Reg(0), &jsast.New{Callee: reg(1), Args: args}))

	// Builtins.
	case bytecode.OpGetBuiltinClosure:
		expr, err := builtinExpr(int(in.Args[1]))
		if err != nil {
			return nil, fmt.Errorf("%s at offset %d: %w", in.Op.Name(), info.Offset, err)
		}
		return one(assignReg(in.Reg(0), expr))

	// Environments. create_environment, get_environment, env.get and
	// env.store are runtime collaborators; their call sites are
	// emitted as-is.
	case bytecode.OpCreateEnvironment:
		return one(assignReg(in.Reg(0), call(&jsast.Ident{Name: "create_environment"})))
	case bytecode.OpGetEnvironment:
		return one(assignReg(in.Reg(0), call(&jsast.Ident{Name: "get_environment"}, num(float64(in.Args[1])))))
	case bytecode.OpLoadFromEnvironment, bytecode.OpLoadFromEnvironmentL:
		return one(assignReg(in.Reg(0), call(member(reg(1), "get"), num(float64(in.Args[2])))))
	case bytecode.OpStoreToEnvironment, bytecode.OpStoreToEnvironmentL,
		bytecode.OpStoreNPToEnvironment, bytecode.OpStoreNPToEnvironmentL:
		return one(&jsast.ExprStmt{X: call(member(reg(0), "store"), num(float64(in.Args[1])), reg(2))})

	// Globals and this.
	case bytecode.OpGetGlobalObject:
		return one(assignReg(in.Reg(0), &jsast.Ident{Name: "globalThis"}))
	case bytecode.OpDeclareGlobalVar:
		name, err := propName(0)
		if err != nil {
			return nil, err
		}
		return one(assign(member(&jsast.Ident{Name: "globalThis"}, name), &jsast.Ident{Name: "undefined"}))
	case bytecode.OpLoadThisNS:
		return one(assignReg(in.Reg(0), &jsast.Ident{Name: "this"}))
	case bytecode.OpCoerceThisNS:
		// Lossy: the non-strict this coercion is dropped and the value
		// moved through unchanged.
		return one(assignReg(in.Reg(0), reg(1)))

	// Parameters and arguments.
	case bytecode.OpLoadParam, bytecode.OpLoadParamLong:
		return one(assignReg(in.Reg(0), computed(&jsast.Ident{Name: "arguments"}, num(float64(in.Args[1])))))
	case bytecode.OpGetArgumentsPropByVal:
		return one(assignReg(in.Reg(0), computed(&jsast.Ident{Name: "arguments"}, reg(1))))
	case bytecode.OpGetArgumentsLength:
		return one(assignReg(in.Reg(0), member(&jsast.Ident{Name: "arguments"}, "length")))
	case bytecode.OpReifyArguments:
		return one(assignReg(in.Reg(0), &jsast.Ident{Name: "arguments"}))

	// Closures and construction plumbing.
	case bytecode.OpCreateClosure:
		return one(assignReg(in.Reg(0), &jsast.Ident{Name: fmt.Sprintf("f%d", in.Args[2])}))
	case bytecode.OpCreateThis:
		return one(assignReg(in.Reg(0), call(
			member(&jsast.Ident{Name: "Object"}, "create"),
			reg(1),
			&jsast.Object{Props: []jsast.Prop{{
				Key: "constructor",
				Value: &jsast.Object{Props: []jsast.Prop{
					{Key: "value", Value: reg(2)},
				}},
			}}},
		)))
	case bytecode.OpSelectObject:
		return one(assignReg(in.Reg(0), &jsast.Cond{
			Test: &jsast.Binary{Op: "instanceof", L: reg(2), R: &jsast.Ident{Name: "Object"}},
			Cons: reg(2),
			Alt:  reg(1),
		}))

	// Control.
	case bytecode.OpRet:
		return one(&jsast.Return{Arg: reg(0)})
	case bytecode.OpThrow:
		return one(&jsast.Throw{Arg: reg(0)})
	case bytecode.OpDebugger:
		return one(&jsast.Debugger{})
	case bytecode.OpDirectEval:
		return one(assignReg(in.Reg(0), call(&jsast.Ident{Name: "eval"}, reg(1))))

	// Branches emit nothing here; structural recovery consumes them.
	case bytecode.OpJmp, bytecode.OpJmpLong:
		return noStmts()

	// No-ops.
	case bytecode.OpUnreachable, bytecode.OpAsyncBreakCheck, bytecode.OpProfilePoint:
		return noStmts()
	}

	if bytecode.IsConditionalJump(in.Op) {
		return noStmts()
	}
	return unimplemented()
}

// builtinExpr renders a builtin-table entry, lowering dotted names to
// member expressions.
func builtinExpr(n int) (jsast.Expr, error) {
	name, ok := bytecode.Builtin(n)
	if !ok {
		return nil, fmt.Errorf("builtin number %d outside the %d-entry table",
			n, len(bytecode.JSBuiltins))
	}
	var expr jsast.Expr
	for i, part := range strings.Split(name, ".") {
		if i == 0 {
			expr = &jsast.Ident{Name: part}
		} else {
			expr = member(expr, part)
		}
	}
	return expr, nil
}

// trailingAssignTargets collects the assignment targets of the last n
// statements, in order. The Hermes calling convention materializes
// every argument with a register assignment immediately before the
// generic Call/Construct, so those targets are the argument registers.
func trailingAssignTargets(stmts []jsast.Stmt, n int) []jsast.Expr {
	if n > len(stmts) {
		n = len(stmts)
	}
	var targets []jsast.Expr
	for _, s := range stmts[len(stmts)-n:] {
		es, ok := s.(*jsast.ExprStmt)
		if !ok {
			continue
		}
		as, ok := es.X.(*jsast.Assign)
		if !ok {
			continue
		}
		if id, ok := as.L.(*jsast.Ident); ok {
			targets = append(targets, &jsast.Ident{Name: id.Name})
		}
	}
	return targets
}
