package jsast

import (
	"testing"

	"github.com/dop251/goja/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireParses(t *testing.T, src string) {
	t.Helper()
	_, err := parser.ParseFile(nil, "lifted.js", src, 0)
	require.NoError(t, err, "emitted source must be valid JavaScript:\n%s", src)
}

func TestPrintAssignments(t *testing.T) {
	stmts := []Stmt{
		&ExprStmt{X: &Assign{L: Reg(1), R: &Number{Value: 42}}},
		&ExprStmt{X: &Assign{L: Reg(2), R: &Str{Value: "hi"}}},
		&ExprStmt{X: &Assign{L: Reg(3), R: &Bool{Value: true}}},
		&ExprStmt{X: &Assign{L: Reg(4), R: &Null{}}},
	}
	out := Print(stmts)
	assert.Equal(t, "r1 = 42;\nr2 = \"hi\";\nr3 = true;\nr4 = null;\n", out)
	requireParses(t, out)
}

func TestPrintNumbers(t *testing.T) {
	assert.Equal(t, "r0 = 0.5;\n",
		Print([]Stmt{&ExprStmt{X: &Assign{L: Reg(0), R: &Number{Value: 0.5}}}}))
	assert.Equal(t, "r0 = -3;\n",
		Print([]Stmt{&ExprStmt{X: &Assign{L: Reg(0), R: &Number{Value: -3}}}}))
	assert.Equal(t, "r0 = NaN;\n",
		Print([]Stmt{&ExprStmt{X: &Assign{L: Reg(0), R: &Number{Value: nan()}}}}))
}

func TestPrintMemberAndCall(t *testing.T) {
	stmts := []Stmt{
		&ExprStmt{X: &Assign{
			L: Reg(0),
			R: &Member{Obj: Reg(1), Prop: &Ident{Name: "length"}},
		}},
		&ExprStmt{X: &Assign{
			L: Reg(2),
			R: &Member{Obj: Reg(1), Prop: Reg(3), Computed: true},
		}},
		&ExprStmt{X: &Call{
			Callee: &Member{Obj: &Ident{Name: "Object"}, Prop: &Ident{Name: "keys"}},
			Args:   []Expr{Reg(1)},
		}},
	}
	out := Print(stmts)
	assert.Equal(t, "r0 = r1.length;\nr2 = r1[r3];\nObject.keys(r1);\n", out)
	requireParses(t, out)
}

func TestPrintControlFlow(t *testing.T) {
	stmts := []Stmt{
		&If{
			Test: Reg(0),
			Cons: []Stmt{&Return{Arg: Reg(1)}},
			Alt:  []Stmt{&Throw{Arg: Reg(2)}},
		},
		&While{
			Test: &Unary{Op: "!", X: &Paren{X: &Unary{Op: "!", X: Reg(0)}}},
			Body: []Stmt{&ExprStmt{X: &Update{Op: "++", X: Reg(0)}}, &Continue{}},
		},
		&DoWhile{
			Body: []Stmt{&Debugger{}},
			Test: &Paren{X: Reg(3)},
		},
	}
	out := Print(stmts)
	assert.Equal(t,
		"if (r0) {\n"+
			"    return r1;\n"+
			"} else {\n"+
			"    throw r2;\n"+
			"}\n"+
			"while (!(!r0)) {\n"+
			"    r0++;\n"+
			"    continue;\n"+
			"}\n"+
			"do {\n"+
			"    debugger;\n"+
			"} while ((r3));\n",
		out)
	requireParses(t, out)
}

func TestPrintFuncDecl(t *testing.T) {
	out := Print([]Stmt{&FuncDecl{
		Name: "f0",
		Body: []Stmt{&Return{Arg: Reg(0)}},
	}})
	assert.Equal(t, "function f0() {\n    return r0;\n}\n", out)
	requireParses(t, out)
}

func TestPrintObjectAndArray(t *testing.T) {
	stmts := []Stmt{
		&ExprStmt{X: &Assign{L: Reg(0), R: &Object{}}},
		&ExprStmt{X: &Assign{L: Reg(1), R: &Array{}}},
		&ExprStmt{X: &Call{
			Callee: &Member{Obj: &Ident{Name: "Object"}, Prop: &Ident{Name: "defineProperty"}},
			Args: []Expr{
				Reg(2), Reg(4),
				&Object{Props: []Prop{
					{Key: "value", Value: Reg(3)},
					{Key: "enumerable", Value: &Bool{Value: false}},
				}},
			},
		}},
	}
	out := Print(stmts)
	assert.Equal(t,
		"r0 = {};\nr1 = [];\nObject.defineProperty(r2, r4, { value: r3, enumerable: false });\n",
		out)
	requireParses(t, out)
}

func TestPrintStringEscapes(t *testing.T) {
	out := Print([]Stmt{&ExprStmt{X: &Assign{
		L: Reg(0),
		R: &Str{Value: "a\"b\\c\nd"},
	}}})
	assert.Equal(t, "r0 = \"a\\\"b\\\\c\\nd\";\n", out)
	requireParses(t, out)
}

func TestPrintNewAndCond(t *testing.T) {
	stmts := []Stmt{
		&ExprStmt{X: &Assign{L: Reg(0), R: &New{Callee: Reg(1), Args: []Expr{Reg(2)}}}},
		&ExprStmt{X: &Assign{L: Reg(3), R: &Cond{
			Test: &Binary{Op: "instanceof", L: Reg(4), R: &Ident{Name: "Object"}},
			Cons: Reg(4),
			Alt:  Reg(5),
		}}},
	}
	out := Print(stmts)
	assert.Equal(t,
		"r0 = new r1(r2);\nr3 = r4 instanceof Object ? r4 : r5;\n",
		out)
	requireParses(t, out)
}

func nan() float64 {
	var zero float64
	return zero / zero
}
