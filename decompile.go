package hbcdec

import (
	"fmt"
	"io"

	"github.com/scigolib/hbcdec/internal/cfg"
	"github.com/scigolib/hbcdec/internal/jsast"
	"github.com/scigolib/hbcdec/internal/lift"
)

// Lift runs the full pipeline for function i — disassembly, flow
// graph, CFG, structural recovery — and returns the function's syntax
// tree, declared as f<i>.
//
// Lifting fails per function: a DecodeError, UnimplementedOpcodeError,
// UnresolvedJumpTargetError, or StructuralAmbiguityError from one
// function leaves the File fully usable for all others.
func (f *File) Lift(i int) (*jsast.FuncDecl, error) {
	c, instructions, err := f.CFG(i)
	if err != nil {
		return nil, err
	}
	body, err := lift.Generate(f.bf, c, instructions)
	if err != nil {
		return nil, err
	}
	return &jsast.FuncDecl{
		Name: fmt.Sprintf("f%d", i),
		Body: body,
	}, nil
}

// Decompile lifts function i and renders it as JavaScript source.
func (f *File) Decompile(i int) (string, error) {
	decl, err := f.Lift(i)
	if err != nil {
		return "", err
	}
	return jsast.Print([]jsast.Stmt{decl}), nil
}

// DecompileTo lifts function i and writes its JavaScript source to w.
func (f *File) DecompileTo(w io.Writer, i int) error {
	decl, err := f.Lift(i)
	if err != nil {
		return err
	}
	return jsast.Fprint(w, []jsast.Stmt{decl})
}

// FlowDOT renders function i's flow graph as Graphviz DOT.
func (f *File) FlowDOT(i int) (string, error) {
	g, instructions, err := f.FlowGraph(i)
	if err != nil {
		return "", err
	}
	return cfg.FlowDOT(g, instructions), nil
}

// CFGDOT renders function i's basic-block CFG as Graphviz DOT.
func (f *File) CFGDOT(i int) (string, error) {
	c, instructions, err := f.CFG(i)
	if err != nil {
		return "", err
	}
	return cfg.DOT(c, instructions), nil
}
