package lift

import (
	"github.com/scigolib/hbcdec/internal/bytecode"
	"github.com/scigolib/hbcdec/internal/cfg"
	"github.com/scigolib/hbcdec/internal/hbc"
	"github.com/scigolib/hbcdec/internal/jsast"
)

// maxDepth bounds generator nesting. CFGs that recurse past it are not
// shaped like structured source and are refused rather than guessed.
const maxDepth = 4096

type stage int

const (
	stageBlock stage = iota
	stageLoopCheck
	stageIfCheck
	stageAfterIf
	stageDone
)

// none marks an absent context block reference.
const none = -1

// generator lifts the CFG region reachable from one block into a
// statement stream. It is a state machine over the four recovery
// stages; each populate call advances one stage, appending statements
// to the queue and possibly installing a chained successor generator
// that takes over once this one is drained.
//
// Two context references steer loop bodies: reaching whileCond means
// the region loops back to an enclosing while condition and must emit
// `continue` instead of recursing; reaching doWhileCond means the
// region is a do-while body whose condition block is consumed by the
// enclosing loop emission.
type generator struct {
	f            *hbc.BytecodeFile
	c            *cfg.CFG
	instructions []bytecode.InstructionInfo

	node           int
	isDoWhileFirst bool
	whileCond      int
	doWhileCond    int
	depth          int

	stage      stage
	queue      []jsast.Stmt
	blockStmts []jsast.Stmt
	afterIf    int
	chained    *generator
}

// Generate lifts the CFG starting at entry into a statement list.
func Generate(f *hbc.BytecodeFile, c *cfg.CFG, instructions []bytecode.InstructionInfo) ([]jsast.Stmt, error) {
	if c.NumBlocks() == 0 {
		return nil, nil
	}
	g := newGenerator(f, c, instructions, 0, false, none, none, 0)
	stmts, _, err := g.collect()
	return stmts, err
}

func newGenerator(f *hbc.BytecodeFile, c *cfg.CFG, instructions []bytecode.InstructionInfo,
	node int, isDoWhileFirst bool, whileCond, doWhileCond, depth int) *generator {
	return &generator{
		f:              f,
		c:              c,
		instructions:   instructions,
		node:           node,
		isDoWhileFirst: isDoWhileFirst,
		whileCond:      whileCond,
		doWhileCond:    doWhileCond,
		depth:          depth,
		afterIf:        none,
	}
}

func (g *generator) child(node int, isDoWhileFirst bool, whileCond, doWhileCond int) *generator {
	return newGenerator(g.f, g.c, g.instructions, node, isDoWhileFirst,
		whileCond, doWhileCond, g.depth+1)
}

// collect drains the generator and its chained successors. The second
// result reports whether the final segment emitted a return or throw,
// which the if/else recognizer uses to spot the early-return idiom.
func (g *generator) collect() ([]jsast.Stmt, bool, error) {
	if g.depth > maxDepth {
		return nil, false, &StructuralAmbiguityError{
			Block: g.node, Reason: "recovery recursion limit exceeded",
		}
	}
	cur := g
	var out []jsast.Stmt
	lastReturn := false
	for {
		if len(cur.queue) > 0 {
			s := cur.queue[0]
			cur.queue = cur.queue[1:]
			switch s.(type) {
			case *jsast.Return, *jsast.Throw:
				lastReturn = true
			}
			out = append(out, s)
			continue
		}
		if cur.stage != stageDone {
			if err := cur.populate(); err != nil {
				return nil, false, err
			}
			continue
		}
		if cur.chained != nil {
			cur = cur.chained
			lastReturn = false
			continue
		}
		return out, lastReturn, nil
	}
}

// populate advances the state machine by one stage.
func (g *generator) populate() error {
	switch g.stage {
	case stageBlock:
		return g.processBlock()
	case stageLoopCheck:
		return g.loopCheck()
	case stageIfCheck:
		return g.ifCheck()
	case stageAfterIf:
		if g.afterIf != none {
			g.chained = g.child(g.afterIf, false, g.whileCond, g.doWhileCond)
		}
		g.stage = stageDone
	}
	return nil
}

// processBlock is stage A: straight-line lowering, plus the two
// context short-circuits.
func (g *generator) processBlock() error {
	if g.whileCond == g.node {
		// Back at the enclosing while condition: this path is a
		// continue, nothing to decompile.
		g.queue = append(g.queue, &jsast.Continue{})
		g.stage = stageDone
		return nil
	}

	stmts, err := lowerBlock(g.f, g.c.Blocks[g.node], g.instructions)
	if err != nil {
		return err
	}
	g.blockStmts = stmts
	g.queue = append(g.queue, stmts...)

	if g.doWhileCond == g.node {
		// End of a do-while body: the enclosing loop emission consumes
		// the condition; looping again here would never terminate.
		g.stage = stageDone
		return nil
	}
	g.stage = stageLoopCheck
	return nil
}

// loopCheck is stage B: detect that this join block heads a loop and
// emit it as while or do-while.
func (g *generator) loopCheck() error {
	g.stage = stageIfCheck
	if g.isDoWhileFirst || len(g.c.In(g.node)) < 2 {
		return nil
	}

	candidate, ok := g.findLoopCondition()
	if !ok {
		return nil
	}

	block := g.c.Blocks[g.node]
	tailIndex := block[len(block)-1]
	candidateTail := g.candidateTail(candidate)

	// A body that re-enters the condition through an unconditional
	// jump cannot be a do-while; the test then sits at this block's
	// tail.
	condIndex, loopCond := candidateTail, candidate
	if op := g.instructions[candidateTail].Instruction.Op; bytecode.IsUnconditionalJump(op) {
		condIndex, loopCond = tailIndex, g.node
	}

	cond, err := condTest(g.instructions[condIndex].Instruction)
	if err != nil {
		return err
	}
	tru, fals, err := g.branchTargets(loopCond)
	if err != nil {
		return err
	}

	if tru == g.node {
		// Condition at the bottom jumping back to the top: do-while.
		body, _, err := g.child(g.node, true, none, candidate).collect()
		if err != nil {
			return err
		}
		g.queue = append(g.queue, &jsast.DoWhile{
			Body: body,
			Test: &jsast.Paren{X: cond},
		})
		g.chained = g.child(fals, false, none, none)
	} else {
		// Condition at the top jumping past the body when false:
		// while with the test's sense inverted.
		body, _, err := g.child(fals, false, g.node, g.doWhileCond).collect()
		if err != nil {
			return err
		}
		if len(block) > 1 {
			// The condition block carries preparatory statements; every
			// continue must re-run them before re-testing.
			body = threadBeforeContinue(body, g.blockStmts)
		}
		g.queue = append(g.queue, &jsast.While{
			Test: &jsast.Unary{Op: "!", X: &jsast.Paren{X: cond}},
			Body: body,
		})
		g.chained = g.child(tru, false, none, g.doWhileCond)
	}

	g.stage = stageDone
	return nil
}

// ifCheck is stage C: two outgoing edges mean a conditional; recognize
// the three if shapes, or chain through a single successor.
func (g *generator) ifCheck() error {
	outs := g.c.Out(g.node)
	switch len(outs) {
	case 2:
	case 1:
		g.chained = g.child(outs[0].To, false, g.whileCond, g.doWhileCond)
		g.stage = stageDone
		return nil
	default:
		g.stage = stageDone
		return nil
	}

	tru, fals, err := g.branchTargets(g.node)
	if err != nil {
		return err
	}
	block := g.c.Blocks[g.node]
	test, err := condTest(g.instructions[block[len(block)-1]].Instruction)
	if err != nil {
		return err
	}

	skipElseFalse := g.reaches(fals, tru)
	skipElseTrue := false
	if !skipElseFalse {
		skipElseTrue = g.reaches(tru, fals)
	}

	switch {
	case skipElseFalse:
		// The false side rejoins behind the true side: plain if.
		cons, _, err := g.child(tru, false, g.whileCond, g.doWhileCond).collect()
		if err != nil {
			return err
		}
		g.queue = append(g.queue, &jsast.If{Test: test, Cons: cons})
		g.afterIf = fals
		g.stage = stageAfterIf

	case skipElseTrue:
		// Mirrored: the true side is the join, so invert the test.
		cons, _, err := g.child(fals, false, g.whileCond, g.doWhileCond).collect()
		if err != nil {
			return err
		}
		g.queue = append(g.queue, &jsast.If{
			Test: &jsast.Unary{Op: "!", X: &jsast.Paren{X: test}},
			Cons: cons,
		})
		g.afterIf = tru
		g.stage = stageAfterIf

	default:
		cons, consReturns, err := g.child(tru, false, g.whileCond, g.doWhileCond).collect()
		if err != nil {
			return err
		}
		if consReturns {
			// Early-return idiom: the taken side never falls out, so
			// the false side is the continuation, not an else.
			g.queue = append(g.queue, &jsast.If{Test: test, Cons: cons})
			g.chained = g.child(fals, false, g.whileCond, g.doWhileCond)
		} else {
			alt, _, err := g.child(fals, false, g.whileCond, g.doWhileCond).collect()
			if err != nil {
				return err
			}
			g.queue = append(g.queue, &jsast.If{Test: test, Cons: cons, Alt: alt})
		}
		g.stage = stageDone
	}
	return nil
}

// findLoopCondition runs a postorder DFS from the current block,
// ignoring everything reachable from the entry without passing through
// it, and returns the first postorder node that is a predecessor of
// the current block.
func (g *generator) findLoopCondition() (int, bool) {
	preds := make(map[int]bool)
	for _, e := range g.c.In(g.node) {
		preds[e.From] = true
	}

	skip := make([]bool, g.c.NumBlocks())
	if g.node != 0 {
		stack := []int{0}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if skip[v] || v == g.node {
				continue
			}
			skip[v] = true
			for _, e := range g.c.Out(v) {
				stack = append(stack, e.To)
			}
		}
	}

	seen := make([]bool, g.c.NumBlocks())
	copy(seen, skip)
	candidate, found := 0, false
	var dfs func(v int)
	dfs = func(v int) {
		if found || seen[v] {
			return
		}
		seen[v] = true
		for _, e := range g.c.Out(v) {
			dfs(e.To)
		}
		if !found && preds[v] {
			candidate, found = v, true
		}
	}
	dfs(g.node)
	return candidate, found
}

// candidateTail returns the instruction index ending the given block.
func (g *generator) candidateTail(b int) int {
	block := g.c.Blocks[b]
	return block[len(block)-1]
}

// branchTargets resolves the true and false successors of a block
// ending in a conditional branch.
func (g *generator) branchTargets(b int) (tru, fals int, err error) {
	tru, fals = none, none
	for _, e := range g.c.Out(b) {
		if e.Label {
			tru = e.To
		} else {
			fals = e.To
		}
	}
	if tru == none || fals == none {
		return 0, 0, &StructuralAmbiguityError{
			Block:  b,
			Reason: "conditional block lacks a labeled true/false successor pair",
		}
	}
	return tru, fals, nil
}

// reaches reports whether to is reachable from from, inclusive.
func (g *generator) reaches(from, to int) bool {
	if from == to {
		return true
	}
	seen := make([]bool, g.c.NumBlocks())
	queue := []int{from}
	seen[from] = true
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if v == to {
			return true
		}
		for _, e := range g.c.Out(v) {
			if !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}
	return false
}

// threadBeforeContinue inserts the loop-condition block's preparatory
// statements ahead of every continue in body, recursing into if
// branches but not into nested loops, whose continues bind tighter.
func threadBeforeContinue(body, prep []jsast.Stmt) []jsast.Stmt {
	out := make([]jsast.Stmt, 0, len(body))
	for _, s := range body {
		switch s := s.(type) {
		case *jsast.Continue:
			out = append(out, prep...)
			out = append(out, s)
		case *jsast.If:
			out = append(out, &jsast.If{
				Test: s.Test,
				Cons: threadBeforeContinue(s.Cons, prep),
				Alt:  threadBeforeContinueNilable(s.Alt, prep),
			})
		default:
			out = append(out, s)
		}
	}
	return out
}

func threadBeforeContinueNilable(body, prep []jsast.Stmt) []jsast.Stmt {
	if body == nil {
		return nil
	}
	return threadBeforeContinue(body, prep)
}
