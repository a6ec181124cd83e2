// Package hbcdec decompiles Hermes bytecode (HBC) version 93 bundles,
// as produced for React Native applications, back into readable
// JavaScript. It parses the container once, then lifts individual
// functions on demand: disassembly, control-flow recovery, and
// translation to a JavaScript syntax tree.
package hbcdec

import (
	"bytes"
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/scigolib/hbcdec/internal/bytecode"
	"github.com/scigolib/hbcdec/internal/cfg"
	"github.com/scigolib/hbcdec/internal/hbc"
	"github.com/scigolib/hbcdec/internal/lift"
)

// ErrInvalidContainer marks structural faults in the bundle itself,
// as opposed to the per-function errors below.
var ErrInvalidContainer = hbc.ErrInvalidContainer

// Error types surfaced per function. The file-level operations never
// fail because a single function cannot be lifted.
type (
	// ContainerError reports which container section could not be read.
	ContainerError = hbc.ContainerError
	// DecodeError reports an unknown opcode or truncated instruction.
	DecodeError = bytecode.DecodeError
	// UnresolvedJumpTargetError reports a branch landing between
	// instruction boundaries.
	UnresolvedJumpTargetError = cfg.UnresolvedJumpTargetError
	// UnimplementedOpcodeError names an opcode this decompiler does
	// not translate.
	UnimplementedOpcodeError = lift.UnimplementedOpcodeError
	// StructuralAmbiguityError reports control flow that matches no
	// recognized construct.
	StructuralAmbiguityError = lift.StructuralAmbiguityError
)

// disassemblyCacheSize bounds the per-file memo of decoded functions.
const disassemblyCacheSize = 128

// FunctionInfo summarizes one function table entry.
type FunctionInfo struct {
	Index        int
	Name         string
	Offset       uint32
	BytecodeSize uint32
	ParamCount   uint32
}

// File is an open HBC bundle. It is immutable after loading and safe
// for concurrent use; functions are independent after load and may be
// decompiled in parallel.
type File struct {
	bf    *hbc.BytecodeFile
	cache *lru.Cache[int, []bytecode.InstructionInfo]
}

// Open reads and parses the HBC bundle at path.
func Open(path string) (*File, error) {
	//nolint:gosec // G304: user-provided bundle path is the tool's input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bundle open failed: %w", err)
	}
	return Load(data)
}

// Load parses an HBC bundle held in memory.
func Load(data []byte) (*File, error) {
	bf, err := hbc.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	cache, err := lru.New[int, []bytecode.InstructionInfo](disassemblyCacheSize)
	if err != nil {
		return nil, err
	}
	return &File{bf: bf, cache: cache}, nil
}

// Header returns the parsed file header.
func (f *File) Header() hbc.FileHeader { return f.bf.Header }

// FunctionCount returns the number of functions in the bundle.
func (f *File) FunctionCount() int { return f.bf.FunctionCount() }

// Function returns the resolved summary of function i.
func (f *File) Function(i int) (FunctionInfo, error) {
	h, err := f.bf.FunctionHeader(i)
	if err != nil {
		return FunctionInfo{}, err
	}
	name, _ := f.bf.GetString(h.FunctionName)
	return FunctionInfo{
		Index:        i,
		Name:         name,
		Offset:       h.Offset,
		BytecodeSize: h.BytecodeSize,
		ParamCount:   h.ParamCount,
	}, nil
}

// Functions returns summaries for every function in table order.
// Unresolvable headers are skipped rather than failing the listing.
func (f *File) Functions() []FunctionInfo {
	infos := make([]FunctionInfo, 0, f.bf.FunctionCount())
	for i := 0; i < f.bf.FunctionCount(); i++ {
		info, err := f.Function(i)
		if err != nil {
			continue
		}
		infos = append(infos, info)
	}
	return infos
}

// StringCount returns the number of string table entries.
func (f *File) StringCount() int { return int(f.bf.Header.StringCount) }

// GetString looks up string table entry i.
func (f *File) GetString(i uint32) (string, bool) { return f.bf.GetString(i) }

// StringKind reports whether string table entry i is a plain string
// or an identifier.
func (f *File) StringKind(i uint32) hbc.StringKind { return f.bf.GetStringKind(i) }

// FormatInstructions renders function i as an annotated disassembly
// listing, resolving string and function table operands.
func (f *File) FormatInstructions(i int) ([]string, error) {
	instructions, err := f.Disassemble(i)
	if err != nil {
		return nil, err
	}
	resolver := func(ref bytecode.RefKind, index uint32) (string, bool) {
		switch ref {
		case bytecode.RefString:
			return f.bf.GetString(index)
		case bytecode.RefFunction:
			if int(index) >= f.bf.FunctionCount() {
				return "", false
			}
			if h, err := f.bf.FunctionHeader(int(index)); err == nil {
				if name, ok := f.bf.GetString(h.FunctionName); ok {
					return name, true
				}
			}
			return fmt.Sprintf("f%d", index), true
		}
		return "", false
	}
	lines := make([]string, len(instructions))
	for j, info := range instructions {
		lines[j] = bytecode.Format(info, resolver)
	}
	return lines, nil
}

// ExceptionHandlers returns function i's exception handler records,
// or nil when it has none.
func (f *File) ExceptionHandlers(i int) []hbc.ExceptionHandler {
	return f.bf.ExceptionHandlerMap[i]
}

// Disassemble decodes function i into its instruction sequence.
// Results are memoized, so repeated lifts of the same function do not
// re-decode.
func (f *File) Disassemble(i int) ([]bytecode.InstructionInfo, error) {
	if cached, ok := f.cache.Get(i); ok {
		return cached, nil
	}
	slab, err := f.bf.ReadBytecode(i)
	if err != nil {
		return nil, err
	}
	instructions, err := bytecode.Disassemble(slab)
	if err != nil {
		return nil, err
	}
	f.cache.Add(i, instructions)
	return instructions, nil
}

// FlowGraph builds function i's instruction-level flow graph.
func (f *File) FlowGraph(i int) (*cfg.Graph, []bytecode.InstructionInfo, error) {
	instructions, err := f.Disassemble(i)
	if err != nil {
		return nil, nil, err
	}
	g, err := cfg.BuildFlowGraph(instructions)
	if err != nil {
		return nil, nil, err
	}
	return g, instructions, nil
}

// CFG builds function i's basic-block control-flow graph.
func (f *File) CFG(i int) (*cfg.CFG, []bytecode.InstructionInfo, error) {
	g, instructions, err := f.FlowGraph(i)
	if err != nil {
		return nil, nil, err
	}
	return cfg.BuildCFG(g), instructions, nil
}
