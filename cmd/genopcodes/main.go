// Command genopcodes ingests Hermes's BytecodeList.def and emits a
// JSON map from opcode name to operand descriptor list. Descriptors
// are the def file's width tags (Reg8, Reg32, Addr8, Addr32, UInt8,
// UInt16, UInt32, Imm32, Double) with an :S, :F, or :B suffix on
// operands that index the string, function, or bigint table.
//
// Usage:
//
//	genopcodes <BytecodeList.def> <output.json>
//
// The def file lives at include/hermes/BCGen/HBC/BytecodeList.def in
// the Hermes source tree. This tool runs at build time; the checked-in
// table in internal/bytecode is the v93 expansion of its output.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

type opcodeEntry struct {
	name     string
	operands []operand
}

type operand struct {
	widthTag string
	suffix   string // ":S", ":F", ":B", or empty
}

func (o operand) descriptor() string { return o.widthTag + o.suffix }

var (
	defineOpcodeRe = regexp.MustCompile(`\((\w+)((?:, \w+)*)\)`)
	operandRefRe   = regexp.MustCompile(`\((\w+), (\w+)\)`)
	defineJumpRe   = regexp.MustCompile(`(\d)\((\w+)\)`)
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: genopcodes <input_path> <output_path>")
		fmt.Fprintln(os.Stderr, "Input path is usually a BytecodeList.def from the Hermes source tree")
		os.Exit(1)
	}
	entries, err := parseDefFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writeJSON(os.Args[2], entries); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseDefFile(path string) ([]*opcodeEntry, error) {
	//nolint:gosec // G304: user-provided def file path is the tool's input
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error while opening %s: %w", path, err)
	}
	defer f.Close()

	var entries []*opcodeEntry
	byName := make(map[string]*opcodeEntry)
	add := func(name string, operands []operand) {
		e := &opcodeEntry{name: name, operands: operands}
		entries = append(entries, e)
		byName[name] = e
	}

	markRef := func(line, suffix string) error {
		m := operandRefRe.FindStringSubmatch(line)
		if m == nil {
			return fmt.Errorf("malformed operand reference: %s", line)
		}
		entry, ok := byName[m[1]]
		if !ok {
			return fmt.Errorf("operand reference to unknown opcode %s", m[1])
		}
		id, err := strconv.Atoi(m[2])
		if err != nil || id < 1 || id > len(entry.operands) {
			return fmt.Errorf("operand reference %s out of range for %s", m[2], m[1])
		}
		entry.operands[id-1].suffix = suffix
		return nil
	}

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++
		switch {
		case line == "":

		case strings.HasPrefix(line, "DEFINE_OPCODE_"):
			m := defineOpcodeRe.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("malformed opcode definition on line %d: %s", lineNum, line)
			}
			var operands []operand
			for _, tag := range strings.Split(m[2], ", ") {
				if tag != "" {
					operands = append(operands, operand{widthTag: tag})
				}
			}
			add(m[1], operands)

		case strings.HasPrefix(line, "OPERAND_STRING_ID"):
			if err := markRef(line, ":S"); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "OPERAND_FUNCTION_ID"):
			if err := markRef(line, ":F"); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "OPERAND_BIGINT_ID"):
			if err := markRef(line, ":B"); err != nil {
				return nil, err
			}

		case strings.HasPrefix(line, "DEFINE_JUMP_"):
			m := defineJumpRe.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("malformed jump definition on line %d: %s", lineNum, line)
			}
			numOperands, _ := strconv.Atoi(m[1])
			if numOperands < 1 || numOperands > 3 {
				return nil, fmt.Errorf("jump with %d operands on line %d", numOperands, lineNum)
			}
			// Every jump expands to a short Addr8 form and a Long
			// Addr32 form.
			short := []operand{{widthTag: "Addr8"}}
			long := []operand{{widthTag: "Addr32"}}
			for i := 1; i < numOperands; i++ {
				short = append(short, operand{widthTag: "Reg8"})
				long = append(long, operand{widthTag: "Reg8"})
			}
			add(m[2], short)
			add(m[2]+"Long", long)

		case strings.HasPrefix(line, "ASSERT_"),
			strings.HasPrefix(line, "DEFINE_RET_TARGET"),
			strings.HasPrefix(line, "DEFINE_OPERAND_TYPE"),
			strings.HasPrefix(line, "#"),
			strings.HasPrefix(line, "//"),
			strings.HasPrefix(line, "/*"),
			strings.HasPrefix(line, " *"),
			strings.HasPrefix(line, "  "):

		default:
			fmt.Fprintf(os.Stderr, "Unhandled line %d: %s\n", lineNum, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error while reading %s: %w", path, err)
	}
	return entries, nil
}

// writeJSON emits the entries as a JSON object preserving definition
// order, which is the opcode numbering.
func writeJSON(path string, entries []*opcodeEntry) error {
	var b strings.Builder
	b.WriteString("{\n")
	for i, e := range entries {
		name, _ := json.Marshal(e.name)
		b.WriteString("  ")
		b.Write(name)
		b.WriteString(": [")
		for j, op := range e.operands {
			if j > 0 {
				b.WriteString(", ")
			}
			desc, _ := json.Marshal(op.descriptor())
			b.Write(desc)
		}
		b.WriteString("]")
		if i < len(entries)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("error while writing %s: %w", path, err)
	}
	return nil
}
