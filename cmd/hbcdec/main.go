// Command hbcdec decompiles Hermes bytecode bundles.
//
// Usage:
//
//	hbcdec [--cfg] <bundle-path> show_functions
//	hbcdec [--cfg] <bundle-path> disassemble <function_id> [<output_path>]
//	hbcdec [--cfg] <bundle-path> strings [<output_path>]
//	hbcdec [--cfg] <bundle-path> instructions <function_id>
//	hbcdec [--cfg] <bundle-path> graph <function_id>
//
// The bundle path is an index.android.bundle extracted from a Hermes
// application.
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/scigolib/hbcdec"
)

const usageText = `hbcdec [options] <bundle-path> <command> [args]

Commands:
  show_functions                       list every function in the bundle
  disassemble <function_id> [<path>]   lift one function to JavaScript
  strings [<path>]                     dump the string table
  instructions <function_id>           list decoded instructions
  graph <function_id>                  emit the flow graph as Graphviz DOT`

func main() {
	app := &cli.App{
		Name:      "hbcdec",
		Usage:     "decompile Hermes bytecode (HBC v93) bundles",
		UsageText: usageText,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "cfg",
				Usage: "graph: emit the basic-block CFG instead of the flow graph",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	logrus.SetOutput(os.Stderr)
	if ctx.Bool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	}

	args := ctx.Args()
	if args.Len() < 2 {
		cli.ShowAppHelp(ctx)
		return cli.Exit("", 1)
	}
	bundlePath := args.Get(0)
	command := args.Get(1)

	file, err := hbcdec.Open(bundlePath)
	if err != nil {
		return fmt.Errorf("error while opening %s: %w", bundlePath, err)
	}

	switch command {
	case "show_functions":
		return showFunctions(file)
	case "disassemble":
		return disassemble(ctx, file)
	case "strings":
		return dumpStrings(ctx, file)
	case "instructions":
		return listInstructions(ctx, file)
	case "graph":
		return graph(ctx, file)
	default:
		cli.ShowAppHelp(ctx)
		return cli.Exit(fmt.Sprintf("unknown command %q", command), 1)
	}
}

func showFunctions(file *hbcdec.File) error {
	for _, fn := range file.Functions() {
		fmt.Printf("Function %d: (name: %s, offset: %d, size: %d, param_count: %d)\n",
			fn.Index, fn.Name, fn.Offset, fn.BytecodeSize, fn.ParamCount)
	}
	return nil
}

func functionID(ctx *cli.Context, pos int) (int, error) {
	raw := ctx.Args().Get(pos)
	if raw == "" {
		return 0, fmt.Errorf("missing function id")
	}
	var id int
	if _, err := fmt.Sscanf(raw, "%d", &id); err != nil || id < 0 {
		return 0, fmt.Errorf("invalid function id %q", raw)
	}
	return id, nil
}

// outputWriter opens the optional output path argument, defaulting to
// standard output.
func outputWriter(ctx *cli.Context, pos int) (*os.File, func(), error) {
	path := ctx.Args().Get(pos)
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error while opening output file %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func disassemble(ctx *cli.Context, file *hbcdec.File) error {
	id, err := functionID(ctx, 2)
	if err != nil {
		return err
	}
	out, done, err := outputWriter(ctx, 3)
	if err != nil {
		return err
	}
	defer done()
	if err := file.DecompileTo(out, id); err != nil {
		return fmt.Errorf("function %d cannot be lifted: %w", id, err)
	}
	return nil
}

func dumpStrings(ctx *cli.Context, file *hbcdec.File) error {
	out, done, err := outputWriter(ctx, 2)
	if err != nil {
		return err
	}
	defer done()
	for i := 0; i < file.StringCount(); i++ {
		s, _ := file.GetString(uint32(i))
		if _, err := fmt.Fprintf(out, "%d: %s\n", i, s); err != nil {
			return fmt.Errorf("error while writing output: %w", err)
		}
	}
	return nil
}

func listInstructions(ctx *cli.Context, file *hbcdec.File) error {
	id, err := functionID(ctx, 2)
	if err != nil {
		return err
	}
	lines, err := file.FormatInstructions(id)
	if err != nil {
		return fmt.Errorf("function %d cannot be disassembled: %w", id, err)
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	if ctx.Bool("verbose") {
		instructions, _ := file.Disassemble(id)
		logrus.Debug(spew.Sdump(instructions))
	}
	return nil
}

func graph(ctx *cli.Context, file *hbcdec.File) error {
	id, err := functionID(ctx, 2)
	if err != nil {
		return err
	}
	var dot string
	if ctx.Bool("cfg") {
		dot, err = file.CFGDOT(id)
	} else {
		dot, err = file.FlowDOT(id)
	}
	if err != nil {
		return fmt.Errorf("function %d cannot be graphed: %w", id, err)
	}
	fmt.Println(dot)
	return nil
}
