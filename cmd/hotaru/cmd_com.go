package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bagasjs/hotaru/arena"
	"github.com/bagasjs/hotaru/hstate"
	"github.com/bagasjs/hotaru/hvm"
	"github.com/bagasjs/hotaru/lexer"
	"github.com/bagasjs/hotaru/parser"
)

// comCmd compiles a hotaru source file into a persistent bytecode module.
type comCmd struct {
	output      string
	disassemble string
}

func (*comCmd) Name() string     { return "com" }
func (*comCmd) Synopsis() string { return "Compile a hotaru source file into a bytecode module" }
func (*comCmd) Usage() string {
	return `com [-o output.hbc] [-disassemble listing.txt] <source.ht>:
  Compile hotaru source into a bytecode module file.
`
}

func (cmd *comCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.output, "o", "output.hbc", "path to write the compiled bytecode module to")
	f.StringVar(&cmd.disassemble, "disassemble", "", "if set, also write a disassembly listing to this path")
}

func (cmd *comCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "no source file provided\n")
		return subcommands.ExitUsageError
	}

	var a arena.ByteArena
	data, err := arena.LoadFileIntoArena(args[0], &a)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %q: %v\n", args[0], err)
		return subcommands.ExitFailure
	}

	lex := lexer.New(string(data))
	p := parser.New(lex)
	stmts := p.ParseProgram()

	state := hstate.NewState()
	c := hstate.NewCompiler(state)
	for _, stmt := range stmts {
		if err := c.CompileStmt(stmt); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return subcommands.ExitFailure
		}
	}
	state.Module.Append(hvm.Inst{Type: hvm.OpHalt})

	if err := state.Module.Save(cmd.output); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %q: %v\n", cmd.output, err)
		return subcommands.ExitFailure
	}

	if cmd.disassemble != "" {
		var listing arena.Buffer
		state.Module.Disassemble(&listing)
		if err := listing.SaveToFile(cmd.disassemble); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %q: %v\n", cmd.disassemble, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
