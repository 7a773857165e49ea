package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bagasjs/hotaru/hvm"
)

// bcdumpCmd loads a compiled bytecode module and prints a disassembly of
// it.
type bcdumpCmd struct{}

func (*bcdumpCmd) Name() string     { return "bcdump" }
func (*bcdumpCmd) Synopsis() string { return "Disassemble a compiled bytecode module" }
func (*bcdumpCmd) Usage() string {
	return `bcdump <program.hbc>:
  Load a bytecode module and print its disassembly.
`
}
func (*bcdumpCmd) SetFlags(f *flag.FlagSet) {}

func (*bcdumpCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "no bytecode file provided\n")
		return subcommands.ExitUsageError
	}

	module, err := hvm.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %q: %v\n", args[0], err)
		return subcommands.ExitFailure
	}

	module.Disassemble(os.Stdout)
	return subcommands.ExitSuccess
}
