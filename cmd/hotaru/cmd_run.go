package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"github.com/bagasjs/hotaru/arena"
	"github.com/bagasjs/hotaru/hstate"
	"github.com/bagasjs/hotaru/lexer"
	"github.com/bagasjs/hotaru/parser"
)

// runCmd executes hotaru source immediately against a live VM. Given a
// file argument it runs that file start to finish; given none it opens a
// readline-backed REPL that keeps one State (and so one set of global
// variables) alive across prompts.
type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "Execute a hotaru source file, or start a REPL" }
func (*runCmd) Usage() string {
	return `run [source.ht]:
  Execute hotaru code from a file, or start an interactive REPL if no
  file is given.
`
}
func (*runCmd) SetFlags(f *flag.FlagSet) {}

func (*runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		return runRepl()
	}
	return runFile(args[0])
}

func runFile(path string) subcommands.ExitStatus {
	var a arena.ByteArena
	data, err := arena.LoadFileIntoArena(path, &a)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	lex := lexer.New(string(data))
	p := parser.New(lex)
	stmts := p.ParseProgram()

	state := hstate.NewState()
	exec := hstate.NewExecutor(state)
	for _, stmt := range stmts {
		if err := exec.ExecStmt(stmt); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return subcommands.ExitFailure
		}
	}
	state.VM.Dump()
	return subcommands.ExitSuccess
}

func runRepl() subcommands.ExitStatus {
	rl, err := readline.New(">>> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start REPL: %v\n", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	state := hstate.NewState()
	exec := hstate.NewExecutor(state)

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return subcommands.ExitSuccess
			}
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return subcommands.ExitFailure
		}
		if line == "" {
			continue
		}

		lex := lexer.New(line)
		p := parser.New(lex)
		stmt := p.ParseStmt()
		if err := exec.ExecStmt(stmt); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}
}
