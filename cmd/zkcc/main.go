// Command zkcc is a development-only front end for the compiler: it is
// never part of the guest build, only a convenience for trying source
// snippets against package compile from a terminal. Subcommand dispatch
// uses github.com/google/subcommands, and the REPL's line editing uses
// github.com/chzyer/readline.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"zkcc/compile"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&compileCmd{}, "")
	subcommands.Register(&replCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

// compileCmd implements `zkcc compile <file>`: compile a source file and
// print the resulting assembly to stdout.
type compileCmd struct {
	out string
}

func (*compileCmd) Name() string     { return "compile" }
func (*compileCmd) Synopsis() string { return "Compile a source file to assembly" }
func (*compileCmd) Usage() string {
	return `compile <file>:
  Compile a C-subset source file and print the emitted assembly.
`
}

func (c *compileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "write assembly to this file instead of stdout")
}

func (c *compileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "compile: source file not provided")
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile: failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}

	asm, err := compile.Compile(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.out == "" {
		os.Stdout.Write(asm)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.out, asm, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "compile: failed to write %s: %v\n", c.out, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// replCmd implements `zkcc repl`: an interactive loop that collects lines
// until a blank line, then compiles the collected snippet and prints the
// assembly it compiles to.
type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive compile session" }
func (*replCmd) Usage() string {
	return `repl:
  Read source snippets interactively and print their compiled assembly.
`
}
func (*replCmd) SetFlags(f *flag.FlagSet) {}

func (*replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Println("zkcc repl — enter a function definition, blank line to compile, \"exit\" to quit")
	repl(os.Stdin, os.Stdout)
	return subcommands.ExitSuccess
}

func repl(in io.Reader, out io.Writer) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "zkcc> ",
		Stdin:  io.NopCloser(in),
		Stdout: out,
	})
	if err != nil {
		fmt.Fprintf(out, "repl: failed to start readline: %v\n", err)
		return
	}
	defer rl.Close()

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return
		}
		if strings.TrimSpace(line) == "exit" {
			return
		}
		if strings.TrimSpace(line) == "" {
			src := buf.String()
			buf.Reset()
			if strings.TrimSpace(src) == "" {
				continue
			}
			asm, err := compile.Compile([]byte(src))
			if err != nil {
				fmt.Fprintf(out, "%v\n", err)
				continue
			}
			fmt.Fprint(out, string(asm))
			continue
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}
