// Command lambdarepl is the CLI entrypoint for the lambda calculus
// interpreter: it preloads any file arguments, then drops into the
// interactive REPL (spec §6.5).
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"

	"github.com/vic/lambdarepl/pkg/repl"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	c := cli.NewCLI("lambdarepl", version)
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"run": func() (cli.Command, error) {
			return &runCommand{}, nil
		},
	}
	// A bare `lambdarepl a.lc b.lc` (no subcommand) is the common case
	// (§6.5: "CLI arguments are file paths to preload") — route it to
	// the run command directly rather than forcing `lambdarepl run`.
	if len(args) == 0 || args[0] != "run" {
		return (&runCommand{}).Run(args)
	}

	status, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return status
}

type runCommand struct{}

func (*runCommand) Help() string {
	return "Usage: lambdarepl [file ...]\n\nPreloads each file as :load input, then starts the REPL."
}

func (*runCommand) Synopsis() string {
	return "Start the lambda calculus REPL, optionally preloading files"
}

func (*runCommand) Run(files []string) int {
	log := hclog.New(&hclog.LoggerOptions{
		Name:  "lambdarepl",
		Level: hclog.Warn,
	})

	r, err := repl.New(os.Stdout, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer r.Close()

	// §6.5: non-zero exit is reserved for I/O failures at load time;
	// a file with skipped (unparseable) lines still warns and continues.
	ioFailure := false
	for _, path := range files {
		if err := r.LoadFile(path); err != nil {
			log.Warn("failed to preload file", "path", path, "error", err)
			var pathErr *fs.PathError
			if errors.As(err, &pathErr) {
				ioFailure = true
			}
		}
	}
	if ioFailure {
		return 1
	}

	if err := r.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
