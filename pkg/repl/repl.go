// Package repl implements the line-oriented read-eval-print loop
// described in spec §6.3: comment lines, `:`-directives, :load, and
// plain lines parsed and evaluated against a shared pkg/lambda.Context.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/vic/lambdarepl/pkg/lambda"
	"github.com/vic/lambdarepl/pkg/parser"
	"github.com/vic/lambdarepl/pkg/printer"
)

// directives maps a REPL mnemonic to the flag it toggles (§6.3's
// ":p"/":h"/":c"/":t"/":ft"/":v" table).
var directives = map[string]lambda.Flag{
	":p":  lambda.AbbrevLambda,
	":c":  lambda.AbbrevParens,
	":h":  lambda.HaskellStyle,
	":t":  lambda.Trace,
	":ft": lambda.FullTrace,
	":v":  lambda.VarReplacement,
}

// REPL holds the interpreter state and I/O for one interactive
// session. It is single-threaded (§5): one line is fully evaluated
// before the next is read.
type REPL struct {
	Ctx     *lambda.Context
	StepCap int
	Out     io.Writer
	Log     hclog.Logger

	rl *readline.Instance
}

// New constructs a REPL reading from an interactive terminal via
// readline (history, line editing, Ctrl-C/Ctrl-D), writing results to
// out.
func New(out io.Writer, log hclog.Logger) (*REPL, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "",
		Stdout:          out,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing line editor: %w", err)
	}
	return &REPL{
		Ctx: lambda.NewContext(),
		Out: out,
		Log: log,
		rl:  rl,
	}, nil
}

// Close releases the line editor's terminal state.
func (r *REPL) Close() error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

// Run reads lines until EOF or :q, evaluating each. It returns nil on
// a clean exit (§6.5: exit 0 on EOF or :q).
func (r *REPL) Run() error {
	for {
		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		quit := r.Eval(line)
		if quit {
			return nil
		}
	}
}

// Eval processes one line: blank, comment, directive, or expression.
// It reports whether the REPL should now quit.
func (r *REPL) Eval(line string) (quit bool) {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return false
	case strings.HasPrefix(trimmed, "#"):
		return false
	case strings.HasPrefix(trimmed, ":"):
		return r.directive(trimmed)
	default:
		r.evalExpression(trimmed)
		return false
	}
}

func (r *REPL) directive(line string) (quit bool) {
	fields := strings.Fields(line)
	name := fields[0]

	if name == ":q" {
		return true
	}

	if name == ":load" {
		if len(fields) < 2 {
			r.Log.Warn("missing path for :load")
			return false
		}
		if err := r.LoadFile(fields[1]); err != nil {
			r.Log.Warn("load failed", "path", fields[1], "error", err)
		}
		return false
	}

	if flag, ok := directives[name]; ok {
		on := r.Ctx.Flags.Toggle(flag)
		state := "off"
		if on {
			state = "on"
		}
		fmt.Fprintf(r.Out, "%s: %s\n", name, state)
		return false
	}

	r.Log.Warn("unknown directive", "directive", name)
	return false
}

// LoadFile reads path and evaluates each non-blank, non-comment line.
// A parse or evaluation failure on one line does not abort the file:
// the loader collects every failure and reports how many lines were
// skipped (§7), via a single aggregated error.
func (r *REPL) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		r.Log.Warn("file I/O error", "path", path, "error", err)
		return err
	}
	defer f.Close()

	var merr *multierror.Error
	skipped := 0
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := r.evalLineForLoad(line); err != nil {
			skipped++
			merr = multierror.Append(merr, fmt.Errorf("line %d: %w", lineNo, err))
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if skipped > 0 {
		r.Log.Warn("lines skipped while loading", "path", path, "count", skipped)
		return fmt.Errorf("%d lines skipped: %w", skipped, merr.ErrorOrNil())
	}
	return nil
}

func (r *REPL) evalLineForLoad(line string) error {
	term, err := parser.Parse(line)
	if err != nil {
		return err
	}
	r.run(term)
	return nil
}

func (r *REPL) evalExpression(line string) {
	term, err := parser.Parse(line)
	if err != nil {
		r.Log.Warn("parse error", "error", err)
		fmt.Fprintf(r.Out, "parse error: %v\n", err)
		return
	}
	r.run(term)
}

func (r *REPL) run(term lambda.Term) {
	tracer := &lambda.CollectingTracer{}
	result, _, capped := lambda.Evaluate(r.Ctx, term, r.StepCap, tracer)

	if r.Ctx.Flags.Has(lambda.Trace) || r.Ctx.Flags.Has(lambda.FullTrace) {
		h := printer.Highlighter{Flags: r.Ctx.Flags}
		for i, ev := range tracer.Events {
			fmt.Fprintln(r.Out, h.RenderStep(i+1, ev))
		}
	}

	if capped {
		fmt.Fprintln(r.Out, "step cap reached; showing partial reduction")
	}

	if r.Ctx.Flags.Has(lambda.NoPrint) {
		return
	}

	var replacer printer.Replacer
	if r.Ctx.Flags.Has(lambda.VarReplacement) {
		replacer = func(t lambda.Term) (string, bool) {
			for name, def := range r.Ctx.Definitions {
				if lambda.AlphaEquivalentInContext(r.Ctx, t, def) {
					return name, true
				}
			}
			return "", false
		}
	}

	if let, ok := term.(*lambda.Let); ok {
		fmt.Fprintf(r.Out, "%s => %s\n", let.Name, printer.Print(result, r.Ctx.Flags, nil))
		return
	}

	fmt.Fprintln(r.Out, printer.Print(result, r.Ctx.Flags, replacer))
}
