// Package printer renders a pkg/lambda.Term as text, honouring the
// printing flags in spec §6.2, and colourises the rewriter's trace
// events for TRACE/FULL_TRACE display (§4.3.5, §9). The core never
// imports this package or fatih/color directly — it only exposes
// sub-term identities for the printer to highlight.
package printer

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/vic/lambdarepl/pkg/lambda"
)

// Replacer looks up a name to display in place of a term that is
// alpha-equivalent to one of the interpreter's named definitions
// (VAR_REPLACEMENT, §6.2). It returns ("", false) when no definition
// matches.
type Replacer func(t lambda.Term) (name string, ok bool)

// Print renders term according to flags. replacer may be nil.
func Print(term lambda.Term, flags lambda.Flags, replacer Replacer) string {
	var b strings.Builder
	printTerm(&b, term, flags, replacer, false)
	if replacer != nil {
		if name, ok := replacer(term); ok {
			fmt.Fprintf(&b, "\n= %s", name)
		}
	}
	return b.String()
}

func printTerm(b *strings.Builder, t lambda.Term, flags lambda.Flags, replacer Replacer, argPos bool) {
	switch n := t.(type) {
	case *lambda.Var:
		b.WriteString(n.Name)

	case *lambda.Lambda:
		if argPos {
			b.WriteByte('(')
			defer b.WriteByte(')')
		}
		printAbstraction(b, n, flags, replacer)

	case *lambda.Apply:
		if argPos {
			b.WriteByte('(')
			defer b.WriteByte(')')
		}
		printTerm(b, n.Fn, flags, replacer, false)
		b.WriteByte(' ')
		printTerm(b, n.Arg, flags, replacer, !abbrevArg(n.Arg, flags))

	case *lambda.Let:
		fmt.Fprintf(b, "let %s = ", n.Name)
		printTerm(b, n.Value, flags, replacer, false)

	default:
		b.WriteString("<?>")
	}
}

// abbrevArg reports whether, under ABBREV_PARENS, an application
// argument may be printed without surrounding parens: bare variables
// always qualify; lambdas qualify too, since a trailing lambda already
// extends as far right as the grammar allows.
func abbrevArg(t lambda.Term, flags lambda.Flags) bool {
	if !flags.Has(lambda.AbbrevParens) {
		return false
	}
	switch t.(type) {
	case *lambda.Var:
		return true
	case *lambda.Lambda:
		return true
	default:
		return false
	}
}

func printAbstraction(b *strings.Builder, l *lambda.Lambda, flags lambda.Flags, replacer Replacer) {
	binder := "λ"
	sep := "."
	if flags.Has(lambda.HaskellStyle) {
		binder = "\\"
		sep = " ->"
	}

	params := []string{l.Param}
	body := l.Body
	if flags.Has(lambda.AbbrevLambda) {
		for {
			inner, ok := body.(*lambda.Lambda)
			if !ok {
				break
			}
			params = append(params, inner.Param)
			body = inner.Body
		}
	}

	b.WriteString(binder)
	b.WriteString(strings.Join(params, " "))
	b.WriteString(sep)
	b.WriteByte(' ')
	printTerm(b, body, flags, replacer, false)
}

// Highlighter renders a trace event as a numbered line, colouring the
// function and argument of a beta step and the old/new names and binder
// of an alpha step. The substitution sites (BetaEvent.Sites) are not
// highlighted, and the FULL_TRACE before/after snapshots are printed
// without colour.
type Highlighter struct {
	Flags lambda.Flags
}

var (
	siteColor   = color.New(color.FgYellow, color.Bold)
	binderColor = color.New(color.FgCyan, color.Bold)
	arrowColor  = color.New(color.FgGreen)
)

// RenderStep renders one trace entry as a numbered line; under
// FULL_TRACE it adds the before/after snapshot pair.
func (h Highlighter) RenderStep(n int, ev lambda.Event) string {
	var b strings.Builder
	switch e := ev.(type) {
	case lambda.DefinedEvent:
		verb := "defined"
		if e.Redefinition {
			verb = "redefined"
		}
		fmt.Fprintf(&b, "%d. %s %s", n, verb, binderColor.Sprint(e.Name))

	case lambda.AlphaEvent:
		fmt.Fprintf(&b, "%d. alpha-convert %s %s %s (binder %s)",
			n,
			binderColor.Sprint(e.OldName),
			arrowColor.Sprint("->"),
			binderColor.Sprint(e.NewName),
			siteColor.Sprint(Print(e.Binder, h.Flags, nil)))
		if h.Flags.Has(lambda.FullTrace) {
			fmt.Fprintf(&b, "\n   %s\n   %s %s",
				Print(e.Before, h.Flags, nil), arrowColor.Sprint("=>"), Print(e.After, h.Flags, nil))
		}

	case lambda.BetaEvent:
		fmt.Fprintf(&b, "%d. beta-reduce %s applied to %s",
			n,
			binderColor.Sprint(Print(e.Function, h.Flags, nil)),
			siteColor.Sprint(Print(e.Argument, h.Flags, nil)))
		if h.Flags.Has(lambda.FullTrace) {
			fmt.Fprintf(&b, "\n   %s\n   %s %s",
				Print(e.Before, h.Flags, nil), arrowColor.Sprint("=>"), Print(e.After, h.Flags, nil))
		}
	}
	return b.String()
}
