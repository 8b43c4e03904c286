// Package lambda implements the evaluator core for an untyped lambda
// calculus interpreter: the term representation, capture-avoiding
// substitution, the normal-order reduction driver, free/bound-variable
// analysis, and the alpha-equivalence oracle. Surface syntax, the REPL
// loop, and pretty-printing live in sibling packages; this package only
// exposes the identities they need (pkg/lexer, pkg/parser, pkg/printer,
// pkg/repl).
package lambda

import "fmt"

// Location marks a span in the original source text. It is carried for
// diagnostics only — the evaluator never inspects it.
type Location struct {
	Begin  int
	Length int
}

// Term is the tagged variant at the root of every lambda expression.
// The concrete types are pointers so that a field holding a Term is an
// addressable slot: substitution sites are literal pointers into the
// tree (see FindOccurrences in vars.go), not parallel index structures.
type Term interface {
	isTerm()
	Loc() Location
}

// Var is a variable reference.
type Var struct {
	Name string
	At   Location
}

func (*Var) isTerm()          {}
func (v *Var) Loc() Location  { return v.At }
func (v *Var) String() string { return v.Name }

// Apply is the application (Fn Arg).
type Apply struct {
	Fn, Arg Term
	At      Location
}

func (*Apply) isTerm()         {}
func (a *Apply) Loc() Location { return a.At }
func (a *Apply) String() string {
	return fmt.Sprintf("(%s %s)", a.Fn, a.Arg)
}

// Lambda is the abstraction λParam.Body.
type Lambda struct {
	Param    string
	ParamLoc Location
	Body     Term
	At       Location
}

func (*Lambda) isTerm()         {}
func (l *Lambda) Loc() Location { return l.At }
func (l *Lambda) String() string {
	return fmt.Sprintf("(λ%s.%s)", l.Param, l.Body)
}

// Let is a top-level definition, `let Name = Value`. It is never
// reducible on its own: evaluating a Let mutates the Context and hands
// the caller Value back (§3, §6.1); it must never reach the rewriter.
type Let struct {
	Name  string
	Value Term
	At    Location
}

func (*Let) isTerm()          {}
func (l *Let) Loc() Location  { return l.At }
func (l *Let) String() string { return fmt.Sprintf("let %s = %s", l.Name, l.Value) }

// Clone returns a deep copy of t. Every non-Var variant owns its
// children exclusively, so clones never share a subtree with the
// original (§3 Ownership & lifecycle, invariant 1 in §8).
func Clone(t Term) Term {
	switch n := t.(type) {
	case nil:
		return nil
	case *Var:
		cp := *n
		return &cp
	case *Apply:
		return &Apply{Fn: Clone(n.Fn), Arg: Clone(n.Arg), At: n.At}
	case *Lambda:
		return &Lambda{Param: n.Param, ParamLoc: n.ParamLoc, Body: Clone(n.Body), At: n.At}
	case *Let:
		return &Let{Name: n.Name, Value: Clone(n.Value), At: n.At}
	default:
		panic(fmt.Sprintf("lambda: Clone: unhandled term type %T", t))
	}
}

// Equal is syntactic equality: same tag, same children recursively,
// same variable/parameter names. It is not alpha-equivalence — use
// AlphaEquivalent (alphaequiv.go) for that.
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case *Var:
		y, ok := b.(*Var)
		return ok && x.Name == y.Name
	case *Apply:
		y, ok := b.(*Apply)
		return ok && Equal(x.Fn, y.Fn) && Equal(x.Arg, y.Arg)
	case *Lambda:
		y, ok := b.(*Lambda)
		return ok && x.Param == y.Param && Equal(x.Body, y.Body)
	case *Let:
		y, ok := b.(*Let)
		return ok && x.Name == y.Name && Equal(x.Value, y.Value)
	default:
		return false
	}
}

// IsLet reports whether t is a top-level definition rather than a true
// expression.
func IsLet(t Term) bool {
	_, ok := t.(*Let)
	return ok
}
