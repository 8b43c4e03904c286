package lambda

// Context is the process-wide interpreter state (§3): the named
// top-level definitions available for inlining, and the active
// printing/behaviour flags. It is created at interpreter start,
// mutated only by evaluating Let forms (or the REPL's :load), and is
// never shared across concurrent evaluators — this interpreter is
// single-threaded (§5).
type Context struct {
	Definitions map[string]Term
	Flags       Flags
}

// NewContext returns an empty interpreter context.
func NewContext() *Context {
	return &Context{Definitions: map[string]Term{}}
}

// Inline replaces, in place, every free variable in term whose name is
// present in ctx.Definitions with a clone of that definition's
// right-hand side, and returns the resulting term (callers that must
// keep the original pass a Clone, as Evaluate does). A shadowed occurrence (bound by an
// enclosing Lambda) is left alone. This is a single pass: it does not
// repeat to a fixed point, so a self-referential definition
// (`let x = x ...`) does not loop here — see DESIGN.md open question
// on §4.3.1/§9.
func (ctx *Context) Inline(term Term) Term {
	if len(ctx.Definitions) == 0 {
		return term
	}
	for _, occ := range FreeVariables(&term, -1) {
		if def, ok := ctx.Definitions[occ.Name]; ok {
			*occ.Site = Clone(def)
		}
	}
	return term
}

// Evaluate is the core entrypoint (§6.1). If term is a Let, ctx is
// mutated (the definition is stored, replacing any prior one) and the
// stored value is returned as-is, with no reduction — a Let is never
// reducible (§3). Otherwise term is cloned, inlined against ctx, and
// reduced to normal form (or until stepCap steps have run, if
// stepCap > 0; 0 means unlimited). capped reports whether the step cap
// was hit before reaching normal form.
func Evaluate(ctx *Context, term Term, stepCap int, tracer Tracer) (result Term, steps int, capped bool) {
	if let, ok := term.(*Let); ok {
		_, redefined := ctx.Definitions[let.Name]
		value := Clone(let.Value)
		ctx.Definitions[let.Name] = value
		if tracer != nil {
			tracer.Emit(DefinedEvent{Name: let.Name, Redefinition: redefined})
		}
		return value, 0, false
	}
	working := ctx.Inline(Clone(term))
	return Reduce(working, stepCap, tracer)
}

// AlphaEquivalentInContext implements the ctx-aware oracle used for
// back-substitution (§6.1, §4.4): it evaluates b under ctx first, then
// compares the result against a (which the caller has typically
// already reduced).
func AlphaEquivalentInContext(ctx *Context, a, b Term) bool {
	reducedB, _, _ := Evaluate(ctx, b, 0, nil)
	return AlphaEquivalent(a, reducedB)
}
