package lambda

import "sort"

// Fresh derives the next candidate name for a collision at name: a
// trailing prime. Calling Fresh repeatedly on its own output yields
// x, x', x'', ... — each step escapes a collision with strictly fewer
// primes than itself, which is why the generator always terminates
// (§4.3.2).
func Fresh(name string) string {
	return name + "'"
}

// AlphaConvert renames every free occurrence of oldName inside
// binder's body to freshName, and updates binder's own parameter. If a
// nested Lambda binds oldName, the subtree under it is left untouched
// (oldName is already shadowed there). If a nested Lambda binds
// freshName, that inner binder is itself alpha-converted first — to
// Fresh(freshName) — so the outer rename can proceed without
// capturing it (§4.3.2).
func AlphaConvert(binder *Lambda, oldName, freshName string) {
	var walk func(site *Term)
	walk = func(site *Term) {
		switch n := (*site).(type) {
		case *Var:
			if n.Name == oldName {
				*site = &Var{Name: freshName, At: n.At}
			}
		case *Apply:
			walk(&n.Fn)
			walk(&n.Arg)
		case *Lambda:
			if n.Param == oldName {
				return
			}
			if n.Param == freshName {
				AlphaConvert(n, freshName, Fresh(freshName))
			}
			walk(&n.Body)
		case *Let:
			walk(&n.Value)
		}
	}
	walk(&binder.Body)
	binder.Param = freshName
}

// tryBeta attempts a single beta-step rooted at app, per §4.3.3. It
// does not search beyond app's own function spine: if app.Fn is itself
// an Apply, it recurses into that Apply looking for a redex there
// (step 2 of §4.3.3) before giving up. emit, if non-nil, receives one
// AlphaEvent per capture-avoiding rename (possibly none), followed by
// the BetaEvent.
func tryBeta(app *Apply, emit func(Event)) (Term, bool) {
	if lam, ok := app.Fn.(*Lambda); ok {
		before := Clone(app)

		// §4.3.3b: avoid capture by alpha-converting any binder in fn
		// whose name is free in arg, repeating to a fixed point.
		for {
			argFree := FreeNames(app.Arg, -1)
			bound := BoundVariables(lam)
			names := make([]string, 0, len(bound))
			for name := range bound {
				names = append(names, name)
			}
			sort.Strings(names)
			var collide string
			found := false
			for _, name := range names {
				if argFree.Contains(name) {
					collide = name
					found = true
					break
				}
			}
			if !found {
				break
			}
			fresh := Fresh(collide)
			AlphaConvert(bound[collide], collide, fresh)
			if emit != nil {
				emit(AlphaEvent{
					Before:   before,
					After:    Clone(app),
					Binder:   bound[collide],
					OldName:  collide,
					NewName:  fresh,
				})
			}
			before = Clone(app)
		}

		sites := FindOccurrences(&lam.Body, lam.Param)
		for _, site := range sites {
			*site = Clone(app.Arg)
		}
		result := lam.Body
		if emit != nil {
			emit(BetaEvent{
				Before:    before,
				After:     Clone(result),
				Function:  lam,
				Argument:  app.Arg,
				Sites:     sites,
			})
		}
		return result, true
	}
	if inner, ok := app.Fn.(*Apply); ok {
		if res, ok2 := tryBeta(inner, emit); ok2 {
			app.Fn = res
			return app, true
		}
	}
	return app, false
}

// stepOnce performs one reduction step somewhere in t and reports
// whether it found one. It prefers the redex at the root application
// (leftmost-outermost), then descends into an outer Lambda's body, and
// — per the mandated resolution of open question 1 in §9 — also
// normalises under both sides of a stuck application, so the result is
// a full normal form rather than weak head normal form.
func stepOnce(t Term, emit func(Event)) (Term, bool) {
	switch n := t.(type) {
	case *Apply:
		if res, ok := tryBeta(n, emit); ok {
			return res, true
		}
		if newFn, ok := stepOnce(n.Fn, emit); ok {
			n.Fn = newFn
			return n, true
		}
		if newArg, ok := stepOnce(n.Arg, emit); ok {
			n.Arg = newArg
			return n, true
		}
		return t, false
	case *Lambda:
		if newBody, ok := stepOnce(n.Body, emit); ok {
			n.Body = newBody
			return n, true
		}
		return t, false
	default:
		return t, false
	}
}

// Reduce drives t to normal form (or until stepCap steps have run, if
// stepCap > 0), emitting trace events to tracer in reduction order.
// Termination is not guaranteed for divergent user terms (§4.3.6) —
// stepCap is the embedder's escape hatch, not part of the core
// contract.
func Reduce(t Term, stepCap int, tracer Tracer) (result Term, steps int, capped bool) {
	emit := func(ev Event) {
		if tracer != nil {
			tracer.Emit(ev)
		}
	}
	for {
		if stepCap > 0 && steps >= stepCap {
			return t, steps, true
		}
		next, ok := stepOnce(t, emit)
		if !ok {
			return t, steps, false
		}
		t = next
		steps++
	}
}
