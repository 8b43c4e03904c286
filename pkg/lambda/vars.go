package lambda

import (
	"github.com/hashicorp/go-set/v3"
)

// Occurrence is a single variable occurrence found by a traversal: the
// name, and the addressable slot it sits in. The same name occurring
// at two positions yields two distinct Occurrences (§4.2) — this is
// why the result is a slice, not a set. Site always points at the real
// field inside the caller's tree (never a copy), so replacing *Site
// mutates the tree in place.
type Occurrence struct {
	Name string
	Site *Term
}

// FreeVariables returns every occurrence reachable from *site whose
// name is not bound by an enclosing Lambda. Apply traverses Fn before
// Arg (§4.2 tie-break).
//
// depthLimit, when >= 0, stops descending into a Lambda's body once
// that many Lambda levels have been entered; pass -1 for "unlimited".
// This is what lets the alpha-equivalence oracle reason one binder at
// a time (§4.4).
func FreeVariables(site *Term, depthLimit int) []Occurrence {
	var out []Occurrence
	var walk func(site *Term, bound map[string]int, depth int)
	walk = func(site *Term, bound map[string]int, depth int) {
		switch n := (*site).(type) {
		case *Var:
			if bound[n.Name] == 0 {
				out = append(out, Occurrence{Name: n.Name, Site: site})
			}
		case *Apply:
			walk(&n.Fn, bound, depth)
			walk(&n.Arg, bound, depth)
		case *Lambda:
			if depthLimit >= 0 && depth >= depthLimit {
				return
			}
			bound[n.Param]++
			walk(&n.Body, bound, depth+1)
			bound[n.Param]--
		case *Let:
			walk(&n.Value, bound, depth)
		}
	}
	walk(site, map[string]int{}, 0)
	return out
}

// FreeNames is the pure, name-only view of free variables: the set of
// distinct names, with no addressable sites and no duplicate entries.
// The alpha-conversion collision check (§4.3.3b) and the
// alpha-equivalence oracle's one-level check (§4.4) reason about
// names, not occurrences, so they use this instead of deduplicating
// FreeVariables by hand. Context inlining needs the sites to rewrite,
// so it uses FreeVariables.
func FreeNames(t Term, depthLimit int) *set.Set[string] {
	names := set.New[string](8)
	var walk func(t Term, bound map[string]int, depth int)
	walk = func(t Term, bound map[string]int, depth int) {
		switch n := t.(type) {
		case *Var:
			if bound[n.Name] == 0 {
				names.Insert(n.Name)
			}
		case *Apply:
			walk(n.Fn, bound, depth)
			walk(n.Arg, bound, depth)
		case *Lambda:
			if depthLimit >= 0 && depth >= depthLimit {
				return
			}
			bound[n.Param]++
			walk(n.Body, bound, depth+1)
			bound[n.Param]--
		case *Let:
			walk(n.Value, bound, depth)
		}
	}
	walk(t, map[string]int{}, 0)
	return names
}

// BoundVariables maps each name bound at least once in e to the
// innermost Lambda binding it. Traversal visits a binder before
// descending into its body, so a nested binder for the same name
// (shadowing) overwrites the outer one — the innermost wins, matching
// §4.2.
func BoundVariables(e Term) map[string]*Lambda {
	out := map[string]*Lambda{}
	var walk func(t Term)
	walk = func(t Term) {
		switch n := t.(type) {
		case *Apply:
			walk(n.Fn)
			walk(n.Arg)
		case *Lambda:
			out[n.Param] = n
			walk(n.Body)
		case *Let:
			walk(n.Value)
		}
	}
	walk(e)
	return out
}

// FindOccurrences returns the substitution sites reachable from *site
// that a beta-step would replace for variable x, stopping at (not
// descending past) any Lambda that re-binds x (§4.2).
func FindOccurrences(site *Term, x string) []*Term {
	var out []*Term
	var walk func(site *Term)
	walk = func(site *Term) {
		switch n := (*site).(type) {
		case *Var:
			if n.Name == x {
				out = append(out, site)
			}
		case *Apply:
			walk(&n.Fn)
			walk(&n.Arg)
		case *Lambda:
			if n.Param == x {
				return
			}
			walk(&n.Body)
		case *Let:
			walk(&n.Value)
		}
	}
	walk(site)
	return out
}
