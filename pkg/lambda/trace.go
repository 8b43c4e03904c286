package lambda

// Event is one entry in the rewriter's structured trace (§4.3.5). The
// rewriter never logs or prints — it only emits events; pkg/printer
// decides how (or whether) to render them.
type Event interface {
	isEvent()
}

// DefinedEvent is emitted only for Let inputs to Evaluate.
type DefinedEvent struct {
	Name         string
	Redefinition bool
}

func (DefinedEvent) isEvent() {}

// AlphaEvent records one alpha-conversion performed while avoiding
// capture during a beta-step. Before/After are whole-term snapshots;
// Binder is the Lambda that was renamed.
type AlphaEvent struct {
	Before, After Term
	Binder        *Lambda
	OldName       string
	NewName       string
}

func (AlphaEvent) isEvent() {}

// BetaEvent records one beta-reduction. Sites are the substitution
// slots that were rewritten (§4.3.5).
type BetaEvent struct {
	Before, After Term
	Function      *Lambda
	Argument      Term
	Sites         []*Term
}

func (BetaEvent) isEvent() {}

// Tracer consumes trace events as the rewriter emits them. It is a
// plain parameter, not global state (§9 "Trace observer").
type Tracer interface {
	Emit(Event)
}

// TracerFunc adapts a function to Tracer.
type TracerFunc func(Event)

func (f TracerFunc) Emit(ev Event) { f(ev) }

// CollectingTracer accumulates every event it receives, in order. It
// is the Tracer used by callers that just want the whole sequence
// (e.g. the REPL rendering TRACE/FULL_TRACE) rather than reacting to
// events as they arrive.
type CollectingTracer struct {
	Events []Event
}

func (c *CollectingTracer) Emit(ev Event) {
	c.Events = append(c.Events, ev)
}
