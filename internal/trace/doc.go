// Package trace records what the csskit driver is doing while it works
// through a batch of stylesheets.
//
// Tracing is off unless requested on the command line:
//
//	csskit fmt --check --trace=- --trace-level=detail src/
//
// A Tracer receives Events. StreamTracer writes each event as it arrives,
// RingTracer keeps the most recent ones for a dump after a failure, and
// MultiTracer feeds several tracers at once. Nop discards everything.
//
// Levels filter by Scope: LevelPhase shows driver and pass events,
// LevelDetail adds one span per file, LevelDebug adds node events.
//
// The tracer travels through the driver in a context:
//
//	ctx = trace.WithTracer(ctx, t)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "parse", parent)
//	defer span.End("")
package trace
