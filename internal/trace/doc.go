// Package trace is the event log of the idtab tool.
//
// Commands open spans around their phases (loading a grammar, verifying,
// writing a snapshot) and drop point events for individual findings. Nothing
// is recorded unless tracing is enabled.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	idtab verify --trace=- --trace-level=phase parse.h
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only error points
//   - LevelPhase: Command and phase boundaries
//   - LevelDetail: Per-file and per-entry events
//   - LevelDebug: Everything
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span, ctx := trace.Start(ctx, trace.ScopePhase, "verify")
//	defer span.End("")
//	span.Point(trace.ScopeFile, "loaded:parse.h", "118 tokens")
package trace
