// Package trace records what the synerr CLI is doing while it loads sources
// and builds errors.
//
// Enable it from the command line:
//
//	synerr batch --trace=- --trace-level=detail requests.toml
//
// Levels control verbosity: off, phase (command and batch boundaries),
// detail (per-file work) and debug (everything). Events are written
// immediately by a StreamTracer as text or NDJSON; when tracing is off the
// Nop tracer costs nothing.
//
// A Tracer travels through context.Context via WithTracer and FromContext.
package trace
