// Package logging provides a minimal logging interface and adapters for cellspace.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that space builders and the sampling machinery use for observability. This package
// includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - SpaceLogger with contextual helpers and domain specific logging for
//     topology construction and empty-cell sampling
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "text", false)
//	g, err := grid.New(20, 20, func(o *grid.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
