// Package logging holds the process-wide slog logger.
//
// chartleap is silent by default; binaries call SetLogger(New(os.Stderr,
// verbose)) to turn output on.
package logging
