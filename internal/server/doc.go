// Package server exposes the plotting engine over HTTP.
//
// HTTP API
//
//	POST /plot {"equations": ["y = x^2", ...]}
//	    Plot the batch and return the PlotResult as JSON. Equations that
//	    fail are reported in "errors"; the request itself still succeeds.
//
//	POST /classify {"equation": "..."}
//	    Return the category, sub-expressions and bound variable. A
//	    malformed equation answers 422 with {"error": "..."}.
//
//	GET /healthz
//	    Answer "ok".
//
// Malformed JSON answers 400 and an unknown method on a known path answers
// 405. Every request is written to the package logger as one access line
// with method, path, remote, status, bytes and duration.
package server
