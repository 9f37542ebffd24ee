// Package remote provides an HTTP implementation of domain.PlotService
// that delegates to a chartleap server (see cmd/plotd).
//
// Requests are JSON over HTTP. Non-2xx statuses are returned as errors
// carrying the path, the status text and the server's error message when
// it sent one.
package remote
