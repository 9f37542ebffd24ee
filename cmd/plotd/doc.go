// Package main runs plotd, the HTTP front end of the chartleap engine.
//
// It loads settings from --home (default ~/.chartleap), builds the
// in-process engine and serves the API documented in internal/server on
// --addr (default :8080). Each request plots its own batch; nothing is
// shared between requests besides the read-only settings.
//
// The CLI talks to it with --server:
//
//	plotd --addr :8080 &
//	chartleap --server http://127.0.0.1:8080 plot "y = x^2"
//
// SIGINT or SIGTERM triggers a graceful shutdown.
package main
