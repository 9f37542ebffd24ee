// Package app wires application dependencies for the CLI and the server.
//
// It loads settings from the home directory, builds the in-process engine
// (parser, classifier, plot service) and, when a server URL is configured,
// swaps in the HTTP client as the plot service. Commands use the result
// through the Wire struct.
package app
