// Package commands defines the chartleap CLI and wires dependencies for subcommands.
//
// Commands
//
//   - plot           Plot equations as plotly JSON, PNG, SVG, PDF or EPS
//   - classify       Print the category and sub-expressions of one equation
//   - fingerprint    Print a digest per plotted trace
//   - config init    Write the default settings file
//   - config show    Print the effective settings
//
// # Implementation
//
// The root command resolves the home directory and installs the logger
// before any subcommand runs. The dependency graph (settings store, engine
// and, with --server, the HTTP client) is built on first use, so config init
// still works when the existing settings file does not load.
package commands
