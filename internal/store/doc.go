// Package store provides file-based persistence for chartleap.
//
// SettingsFileStore keeps the plot settings as JSON under the user's home
// directory (by default ~/.chartleap). WriteFile is the atomic temp-file and
// rename writer the CLI also uses for rendered output.
package store
