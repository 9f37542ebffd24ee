// Package digest fingerprints traces for display and comparison.
//
// A fingerprint changes whenever any sample, color, name or category of a
// trace changes, and is stable across runs of the same batch. The CLI
// prints them so two plots can be compared without diffing JSON.
package digest
