// Package plot runs batches of equations through the classifier, sampler
// and trace evaluator.
//
// A batch keeps input order. Successful equations become traces colored by
// their index in the batch; failed ones become error records with the
// equation text and reason. An empty batch or one where everything failed
// carries a user-facing message instead of traces.
package plot
