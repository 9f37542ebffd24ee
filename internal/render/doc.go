// Package render draws plot results as images with gonum/plot.
//
// Line traces are split at missing points so gaps stay gaps. Field traces
// become a single contour at their zero level, unfilled. The plot carries
// the layout title and axis labels, a legend entry per trace, and equal
// data spans on both axes when the y axis is anchored to x.
package render
