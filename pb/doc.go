// Package pb renders single-line, in-place updating terminal progress bars.
//
// A ProgressBar is built once from a style, a width and a set of optional
// annotations (percentage, counter, ETA, throughput), and then drawn
// repeatedly with a completion fraction. A MultiProgress tracks several
// independent bars at once, repositioning the cursor between updates.
//
// Bars are not safe for concurrent use; each instance expects a single
// drawing goroutine.
package pb
