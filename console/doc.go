// Package console provides a synced, TTY-aware wrapper around the standard
// output streams for drawing progress bars without interleaved writes, plus
// a preconfigured logger and terminal helpers.
package console
