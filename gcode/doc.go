// Package gcode is the motion-program model (M in spec.md §2): an
// ordered, line-oriented representation of a slicer-emitted motion
// program, parsed just far enough to locate layers, bridge-infill
// segments and surrounding perimeters (spec.md §6.1), and to splice new
// motion back in without disturbing anything else byte-for-byte.
//
// The parser keeps every input line, recognized or not, in Program.Lines.
// Layers and Segments are lightweight views over contiguous ranges of
// that slice; rewriting a segment means replacing its line range, which
// is what makes the round-trip invariant (spec.md §8 invariant 5) hold
// by construction rather than by careful bookkeeping.
package gcode
