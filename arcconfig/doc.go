// Package arcconfig holds the planner's configuration struct (spec.md
// §3) and the precedence chain that produces it: compiled-in defaults,
// overlaid by the motion program's own end-of-file "; key = value"
// block, overlaid by an optional sidecar file next to the motion file
// (spec.md §6.4). There is no process-wide mutable configuration
// (spec.md §9): every planner call receives one Config value as an
// explicit argument.
package arcconfig
