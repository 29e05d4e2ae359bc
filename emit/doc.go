// Package emit is the motion emitter (X in spec.md §2/§4.4): it
// discretizes an ArcPlan into motion lines and splices them into a
// gcode.Program in place of the bridge-infill segments they replace.
//
// Grounded on the retrieved CNC toolpath generator's settings-holding
// generator struct, adapted to mutate an in-memory line slice rather
// than build a standalone file, since X mutates M in place (spec.md
// §4.4 splice contract).
package emit
