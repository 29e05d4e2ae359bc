// Package arcplan is the arc planner (P in spec.md §2/§4.3): given a
// bridge region and its anchor boundary, it grows concentric arcs
// outward from a breadth-first queue of frontier curves until the
// region is covered to within a residual tolerance.
//
// The frontier queue is modeled directly on the reference graph
// library's breadth-first walker: a FIFO of frontier values, a
// visited/covered accumulator, and a loop that pops, processes, and
// pushes successors until the queue drains or a global stop condition
// fires.
package arcplan
