// Package operator implements the bounded transformations that move a state
// vector through the space. Primitive operators shift one coordinate by a
// signed magnitude; composite operators model specific regimes (progression,
// bifurcation, depth gradient, flow and panic induction).
//
// Every operator clamps its output to [0, 1] and returns a new vector. All
// operators are exposed through the uniform Operator type so callers such as
// the trajectory simulator can apply them without inspecting names.
package operator
