// Package trajectory iterates an operator over a state vector and records the
// vector and its density at every step. Simulate runs a single trajectory;
// SimulateAll runs independent trajectories concurrently.
package trajectory
