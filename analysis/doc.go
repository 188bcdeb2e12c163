// Package analysis derives comparative statistics from the density models:
// multiplicative versus additive gradients, the critical threshold below
// which density is effectively zero, single-coordinate sweeps, and a summary
// of the seeded liminal states.
package analysis
