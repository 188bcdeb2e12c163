// Package density compares alternative formulas for the perspectival density
// of a state: the original phi*tau*rho product and three entropy-modulated
// variants (linear, quadratic, square root).
package density
