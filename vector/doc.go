// Package vector defines the six-coordinate state vector and its codec. It
// includes:
//   - Vector value type [phi, tau, rho, entropy, latent1, latent2]
//   - Encode: range-checked construction from the four licensed coordinates
//   - Density: the multiplicative phi*tau*rho measure
//   - Embedding encoding (BLOB) and distance functions used by the store
//   - RangeError / InvalidArgumentError, the shared error taxonomy
package vector
