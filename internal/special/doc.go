// Package special implements the confluent hypergeometric limit function
// 0F1(;v;z) and the Bessel-family primitives it is built on.
//
// Evaluation strategy:
//   - Truncated Taylor series for |z| below a v-dependent threshold
//   - Direct evaluation through modified Bessel I (z > 0) or ordinary
//     Bessel J (z < 0), with the order-(v-1) prefactor kept in log space
//   - Uniform large-order asymptotic expansion (DLMF 10.41) when the
//     log-space exponent check predicts the direct path would overflow
//     or underflow
//
// All functions are pure and reentrant: no caching, no shared state.
// Non-positive integer v is a pole of the gamma prefactor and yields NaN.
package special
