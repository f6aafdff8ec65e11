// Package common provides the shared plumbing for the math provider modules.
//
// The provider is organized into specialized modules:
//   - operations: elementary operations (arithmetic, trigonometry)
//   - statistics: statistical functions (mean, median, stdev, correlation)
//   - utilities: mathematical constants
//   - advanced: special functions (gamma family, Bessel, hypergeometric)
//
// Built on gonum.org/v1/gonum for scientific computing:
//   - IEEE 754 floating-point accuracy
//   - NaN and Infinity handling
//
// Features:
//   - Input validation for edge cases
//   - Proper error handling for invalid operations
//   - Consistent JSON result format
//   - Support for arrays and scalar operations
//
// Example Usage:
//
//	special := &advanced.SpecialOps{MathOps: &common.MathOps{}}
//	result, err := special.Gamma(ctx, params, appCtx)
package common
