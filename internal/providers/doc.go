// Package providers implements the service provider system.
//
// Service providers expose capabilities through a standardized tool-based
// interface. The math provider is the primary one: it evaluates elementary
// operations, statistics and the special-function families, including the
// confluent hypergeometric limit function.
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
//
// Example Usage:
//
//	m := providers.NewMath()
//	result, err := m.Execute(ctx, "math.hyp0f1", params, appCtx)
package providers
