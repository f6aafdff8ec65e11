package advanced

import (
	"context"
	gomath "math"

	"github.com/numericore/mathsvc/internal/providers/math/common"
	"github.com/numericore/mathsvc/internal/types"
	"gonum.org/v1/gonum/mathext"
)

// SpecialOps handles the gamma family of special functions using gonum
type SpecialOps struct {
	*common.MathOps
}

// GetTools returns special function tool definitions
func (sp *SpecialOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.gamma",
			Name:        "Gamma Function",
			Description: "Calculate the gamma function",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Input value", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.lgamma",
			Name:        "Log Gamma",
			Description: "Calculate the natural log of the absolute gamma function",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Input value", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.beta",
			Name:        "Beta Function",
			Description: "Calculate the beta function B(a,b)",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First parameter", Required: true},
				{Name: "b", Type: "number", Description: "Second parameter", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.digamma",
			Name:        "Digamma Function",
			Description: "Calculate the logarithmic derivative of the gamma function",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Input value", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.erf",
			Name:        "Error Function",
			Description: "Calculate the error function",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Input value", Required: true},
			},
			Returns: "number",
		},
	}
}

// Gamma calculates the gamma function
func (sp *SpecialOps) Gamma(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	if err := common.ValidateNumber(x, "x"); err != nil {
		return common.Failure(err.Error())
	}

	return common.FiniteResult(gomath.Gamma(x), "gamma")
}

// Lgamma calculates the log of the absolute gamma function
func (sp *SpecialOps) Lgamma(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	if err := common.ValidateNumber(x, "x"); err != nil {
		return common.Failure(err.Error())
	}

	result, sign := gomath.Lgamma(x)
	if gomath.IsNaN(result) || gomath.IsInf(result, 0) {
		return common.Failure("lgamma undefined for the given input")
	}

	return common.Success(map[string]interface{}{"result": result, "sign": sign})
}

// Beta calculates the beta function
func (sp *SpecialOps) Beta(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, ok := common.GetNumber(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}
	b, ok := common.GetNumber(params, "b")
	if !ok {
		return common.Failure("b parameter required")
	}
	if err := common.ValidateNumber(a, "a"); err != nil {
		return common.Failure(err.Error())
	}
	if err := common.ValidateNumber(b, "b"); err != nil {
		return common.Failure(err.Error())
	}

	return common.FiniteResult(mathext.Beta(a, b), "beta")
}

// Digamma calculates the logarithmic derivative of the gamma function
func (sp *SpecialOps) Digamma(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	if err := common.ValidateNumber(x, "x"); err != nil {
		return common.Failure(err.Error())
	}

	return common.FiniteResult(mathext.Digamma(x), "digamma")
}

// Erf calculates the error function
func (sp *SpecialOps) Erf(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	if err := common.ValidateNumber(x, "x"); err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": gomath.Erf(x)})
}
