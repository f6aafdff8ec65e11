package operations

import (
	"context"
	gomath "math"

	"github.com/numericore/mathsvc/internal/providers/math/common"
	"github.com/numericore/mathsvc/internal/special"
	"github.com/numericore/mathsvc/internal/types"
)

// TrigOps handles trigonometric operations
type TrigOps struct {
	*common.MathOps
}

// GetTools returns trig tool definitions
func (t *TrigOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.sin",
			Name:        "Sine",
			Description: "Calculate sine (radians)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Angle in radians", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.cos",
			Name:        "Cosine",
			Description: "Calculate cosine (radians)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Angle in radians", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.tan",
			Name:        "Tangent",
			Description: "Calculate tangent (radians)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Angle in radians", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.atan2",
			Name:        "Two-Argument Arctangent",
			Description: "Calculate atan2(y, x)",
			Parameters: []types.Parameter{
				{Name: "y", Type: "number", Description: "Ordinate", Required: true},
				{Name: "x", Type: "number", Description: "Abscissa", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.sinpi",
			Name:        "Sine of Pi Times X",
			Description: "Calculate sin(pi*x) exactly at integers and half-integers",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Multiplier of pi", Required: true},
			},
			Returns: "number",
		},
	}
}

// Sin calculates sine
func (t *TrigOps) Sin(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return common.FiniteResult(gomath.Sin(x), "sine")
}

// Cos calculates cosine
func (t *TrigOps) Cos(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return common.FiniteResult(gomath.Cos(x), "cosine")
}

// Tan calculates tangent
func (t *TrigOps) Tan(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return common.FiniteResult(gomath.Tan(x), "tangent")
}

// Atan2 calculates the two-argument arctangent
func (t *TrigOps) Atan2(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	y, ok := common.GetNumber(params, "y")
	if !ok {
		return common.Failure("y parameter required")
	}
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return common.Success(map[string]interface{}{"result": gomath.Atan2(y, x)})
}

// SinPi calculates sin(pi*x) with exact zeros at integer x
func (t *TrigOps) SinPi(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return common.FiniteResult(special.SinPi(x), "sinpi")
}
