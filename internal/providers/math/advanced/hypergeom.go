package advanced

import (
	"context"

	"github.com/numericore/mathsvc/internal/providers/math/common"
	"github.com/numericore/mathsvc/internal/special"
	"github.com/numericore/mathsvc/internal/types"
)

// HypergeomOps exposes the confluent hypergeometric limit function and the
// Bessel primitives it is built on
type HypergeomOps struct {
	*common.MathOps
}

// GetTools returns hypergeometric tool definitions
func (h *HypergeomOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.hyp0f1",
			Name:        "Confluent Hypergeometric Limit Function",
			Description: "Evaluate 0F1(;v;z) for real v and z",
			Parameters: []types.Parameter{
				{Name: "v", Type: "number", Description: "Lower parameter", Required: true},
				{Name: "z", Type: "number", Description: "Argument", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.hyp0f1c",
			Name:        "Complex Confluent Hypergeometric Limit Function",
			Description: "Evaluate 0F1(;v;z) for real v and complex z",
			Parameters: []types.Parameter{
				{Name: "v", Type: "number", Description: "Lower parameter", Required: true},
				{Name: "re", Type: "number", Description: "Real part of the argument", Required: true},
				{Name: "im", Type: "number", Description: "Imaginary part of the argument", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "math.bessel_iv",
			Name:        "Modified Bessel Function",
			Description: "Evaluate the modified Bessel function of the first kind of real order",
			Parameters: []types.Parameter{
				{Name: "v", Type: "number", Description: "Order", Required: true},
				{Name: "x", Type: "number", Description: "Argument", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.bessel_jv",
			Name:        "Bessel Function",
			Description: "Evaluate the Bessel function of the first kind of real order",
			Parameters: []types.Parameter{
				{Name: "v", Type: "number", Description: "Order", Required: true},
				{Name: "x", Type: "number", Description: "Argument", Required: true},
			},
			Returns: "number",
		},
	}
}

// Hyp0F1 evaluates 0F1(;v;z) on the real line
func (h *HypergeomOps) Hyp0F1(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, ok := common.GetNumber(params, "v")
	if !ok {
		return common.Failure("v parameter required")
	}
	z, ok := common.GetNumber(params, "z")
	if !ok {
		return common.Failure("z parameter required")
	}
	if err := common.ValidateNumber(v, "v"); err != nil {
		return common.Failure(err.Error())
	}
	if err := common.ValidateNumber(z, "z"); err != nil {
		return common.Failure(err.Error())
	}

	return common.FiniteResult(special.Hyp0F1(v, z), "hyp0f1")
}

// Hyp0F1C evaluates 0F1(;v;z) for complex z given as re/im parts
func (h *HypergeomOps) Hyp0F1C(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, ok := common.GetNumber(params, "v")
	if !ok {
		return common.Failure("v parameter required")
	}
	re, ok := common.GetNumber(params, "re")
	if !ok {
		return common.Failure("re parameter required")
	}
	im, ok := common.GetNumber(params, "im")
	if !ok {
		return common.Failure("im parameter required")
	}
	if err := common.ValidateNumber(v, "v"); err != nil {
		return common.Failure(err.Error())
	}
	if err := common.ValidateNumber(re, "re"); err != nil {
		return common.Failure(err.Error())
	}
	if err := common.ValidateNumber(im, "im"); err != nil {
		return common.Failure(err.Error())
	}

	return common.ComplexResult(special.Hyp0F1C(v, complex(re, im)), "hyp0f1c")
}

// BesselIv evaluates the modified Bessel function of the first kind
func (h *HypergeomOps) BesselIv(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, ok := common.GetNumber(params, "v")
	if !ok {
		return common.Failure("v parameter required")
	}
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	if err := common.ValidateNumber(v, "v"); err != nil {
		return common.Failure(err.Error())
	}
	if err := common.ValidateNumber(x, "x"); err != nil {
		return common.Failure(err.Error())
	}

	return common.FiniteResult(special.Iv(v, x), "bessel_iv")
}

// BesselJv evaluates the Bessel function of the first kind
func (h *HypergeomOps) BesselJv(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	v, ok := common.GetNumber(params, "v")
	if !ok {
		return common.Failure("v parameter required")
	}
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	if err := common.ValidateNumber(v, "v"); err != nil {
		return common.Failure(err.Error())
	}
	if err := common.ValidateNumber(x, "x"); err != nil {
		return common.Failure(err.Error())
	}

	return common.FiniteResult(special.Jv(v, x), "bessel_jv")
}
