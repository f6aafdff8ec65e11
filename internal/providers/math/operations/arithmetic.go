package operations

import (
	"context"
	gomath "math"

	"github.com/numericore/mathsvc/internal/providers/math/common"
	"github.com/numericore/mathsvc/internal/types"
)

// ArithmeticOps handles basic arithmetic operations
type ArithmeticOps struct {
	*common.MathOps
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.add",
			Name:        "Add",
			Description: "Add two or more numbers",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Numbers to add", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.subtract",
			Name:        "Subtract",
			Description: "Subtract b from a",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First number", Required: true},
				{Name: "b", Type: "number", Description: "Second number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.multiply",
			Name:        "Multiply",
			Description: "Multiply two or more numbers",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Numbers to multiply", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.divide",
			Name:        "Divide",
			Description: "Divide a by b",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "Dividend", Required: true},
				{Name: "b", Type: "number", Description: "Divisor", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.power",
			Name:        "Power",
			Description: "Raise base to the given exponent",
			Parameters: []types.Parameter{
				{Name: "base", Type: "number", Description: "Base", Required: true},
				{Name: "exponent", Type: "number", Description: "Exponent", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.sqrt",
			Name:        "Square Root",
			Description: "Calculate square root of a number",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.exp",
			Name:        "Exponential",
			Description: "Calculate e^x",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Exponent", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.log",
			Name:        "Natural Logarithm",
			Description: "Calculate ln(x) (base e)",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "number",
		},
	}
}

// Add adds numbers
func (a *ArithmeticOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok || len(numbers) == 0 {
		return common.Failure("numbers array required")
	}

	sum := 0.0
	for _, n := range numbers {
		sum += n
	}

	return common.Success(map[string]interface{}{"result": sum})
}

// Subtract subtracts b from a
func (a *ArithmeticOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	valA, ok := common.GetNumber(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}
	valB, ok := common.GetNumber(params, "b")
	if !ok {
		return common.Failure("b parameter required")
	}

	return common.Success(map[string]interface{}{"result": valA - valB})
}

// Multiply multiplies numbers
func (a *ArithmeticOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok || len(numbers) == 0 {
		return common.Failure("numbers array required")
	}

	product := 1.0
	for _, n := range numbers {
		product *= n
	}

	return common.Success(map[string]interface{}{"result": product})
}

// Divide divides a by b
func (a *ArithmeticOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	valA, ok := common.GetNumber(params, "a")
	if !ok {
		return common.Failure("a parameter required")
	}
	valB, ok := common.GetNumber(params, "b")
	if !ok {
		return common.Failure("b parameter required")
	}
	if valB == 0 {
		return common.Failure("division by zero")
	}

	return common.Success(map[string]interface{}{"result": valA / valB})
}

// Power raises base to exponent
func (a *ArithmeticOps) Power(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	base, ok := common.GetNumber(params, "base")
	if !ok {
		return common.Failure("base parameter required")
	}
	exponent, ok := common.GetNumber(params, "exponent")
	if !ok {
		return common.Failure("exponent parameter required")
	}

	return common.FiniteResult(gomath.Pow(base, exponent), "power")
}

// Sqrt calculates square root
func (a *ArithmeticOps) Sqrt(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	if x < 0 {
		return common.Failure("cannot take square root of negative number")
	}

	return common.Success(map[string]interface{}{"result": gomath.Sqrt(x)})
}

// Exp calculates e^x
func (a *ArithmeticOps) Exp(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}

	return common.FiniteResult(gomath.Exp(x), "exponential")
}

// Log calculates natural logarithm
func (a *ArithmeticOps) Log(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	if x <= 0 {
		return common.Failure("logarithm undefined for non-positive numbers")
	}

	return common.Success(map[string]interface{}{"result": gomath.Log(x)})
}
