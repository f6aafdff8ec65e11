package statistics

import (
	"context"
	gomath "math"
	"sort"

	"github.com/numericore/mathsvc/internal/providers/math/common"
	"github.com/numericore/mathsvc/internal/types"
	"gonum.org/v1/gonum/stat"
)

// StatsOps handles statistical operations using gonum
type StatsOps struct {
	*common.MathOps
}

// GetTools returns stats tool definitions
func (s *StatsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.mean",
			Name:        "Mean",
			Description: "Calculate arithmetic mean",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.median",
			Name:        "Median",
			Description: "Calculate median value",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.stdev",
			Name:        "Standard Deviation",
			Description: "Calculate sample standard deviation",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.variance",
			Name:        "Variance",
			Description: "Calculate sample variance",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Array of numbers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.correlation",
			Name:        "Correlation",
			Description: "Calculate Pearson correlation coefficient",
			Parameters: []types.Parameter{
				{Name: "x", Type: "array", Description: "First dataset", Required: true},
				{Name: "y", Type: "array", Description: "Second dataset", Required: true},
			},
			Returns: "number",
		},
	}
}

// Mean calculates the arithmetic mean
func (s *StatsOps) Mean(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok || len(numbers) == 0 {
		return common.Failure("numbers array required")
	}

	return common.Success(map[string]interface{}{"result": stat.Mean(numbers, nil)})
}

// Median calculates the median
func (s *StatsOps) Median(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok || len(numbers) == 0 {
		return common.Failure("numbers array required")
	}

	sorted := append([]float64(nil), numbers...)
	sort.Float64s(sorted)

	n := len(sorted)
	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return common.Success(map[string]interface{}{"result": median})
}

// Stdev calculates the sample standard deviation
func (s *StatsOps) Stdev(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok || len(numbers) < 2 {
		return common.Failure("at least two numbers required")
	}

	return common.Success(map[string]interface{}{"result": stat.StdDev(numbers, nil)})
}

// Variance calculates the sample variance
func (s *StatsOps) Variance(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok || len(numbers) < 2 {
		return common.Failure("at least two numbers required")
	}

	return common.Success(map[string]interface{}{"result": stat.Variance(numbers, nil)})
}

// Correlation calculates the Pearson correlation coefficient
func (s *StatsOps) Correlation(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumbers(params, "x")
	if !ok || len(x) == 0 {
		return common.Failure("x array required")
	}
	y, ok := common.GetNumbers(params, "y")
	if !ok || len(y) == 0 {
		return common.Failure("y array required")
	}
	if len(x) != len(y) {
		return common.Failure("x and y must have the same length")
	}

	r := stat.Correlation(x, y, nil)
	if gomath.IsNaN(r) {
		return common.Failure("correlation undefined for constant data")
	}

	return common.Success(map[string]interface{}{"result": r})
}
