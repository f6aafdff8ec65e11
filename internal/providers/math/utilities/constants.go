package utilities

import (
	"context"
	gomath "math"

	"github.com/numericore/mathsvc/internal/providers/math/common"
	"github.com/numericore/mathsvc/internal/types"
)

// ConstantsOps provides mathematical constants
type ConstantsOps struct {
	*common.MathOps
}

// GetTools returns constant tool definitions
func (c *ConstantsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.pi",
			Name:        "Pi",
			Description: "Get value of pi",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
		{
			ID:          "math.e",
			Name:        "Euler's Number",
			Description: "Get value of e",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
		{
			ID:          "math.eulergamma",
			Name:        "Euler-Mascheroni Constant",
			Description: "Get value of the Euler-Mascheroni constant",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
		{
			ID:          "math.phi",
			Name:        "Golden Ratio",
			Description: "Get value of the golden ratio",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
	}
}

// Pi returns pi
func (c *ConstantsOps) Pi(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": gomath.Pi})
}

// E returns e
func (c *ConstantsOps) E(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": gomath.E})
}

// EulerGamma returns the Euler-Mascheroni constant
func (c *ConstantsOps) EulerGamma(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return common.Success(map[string]interface{}{"result": 0.57721566490153286060651209008240243})
}

// Phi returns the golden ratio
func (c *ConstantsOps) Phi(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	phi := (1 + gomath.Sqrt(5)) / 2
	return common.Success(map[string]interface{}{"result": phi})
}
