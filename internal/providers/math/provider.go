package math

import (
	"context"
	"fmt"

	"github.com/numericore/mathsvc/internal/providers/math/advanced"
	"github.com/numericore/mathsvc/internal/providers/math/common"
	"github.com/numericore/mathsvc/internal/providers/math/operations"
	"github.com/numericore/mathsvc/internal/providers/math/statistics"
	"github.com/numericore/mathsvc/internal/providers/math/utilities"
	"github.com/numericore/mathsvc/internal/types"
)

// Provider implements mathematical operations
type Provider struct {
	arithmetic *operations.ArithmeticOps
	trig       *operations.TrigOps
	stats      *statistics.StatsOps
	constants  *utilities.ConstantsOps
	special    *advanced.SpecialOps
	hypergeom  *advanced.HypergeomOps
}

// NewProvider creates a modular math provider
func NewProvider() *Provider {
	ops := &common.MathOps{}

	return &Provider{
		arithmetic: &operations.ArithmeticOps{MathOps: ops},
		trig:       &operations.TrigOps{MathOps: ops},
		stats:      &statistics.StatsOps{MathOps: ops},
		constants:  &utilities.ConstantsOps{MathOps: ops},
		special:    &advanced.SpecialOps{MathOps: ops},
		hypergeom:  &advanced.HypergeomOps{MathOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.arithmetic.GetTools()...)
	tools = append(tools, m.trig.GetTools()...)
	tools = append(tools, m.stats.GetTools()...)
	tools = append(tools, m.constants.GetTools()...)
	tools = append(tools, m.special.GetTools()...)
	tools = append(tools, m.hypergeom.GetTools()...)

	return types.Service{
		ID:          "math",
		Name:        "Math Service",
		Description: "Mathematical operations (arithmetic, trig, stats, special and hypergeometric functions)",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"trigonometry",
			"statistics",
			"special_functions",
			"hypergeometric",
		},
		Tools: tools,
	}
}

// Execute routes to appropriate module
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Arithmetic operations
	case "math.add":
		return m.arithmetic.Add(ctx, params, appCtx)
	case "math.subtract":
		return m.arithmetic.Subtract(ctx, params, appCtx)
	case "math.multiply":
		return m.arithmetic.Multiply(ctx, params, appCtx)
	case "math.divide":
		return m.arithmetic.Divide(ctx, params, appCtx)
	case "math.power":
		return m.arithmetic.Power(ctx, params, appCtx)
	case "math.sqrt":
		return m.arithmetic.Sqrt(ctx, params, appCtx)
	case "math.exp":
		return m.arithmetic.Exp(ctx, params, appCtx)
	case "math.log":
		return m.arithmetic.Log(ctx, params, appCtx)

	// Trig operations
	case "math.sin":
		return m.trig.Sin(ctx, params, appCtx)
	case "math.cos":
		return m.trig.Cos(ctx, params, appCtx)
	case "math.tan":
		return m.trig.Tan(ctx, params, appCtx)
	case "math.atan2":
		return m.trig.Atan2(ctx, params, appCtx)
	case "math.sinpi":
		return m.trig.SinPi(ctx, params, appCtx)

	// Stats operations
	case "math.mean":
		return m.stats.Mean(ctx, params, appCtx)
	case "math.median":
		return m.stats.Median(ctx, params, appCtx)
	case "math.stdev":
		return m.stats.Stdev(ctx, params, appCtx)
	case "math.variance":
		return m.stats.Variance(ctx, params, appCtx)
	case "math.correlation":
		return m.stats.Correlation(ctx, params, appCtx)

	// Constants
	case "math.pi":
		return m.constants.Pi(ctx, params, appCtx)
	case "math.e":
		return m.constants.E(ctx, params, appCtx)
	case "math.eulergamma":
		return m.constants.EulerGamma(ctx, params, appCtx)
	case "math.phi":
		return m.constants.Phi(ctx, params, appCtx)

	// Special functions
	case "math.gamma":
		return m.special.Gamma(ctx, params, appCtx)
	case "math.lgamma":
		return m.special.Lgamma(ctx, params, appCtx)
	case "math.beta":
		return m.special.Beta(ctx, params, appCtx)
	case "math.digamma":
		return m.special.Digamma(ctx, params, appCtx)
	case "math.erf":
		return m.special.Erf(ctx, params, appCtx)

	// Hypergeometric functions
	case "math.hyp0f1":
		return m.hypergeom.Hyp0F1(ctx, params, appCtx)
	case "math.hyp0f1c":
		return m.hypergeom.Hyp0F1C(ctx, params, appCtx)
	case "math.bessel_iv":
		return m.hypergeom.BesselIv(ctx, params, appCtx)
	case "math.bessel_jv":
		return m.hypergeom.BesselJv(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
