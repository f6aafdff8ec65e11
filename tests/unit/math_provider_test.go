package unit

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numericore/mathsvc/internal/providers"
	"github.com/numericore/mathsvc/tests/helpers/testutil"
)

func TestMathProvider(t *testing.T) {
	mathProvider := providers.NewMath()
	ctx := context.Background()

	t.Run("Arithmetic Operations", func(t *testing.T) {
		t.Run("Add", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.add", map[string]interface{}{
				"numbers": []interface{}{1.0, 2.0, 3.0, 4.0, 5.0},
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, 15.0, result.Data["result"])
		})

		t.Run("Add with integers", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.add", map[string]interface{}{
				"numbers": []interface{}{1, 2, 3},
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, 6.0, result.Data["result"])
		})

		t.Run("Add with empty array", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.add", map[string]interface{}{
				"numbers": []interface{}{},
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})

		t.Run("Divide by zero", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.divide", map[string]interface{}{
				"a": 10.0,
				"b": 0.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})

		t.Run("Power overflow", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.power", map[string]interface{}{
				"base":     10.0,
				"exponent": 400.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})
	})

	t.Run("Hypergeometric Functions", func(t *testing.T) {
		t.Run("Hyp0F1 at origin", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.hyp0f1", map[string]interface{}{
				"v": 3.5,
				"z": 0.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, 1.0, result.Data["result"])
		})

		t.Run("Hyp0F1 cosh identity", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.hyp0f1", map[string]interface{}{
				"v": 0.5,
				"z": 4.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.InDelta(t, math.Cosh(4), result.Data["result"].(float64), 1e-9)
		})

		t.Run("Hyp0F1 pole", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.hyp0f1", map[string]interface{}{
				"v": -3.0,
				"z": 2.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})

		t.Run("Hyp0F1 missing parameter", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.hyp0f1", map[string]interface{}{
				"v": 1.5,
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})

		t.Run("Hyp0F1C complex argument", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.hyp0f1c", map[string]interface{}{
				"v":  2.5,
				"re": -4.0,
				"im": 3.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Contains(t, result.Data, "re")
			assert.Contains(t, result.Data, "im")
		})

		t.Run("Hyp0F1C real axis agrees with real tool", func(t *testing.T) {
			realRes, err := mathProvider.Execute(ctx, "math.hyp0f1", map[string]interface{}{
				"v": 2.5,
				"z": 7.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, realRes)

			cplxRes, err := mathProvider.Execute(ctx, "math.hyp0f1c", map[string]interface{}{
				"v":  2.5,
				"re": 7.0,
				"im": 0.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, cplxRes)

			assert.InDelta(t, realRes.Data["result"].(float64), cplxRes.Data["re"].(float64), 1e-9)
			assert.InDelta(t, 0.0, cplxRes.Data["im"].(float64), 1e-9)
		})

		t.Run("BesselIv", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.bessel_iv", map[string]interface{}{
				"v": 0.5,
				"x": 2.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			want := math.Sqrt(2/(math.Pi*2.0)) * math.Sinh(2.0)
			assert.InDelta(t, want, result.Data["result"].(float64), 1e-10)
		})

		t.Run("BesselJv negative argument", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.bessel_jv", map[string]interface{}{
				"v": 0.5,
				"x": -2.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})
	})

	t.Run("Special Functions", func(t *testing.T) {
		t.Run("Gamma", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.gamma", map[string]interface{}{
				"x": 6.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.InDelta(t, 120.0, result.Data["result"].(float64), 1e-9)
		})

		t.Run("Lgamma reports sign", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.lgamma", map[string]interface{}{
				"x": -2.5,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Contains(t, result.Data, "sign")
		})

		t.Run("Beta", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.beta", map[string]interface{}{
				"a": 0.5,
				"b": 0.5,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.InDelta(t, math.Pi, result.Data["result"].(float64), 1e-10)
		})

		t.Run("Digamma", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.digamma", map[string]interface{}{
				"x": 1.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			// psi(1) = -EulerGamma
			assert.InDelta(t, -0.5772156649015329, result.Data["result"].(float64), 1e-10)
		})
	})

	t.Run("Statistics", func(t *testing.T) {
		t.Run("Mean", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.mean", map[string]interface{}{
				"numbers": []interface{}{1.0, 2.0, 3.0, 4.0},
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, 2.5, result.Data["result"])
		})

		t.Run("Median even count", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.median", map[string]interface{}{
				"numbers": []interface{}{4.0, 1.0, 3.0, 2.0},
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, 2.5, result.Data["result"])
		})

		t.Run("Stdev needs two values", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.stdev", map[string]interface{}{
				"numbers": []interface{}{1.0},
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})

		t.Run("Correlation length mismatch", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.correlation", map[string]interface{}{
				"x": []interface{}{1.0, 2.0},
				"y": []interface{}{1.0, 2.0, 3.0},
			}, nil)
			require.NoError(t, err)
			testutil.AssertError(t, result)
		})
	})

	t.Run("Trig", func(t *testing.T) {
		t.Run("SinPi exact zero", func(t *testing.T) {
			result, err := mathProvider.Execute(ctx, "math.sinpi", map[string]interface{}{
				"x": 1000.0,
			}, nil)
			require.NoError(t, err)
			testutil.AssertSuccess(t, result)
			assert.Equal(t, 0.0, math.Abs(result.Data["result"].(float64)))
		})
	})

	t.Run("Unknown tool", func(t *testing.T) {
		result, err := mathProvider.Execute(ctx, "math.unknown", nil, nil)
		require.NoError(t, err)
		testutil.AssertError(t, result)
	})
}
