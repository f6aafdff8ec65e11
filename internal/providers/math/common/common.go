package common

import (
	"fmt"
	gomath "math"

	"github.com/numericore/mathsvc/internal/types"
)

// MathOps carries state shared by all math modules
type MathOps struct{}

// Success builds a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure builds a failed result
func Failure(message string) (*types.Result, error) {
	return &types.Result{Success: false, Error: &message}, nil
}

// GetNumber extracts a float64 parameter, accepting JSON number encodings
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	switch n := val.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	default:
		return 0, false
	}
}

// GetNumbers extracts a numeric array parameter
func GetNumbers(params map[string]interface{}, key string) ([]float64, bool) {
	val, ok := params[key]
	if !ok {
		return nil, false
	}

	switch arr := val.(type) {
	case []float64:
		return arr, true
	case []interface{}:
		numbers := make([]float64, 0, len(arr))
		for _, item := range arr {
			switch n := item.(type) {
			case float64:
				numbers = append(numbers, n)
			case int:
				numbers = append(numbers, float64(n))
			default:
				return nil, false
			}
		}
		return numbers, true
	default:
		return nil, false
	}
}

// ValidateNumber rejects NaN and infinite values
func ValidateNumber(x float64, name string) error {
	if gomath.IsNaN(x) {
		return fmt.Errorf("%s is not a number", name)
	}
	if gomath.IsInf(x, 0) {
		return fmt.Errorf("%s is infinite", name)
	}
	return nil
}

// FiniteResult wraps a computed value, mapping NaN and Inf to a failure
// instead of leaking them into the JSON payload
func FiniteResult(value float64, context string) (*types.Result, error) {
	if gomath.IsNaN(value) {
		return Failure(fmt.Sprintf("%s is undefined for the given input", context))
	}
	if gomath.IsInf(value, 0) {
		return Failure(fmt.Sprintf("%s overflows for the given input", context))
	}
	return Success(map[string]interface{}{"result": value})
}

// ComplexResult splits a complex value into re/im fields, with the same
// NaN and Inf screening as FiniteResult
func ComplexResult(value complex128, context string) (*types.Result, error) {
	re, im := real(value), imag(value)
	if gomath.IsNaN(re) || gomath.IsNaN(im) {
		return Failure(fmt.Sprintf("%s is undefined for the given input", context))
	}
	if gomath.IsInf(re, 0) || gomath.IsInf(im, 0) {
		return Failure(fmt.Sprintf("%s overflows for the given input", context))
	}
	return Success(map[string]interface{}{"re": re, "im": im})
}
