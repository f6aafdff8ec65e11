package providers

import (
	"github.com/numericore/mathsvc/internal/providers/math"
)

// NewMath creates the math provider
func NewMath() *math.Provider {
	return math.NewProvider()
}
