package special

// Numeric range and convergence constants for the evaluation kernels.
const (
	// MaxLog is log(math.MaxFloat64): exponents above this overflow exp.
	MaxLog = 709.782712893383996843

	// MinLog is log of the smallest normal float64, log(2^-1022):
	// exponents below this underflow exp to subnormal or zero.
	MinLog = -708.396418532264106216

	// smallZThreshold scales the |z| < threshold*(1+|v|) cutoff below
	// which the second-order Taylor truncation of the defining series is
	// exact to working precision.
	smallZThreshold = 1e-6

	// machEps is the float64 unit roundoff, used to terminate series.
	machEps = 2.220446049250313e-16

	// maxSeriesIter bounds ascending-series summation.
	maxSeriesIter = 600

	// maxAsymTerms bounds the divergent asymptotic tail summations,
	// which are truncated at their smallest term.
	maxAsymTerms = 30
)
