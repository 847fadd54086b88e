package regression_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/FlavioCFOliveira/GoFit/internal/regression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestOLSRecoversLinearCoefficients tests the closed-form solution on an
// exactly linear dataset.
func TestOLSRecoversLinearCoefficients(t *testing.T) {
	// Design matrix [1, x] for z = 3 + 2x
	x := mat.NewDense(4, 2, []float64{1, 0, 1, 1, 1, 2, 1, 3})
	z := mat.NewDense(4, 1, []float64{3, 5, 7, 9})

	model := regression.NewOLS(1)
	require.NoError(t, model.Fit(x, z))

	beta := model.Beta()
	assert.InDelta(t, 3.0, beta.AtVec(0), 1e-10)
	assert.InDelta(t, 2.0, beta.AtVec(1), 1e-10)
	assert.InDelta(t, 0.0, model.Loss(), 1e-10)
}

// TestOLSPredict tests extrapolation with the fitted coefficients.
func TestOLSPredict(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{1, 0, 1, 1, 1, 2, 1, 3})
	z := mat.NewDense(4, 1, []float64{3, 5, 7, 9})

	model := regression.NewOLS(1)
	require.NoError(t, model.Fit(x, z))

	pred, err := model.Predict(mat.NewDense(1, 2, []float64{1, 10}))
	require.NoError(t, err)
	assert.InDelta(t, 23.0, pred[0], 1e-9)
}

// TestOLSRankDeficientDesign tests the pseudo-inverse on duplicated columns:
// the minimum-norm solution splits the weight evenly.
func TestOLSRankDeficientDesign(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{1, 1, 1, 1, 2, 2})
	z := mat.NewDense(3, 1, []float64{2, 2, 4})

	model := regression.NewOLS(1)
	require.NoError(t, model.Fit(x, z))

	beta := model.Beta()
	assert.InDelta(t, 1.0, beta.AtVec(0), 1e-9)
	assert.InDelta(t, 1.0, beta.AtVec(1), 1e-9)

	pred, err := model.Predict(x)
	require.NoError(t, err)
	for i, want := range []float64{2, 2, 4} {
		assert.InDelta(t, want, pred[i], 1e-9, "prediction %d", i)
	}
}

// TestOLSConfidenceIntervals tests the interval arithmetic on an
// intercept-only model where every quantity is computable by hand.
func TestOLSConfidenceIntervals(t *testing.T) {
	// beta is the mean 1, residuals (-1, 0, 0, 1), pinv(XᵀX) = 1/4, so the
	// variance is 2/(4-1-1) = 1 and the 95% margin is Φ⁻¹(0.975)·1·sqrt(1/4).
	x := mat.NewDense(4, 1, []float64{1, 1, 1, 1})
	z := mat.NewDense(4, 1, []float64{0, 1, 1, 2})

	model := regression.NewOLS(0)
	require.NoError(t, model.Fit(x, z))
	assert.InDelta(t, 1.0, model.Beta().AtVec(0), 1e-12)

	zTilde, err := model.Predict(x)
	require.NoError(t, err)

	iv, err := model.ConfidenceIntervals(x, []float64{0, 1, 1, 2}, zTilde, 0.05)
	require.NoError(t, err)

	const quantile975 = 1.9599639845400545
	assert.InDelta(t, 1.0, iv.Variance, 1e-12)
	assert.InDelta(t, quantile975/2, iv.Margin[0], 1e-9)
	assert.InDelta(t, 1.0-quantile975/2, iv.Lower[0], 1e-9)
	assert.InDelta(t, 1.0+quantile975/2, iv.Upper[0], 1e-9)
}

// TestOLSDegenerateDegreesOfFreedom tests that a non-positive residual degree
// of freedom flows through as Inf rather than erroring.
func TestOLSDegenerateDegreesOfFreedom(t *testing.T) {
	x := mat.NewDense(2, 1, []float64{1, 1})
	z := mat.NewDense(2, 1, []float64{0, 2})

	model := regression.NewOLS(0)
	require.NoError(t, model.Fit(x, z))

	zTilde, err := model.Predict(x)
	require.NoError(t, err)

	iv, err := model.ConfidenceIntervals(x, []float64{0, 2}, zTilde, 0.05)
	require.NoError(t, err)
	assert.True(t, math.IsInf(iv.Variance, 1), "variance = %v", iv.Variance)
}

// TestOLSMetadata tests the stored degree and the model name.
func TestOLSMetadata(t *testing.T) {
	model := regression.NewOLS(5)

	assert.Equal(t, 5, model.Degree)
	assert.Equal(t, "ols", model.String())
	assert.Equal(t, "ols", fmt.Sprint(model))
}

// TestOLSErrors tests the fallible surface.
func TestOLSErrors(t *testing.T) {
	model := regression.NewOLS(1)

	_, err := model.Predict(mat.NewDense(1, 1, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before Fit")

	_, err = model.ConfidenceIntervals(mat.NewDense(1, 1, nil), nil, nil, 0.05)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before Fit")

	err = model.Fit(mat.NewDense(2, 1, nil), mat.NewDense(2, 2, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single column")

	require.NoError(t, model.Fit(
		mat.NewDense(3, 2, []float64{1, 0, 1, 1, 1, 2}),
		mat.NewDense(3, 1, []float64{1, 2, 3}),
	))

	_, err = model.Predict(mat.NewDense(1, 3, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coefficients")

	_, err = model.ConfidenceIntervals(mat.NewDense(3, 2, nil), []float64{1, 2}, []float64{1, 2, 3}, 0.05)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not match")
}
