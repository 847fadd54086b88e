// Package regression provides gradient-descent and closed-form linear models
// sharing one sigmoid hypothesis and one descent utility.
package regression

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Model is the contract shared by the estimators in this package. Fit and
// Predict report dimension violations as errors rather than panicking.
type Model interface {
	Fit(x, y mat.Matrix) error
	Predict(x mat.Matrix) ([]float64, error)
}

// sigmoid squashes z into (0, 1).
func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// hypothesis computes sigmoid(x·theta), one value per row of x.
func hypothesis(x mat.Matrix, theta *mat.VecDense) *mat.VecDense {
	var h mat.VecDense
	h.MulVec(x, theta)
	for i := 0; i < h.Len(); i++ {
		h.SetVec(i, sigmoid(h.AtVec(i)))
	}
	return &h
}

// columnVector copies the single column of y into a dense vector.
func columnVector(y mat.Matrix) (*mat.VecDense, error) {
	r, c := y.Dims()
	if c != 1 {
		return nil, errors.Errorf("target must be a single column, got %dx%d", r, c)
	}
	return mat.NewVecDense(r, mat.Col(nil, 0, y)), nil
}
