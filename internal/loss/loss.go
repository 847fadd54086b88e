// Package loss provides the cost functions recorded during training.
//
// All summations here are NaN-safe: terms that evaluate to NaN (for example
// 0*log(0)) are treated as zero rather than propagating. Infinities are kept,
// so a genuinely divergent term still dominates the result.
package loss

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// NaNSum returns the sum of xs with NaN terms counted as zero.
func NaNSum(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		sum += x
	}
	return sum
}

// MSE computes the mean squared error: (1/m) * sum((y - y_hat)^2),
// where m is the row count of yHat.
func MSE(y, yHat mat.Matrix) float64 {
	m, c := yHat.Dims()
	ym, yc := y.Dims()
	if m != ym || c != yc {
		panic(fmt.Sprintf("loss: target %dx%d and prediction %dx%d must have same dimensions", ym, yc, m, c))
	}

	var sum float64
	for i := 0; i < m; i++ {
		for j := 0; j < c; j++ {
			diff := y.At(i, j) - yHat.At(i, j)
			term := diff * diff
			if math.IsNaN(term) {
				continue
			}
			sum += term
		}
	}
	return sum / float64(m)
}

// NegLogLikelihood computes the mean negative log-likelihood:
// -(1/m) * sum(y*log(y_hat) + (1-y)*log(1-y_hat)),
// where m is the row count of yHat. A term whose whole expression is NaN is
// dropped; a term that is -Inf (a confident wrong prediction) is kept.
func NegLogLikelihood(y, yHat mat.Matrix) float64 {
	m, c := yHat.Dims()
	ym, yc := y.Dims()
	if m != ym || c != yc {
		panic(fmt.Sprintf("loss: target %dx%d and prediction %dx%d must have same dimensions", ym, yc, m, c))
	}

	var sum float64
	for i := 0; i < m; i++ {
		for j := 0; j < c; j++ {
			yv := y.At(i, j)
			hv := yHat.At(i, j)
			term := yv*math.Log(hv) + (1-yv)*math.Log(1-hv)
			if math.IsNaN(term) {
				continue
			}
			sum += term
		}
	}
	return -sum / float64(m)
}

// L2Penalty computes lambda/(2m) * sum(w^2) over all entries of w.
func L2Penalty(w mat.Matrix, lambda float64, m int) float64 {
	if lambda == 0 {
		return 0
	}

	r, c := w.Dims()
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := w.At(i, j)
			term := v * v
			if math.IsNaN(term) {
				continue
			}
			sum += term
		}
	}
	return lambda / (2 * float64(m)) * sum
}
