package regression

import (
	"github.com/FlavioCFOliveira/GoFit/internal/opt"
	"gonum.org/v1/gonum/mat"
)

// GradientDescent runs a fixed number of descent iterations over a parameter
// vector. Estimators hold one by value.
type GradientDescent struct {
	Alpha      float64
	Iterations int
}

// Minimize steps theta against the supplied gradient Iterations times,
// mutating theta in place.
func (g GradientDescent) Minimize(theta *mat.VecDense, gradient func(theta *mat.VecDense) *mat.VecDense) {
	sgd := opt.SGD{LearningRate: g.Alpha}
	for i := 0; i < g.Iterations; i++ {
		grad := gradient(theta)
		sgd.StepInPlace(theta.RawVector().Data, grad.RawVector().Data)
	}
}
