package regression

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Logistic is a regularized logistic regression trained by fixed-iteration
// gradient descent on the sigmoid hypothesis.
type Logistic struct {
	// Descent drives the parameter updates.
	Descent GradientDescent
	// Lambda is the L2 regularization strength; zero disables the term.
	Lambda float64

	theta *mat.VecDense
}

var _ Model = (*Logistic)(nil)

// NewLogistic creates a logistic regression with the given step size,
// iteration count and regularization strength.
func NewLogistic(alpha float64, iterations int, lambda float64) *Logistic {
	return &Logistic{
		Descent: GradientDescent{Alpha: alpha, Iterations: iterations},
		Lambda:  lambda,
	}
}

// DefaultLogistic carries the conventional hyperparameters: step 0.01, 1000
// iterations, no regularization.
func DefaultLogistic() *Logistic {
	return NewLogistic(0.01, 1000, 0)
}

// Fit estimates the coefficients from zeros by gradient descent. The gradient
// is (1/m)·Xᵀ(h−y), plus (λ/m)·θ when regularizing.
func (l *Logistic) Fit(x, y mat.Matrix) error {
	xr, xc := x.Dims()
	yVec, err := columnVector(y)
	if err != nil {
		return errors.Wrap(err, "logistic")
	}
	if xr != yVec.Len() {
		return errors.Errorf("logistic: %d feature rows do not match %d targets", xr, yVec.Len())
	}

	m := float64(yVec.Len())
	l.theta = mat.NewVecDense(xc, nil)
	l.Descent.Minimize(l.theta, func(theta *mat.VecDense) *mat.VecDense {
		h := hypothesis(x, theta)
		h.SubVec(h, yVec)

		var grad mat.VecDense
		grad.MulVec(x.T(), h)
		grad.ScaleVec(1/m, &grad)
		if l.Lambda != 0 {
			grad.AddScaledVec(&grad, l.Lambda/m, theta)
		}
		return &grad
	})
	return nil
}

// Predict returns the hypothesis probabilities sigmoid(x·theta), one per row.
func (l *Logistic) Predict(x mat.Matrix) ([]float64, error) {
	if l.theta == nil {
		return nil, errors.New("logistic: Predict called before Fit")
	}
	_, xc := x.Dims()
	if xc != l.theta.Len() {
		return nil, errors.Errorf("logistic: %d feature columns do not match %d coefficients", xc, l.theta.Len())
	}

	h := hypothesis(x, l.theta)
	out := make([]float64, h.Len())
	copy(out, h.RawVector().Data)
	return out, nil
}

// Cost returns the regularized negative log-likelihood of the current
// coefficients. The summation is not NaN-safe: a saturated hypothesis
// propagates NaN into the result.
func (l *Logistic) Cost(x, y mat.Matrix) (float64, error) {
	if l.theta == nil {
		return 0, errors.New("logistic: Cost called before Fit")
	}
	xr, _ := x.Dims()
	yVec, err := columnVector(y)
	if err != nil {
		return 0, errors.Wrap(err, "logistic")
	}
	if xr != yVec.Len() {
		return 0, errors.Errorf("logistic: %d feature rows do not match %d targets", xr, yVec.Len())
	}

	h := hypothesis(x, l.theta)
	m := float64(yVec.Len())
	var sum float64
	for i := 0; i < yVec.Len(); i++ {
		yv := yVec.AtVec(i)
		hv := h.AtVec(i)
		sum += yv*math.Log(hv) + (1-yv)*math.Log(1-hv)
	}

	cost := -sum / m
	if l.Lambda != 0 {
		td := l.theta.RawVector().Data
		cost += l.Lambda / (2 * m) * floats.Dot(td, td)
	}
	return cost, nil
}

// Theta returns the fitted coefficient vector, nil before Fit.
func (l *Logistic) Theta() *mat.VecDense {
	return l.theta
}
