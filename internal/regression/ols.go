package regression

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// OLS is an ordinary least squares regression solved in closed form through
// the pseudo-inverse of the normal-equation Hessian.
type OLS struct {
	// Degree records the polynomial degree of the design matrix the caller
	// builds; the solver itself consumes the matrix as given.
	Degree int

	beta *mat.VecDense
	loss float64
}

var _ Model = (*OLS)(nil)

// Intervals holds per-coefficient confidence bounds.
type Intervals struct {
	Lower, Upper []float64
	// Margin is the half-width of each interval.
	Margin []float64
	// Variance is the estimated noise variance.
	Variance float64
}

// NewOLS creates an ordinary least squares model for a design matrix of the
// given polynomial degree.
func NewOLS(degree int) *OLS {
	return &OLS{Degree: degree}
}

// Fit solves beta = pinv(XᵀX)·Xᵀz and stores the mean squared residual of the
// fit as the training loss.
func (o *OLS) Fit(x, z mat.Matrix) error {
	xr, _ := x.Dims()
	zVec, err := columnVector(z)
	if err != nil {
		return errors.Wrap(err, "ols")
	}
	if xr != zVec.Len() {
		return errors.Errorf("ols: %d feature rows do not match %d targets", xr, zVec.Len())
	}

	var hessian mat.Dense
	hessian.Mul(x.T(), x)
	inv, err := pinv(&hessian)
	if err != nil {
		return errors.Wrap(err, "ols")
	}

	var xtz, beta mat.VecDense
	xtz.MulVec(x.T(), zVec)
	beta.MulVec(inv, &xtz)
	o.beta = &beta

	var fitted mat.VecDense
	fitted.MulVec(x, &beta)
	var rss float64
	for i := 0; i < xr; i++ {
		r := zVec.AtVec(i) - fitted.AtVec(i)
		rss += r * r
	}
	o.loss = rss / float64(xr)
	return nil
}

// Predict returns x·beta, one value per row.
func (o *OLS) Predict(x mat.Matrix) ([]float64, error) {
	if o.beta == nil {
		return nil, errors.New("ols: Predict called before Fit")
	}
	_, xc := x.Dims()
	if xc != o.beta.Len() {
		return nil, errors.Errorf("ols: %d feature columns do not match %d coefficients", xc, o.beta.Len())
	}

	var fitted mat.VecDense
	fitted.MulVec(x, o.beta)
	out := make([]float64, fitted.Len())
	copy(out, fitted.RawVector().Data)
	return out, nil
}

// ConfidenceIntervals estimates a (1-alpha) confidence interval per
// coefficient from the residuals between the observations z and the
// predictions zTilde. A non-positive residual degree of freedom is tolerated;
// the resulting Inf/NaN values flow through.
func (o *OLS) ConfidenceIntervals(x mat.Matrix, z, zTilde []float64, alpha float64) (*Intervals, error) {
	if o.beta == nil {
		return nil, errors.New("ols: ConfidenceIntervals called before Fit")
	}
	if len(z) != len(zTilde) {
		return nil, errors.Errorf("ols: %d observations do not match %d predictions", len(z), len(zTilde))
	}
	_, xc := x.Dims()
	p := o.beta.Len()
	if xc != p {
		return nil, errors.Errorf("ols: %d feature columns do not match %d coefficients", xc, p)
	}

	n := len(zTilde)
	quantile := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(1 - alpha/2)

	var rss float64
	for i := range z {
		r := z[i] - zTilde[i]
		rss += r * r
	}
	variance := rss / float64(n-p-1)

	var hessian mat.Dense
	hessian.Mul(x.T(), x)
	inv, err := pinv(&hessian)
	if err != nil {
		return nil, errors.Wrap(err, "ols")
	}

	iv := &Intervals{
		Lower:    make([]float64, p),
		Upper:    make([]float64, p),
		Margin:   make([]float64, p),
		Variance: variance,
	}
	for i := 0; i < p; i++ {
		// The variance scales the root of the diagonal, not its square.
		sigma := variance * math.Sqrt(inv.At(i, i))
		iv.Margin[i] = quantile * sigma
		iv.Lower[i] = o.beta.AtVec(i) - iv.Margin[i]
		iv.Upper[i] = o.beta.AtVec(i) + iv.Margin[i]
	}
	return iv, nil
}

// Loss returns the mean squared residual stored by the last Fit.
func (o *OLS) Loss() float64 {
	return o.loss
}

// Beta returns the fitted coefficient vector, nil before Fit.
func (o *OLS) Beta() *mat.VecDense {
	return o.beta
}

// String returns the model name.
func (o *OLS) String() string {
	return "ols"
}

// pinv computes the Moore-Penrose pseudo-inverse through SVD, zeroing
// singular values at or below rcond times the largest.
func pinv(a mat.Matrix) (*mat.Dense, error) {
	const rcond = 1e-15

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, errors.New("pseudo-inverse: SVD failed to converge")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	values := svd.Values(nil)

	var cutoff float64
	if len(values) > 0 {
		cutoff = rcond * values[0]
	}

	sInv := mat.NewDense(len(values), len(values), nil)
	for i, sv := range values {
		if sv > cutoff {
			sInv.Set(i, i, 1/sv)
		}
	}

	var tmp, out mat.Dense
	tmp.Mul(&v, sInv)
	out.Mul(&tmp, u.T())
	return &out, nil
}
