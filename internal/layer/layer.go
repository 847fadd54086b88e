// Package layer provides the trainable fully connected layer.
package layer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/FlavioCFOliveira/GoFit/internal/activations"
	"github.com/FlavioCFOliveira/GoFit/internal/opt"
	"gonum.org/v1/gonum/mat"
)

// Layer is a fully connected layer: output = activation(input*weights + bias).
// Weights have shape in x out, bias 1 x out. Backward mutates both in place;
// Forward overwrites the cached input and output on every call, so no history
// beyond the most recent step is retained.
type Layer struct {
	kind    activations.Kind
	weights *mat.Dense // in x out
	bias    *mat.Dense // 1 x out
	input   *mat.Dense // last Forward input, 1 x in
	output  *mat.Dense // last Forward result, 1 x out
}

// New creates a layer with Xavier/Glorot-initialized weights.
// All randomness is drawn from rng; the same seed reproduces the same layer.
func New(kind activations.Kind, in, out int, rng *rand.Rand) *Layer {
	if in < 1 || out < 1 {
		panic(fmt.Sprintf("layer: dimensions must be positive, got %dx%d", in, out))
	}

	weights := make([]float64, in*out)
	limit := math.Sqrt(2.0 / (float64(in) + float64(out)))
	for i := range weights {
		weights[i] = rng.Float64()*2*limit - limit
	}

	bias := make([]float64, out)
	for i := range bias {
		bias[i] = rng.Float64()*0.2 - 0.1
	}

	return &Layer{
		kind:    kind,
		weights: mat.NewDense(in, out, weights),
		bias:    mat.NewDense(1, out, bias),
	}
}

// FromParams rebuilds a layer around existing weights and bias.
// Used when reconstructing persisted networks.
func FromParams(kind activations.Kind, weights, bias *mat.Dense) *Layer {
	wr, wc := weights.Dims()
	br, bc := bias.Dims()
	if br != 1 || bc != wc {
		panic(fmt.Sprintf("layer: bias %dx%d does not match weights %dx%d", br, bc, wr, wc))
	}
	return &Layer{kind: kind, weights: weights, bias: bias}
}

// Forward computes activation(x*weights + bias).
// x is a row vector (1 x in); a copy is cached as this layer's input and the
// result becomes the layer's output, both overwriting the previous call's.
func (l *Layer) Forward(x mat.Matrix) *mat.Dense {
	xr, xc := x.Dims()
	in, out := l.weights.Dims()
	if xc != in {
		panic(fmt.Sprintf("layer: input width %d does not match weight rows %d", xc, in))
	}

	l.input = mat.DenseCopyOf(x)

	z := mat.NewDense(xr, out, nil)
	z.Mul(x, l.weights)
	for i := 0; i < xr; i++ {
		for j := 0; j < out; j++ {
			z.Set(i, j, l.kind.Apply(z.At(i, j)+l.bias.At(0, j)))
		}
	}
	l.output = z
	return z
}

// Backward consumes the error signal for this layer's output and returns the
// error propagated to the predecessor. prevOutT is the predecessor's output
// transposed (in x 1). The weight update is
//
//	weights -= learningRate * (prevOutT*err + lambda*weights)
//	bias    -= learningRate * sum(err, axis=0)
//
// with the propagated error err*weightsT computed against the weights before
// the update. For non-Linear kinds the propagated error is multiplied
// elementwise by the activation derivative at the cached input, which holds
// the predecessor's activation values.
func (l *Layer) Backward(err, prevOutT mat.Matrix, learningRate, lambda float64) *mat.Dense {
	if l.input == nil {
		panic("layer: Backward called before Forward")
	}

	var grad mat.Dense
	grad.Mul(prevOutT, err)

	var prop mat.Dense
	prop.Mul(err, l.weights.T())

	sgd := opt.SGD{LearningRate: learningRate, WeightDecay: lambda}
	sgd.StepInPlace(l.weights.RawMatrix().Data, grad.RawMatrix().Data)

	er, out := err.Dims()
	biasGrad := make([]float64, out)
	for j := 0; j < out; j++ {
		var sum float64
		for i := 0; i < er; i++ {
			sum += err.At(i, j)
		}
		biasGrad[j] = sum
	}
	// No decay on bias
	opt.SGD{LearningRate: learningRate}.StepInPlace(l.bias.RawMatrix().Data, biasGrad)

	if l.kind != activations.Linear {
		pr, pc := prop.Dims()
		for i := 0; i < pr; i++ {
			for j := 0; j < pc; j++ {
				prop.Set(i, j, prop.At(i, j)*l.kind.Derivative(l.input.At(i, j)))
			}
		}
	}

	return &prop
}

// Kind returns the layer's activation variant.
func (l *Layer) Kind() activations.Kind {
	return l.kind
}

// Weights returns the live weight matrix (in x out), not a copy.
func (l *Layer) Weights() *mat.Dense {
	return l.weights
}

// Bias returns the live bias row (1 x out), not a copy.
func (l *Layer) Bias() *mat.Dense {
	return l.bias
}

// Output returns the last Forward result, or whatever SetOutput stored.
func (l *Layer) Output() *mat.Dense {
	return l.output
}

// SetOutput stores o as this layer's output without running Forward.
// The network uses this to expose the raw input through its placeholder slot.
func (l *Layer) SetOutput(o *mat.Dense) {
	l.output = o
}

// InSize returns the input width of the layer.
func (l *Layer) InSize() int {
	in, _ := l.weights.Dims()
	return in
}

// OutSize returns the output width of the layer.
func (l *Layer) OutSize() int {
	_, out := l.weights.Dims()
	return out
}
