// Package net provides the feed-forward network and its training loop.
package net

import (
	"fmt"
	"math/rand"

	"github.com/FlavioCFOliveira/GoFit/internal/activations"
	"github.com/FlavioCFOliveira/GoFit/internal/layer"
	"github.com/FlavioCFOliveira/GoFit/internal/loss"
	"gonum.org/v1/gonum/mat"
)

// Network is an ordered collection of layers trained by online gradient
// descent, one sample at a time.
type Network struct {
	layers         []*layer.Layer
	classification bool
	learningRate   float64
	lambda         float64
	epochs         int

	// Cost log: one entry per sample during Fit, aggregated to one
	// entry per epoch once the loop finishes.
	costs []float64

	callbacks []Callback
}

// Config describes a network topology and its training hyperparameters.
type Config struct {
	// Inputs is the number of feature columns.
	Inputs int
	// Hidden lists the width of each hidden layer, outermost first.
	Hidden []int
	// Categories is the number of output columns.
	Categories int

	// HiddenKind is the activation applied by every hidden layer.
	HiddenKind activations.Kind
	// FinalKind is the activation applied by the output layer.
	FinalKind activations.Kind

	// Classification selects the negative log-likelihood cost and enables
	// PredictClasses. When false the cost is mean squared error.
	Classification bool

	Epochs       int
	LearningRate float64
	Lambda       float64

	// Seed selects the weight initialization stream.
	Seed int64

	// Verbose appends a Logger callback reporting every epoch.
	Verbose bool

	Callbacks []Callback
}

// DefaultConfig returns the baseline hyperparameters. Callers set Inputs and
// Hidden for their data; the remaining values are used exactly as given, so an
// explicit zero learning rate stays zero.
func DefaultConfig() Config {
	return Config{
		Categories:   1,
		HiddenKind:   activations.Sigmoid,
		FinalKind:    activations.Linear,
		Epochs:       1000,
		LearningRate: 0.001,
	}
}

// New creates a network from the configuration. The layer sizes are the
// consecutive pairs of [Inputs, Hidden..., Categories]; the hidden kind is
// used for every pair but the last, which uses the final kind.
func New(cfg Config) *Network {
	if cfg.Inputs <= 0 {
		panic("net: Inputs must be positive")
	}
	if cfg.Categories <= 0 {
		panic("net: Categories must be positive")
	}
	if cfg.Epochs <= 0 {
		panic("net: Epochs must be positive")
	}
	for _, h := range cfg.Hidden {
		if h <= 0 {
			panic("net: hidden layer widths must be positive")
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	sizes := make([]int, 0, len(cfg.Hidden)+2)
	sizes = append(sizes, cfg.Inputs)
	sizes = append(sizes, cfg.Hidden...)
	sizes = append(sizes, cfg.Categories)

	// Slot 0 never computes; its output carries the current raw input so
	// every trainable layer reads its predecessor the same way.
	layers := make([]*layer.Layer, 0, len(sizes))
	layers = append(layers, placeholder())
	for i := 0; i+1 < len(sizes); i++ {
		kind := cfg.HiddenKind
		if i+2 == len(sizes) {
			kind = cfg.FinalKind
		}
		layers = append(layers, layer.New(kind, sizes[i], sizes[i+1], rng))
	}

	callbacks := append([]Callback(nil), cfg.Callbacks...)
	if cfg.Verbose {
		callbacks = append(callbacks, Logger{Interval: 1})
	}

	return &Network{
		layers:         layers,
		classification: cfg.Classification,
		learningRate:   cfg.LearningRate,
		lambda:         cfg.Lambda,
		epochs:         cfg.Epochs,
		callbacks:      callbacks,
	}
}

// placeholder builds the untrained slot layer whose output holds the raw input.
func placeholder() *layer.Layer {
	return layer.FromParams(activations.Linear, mat.NewDense(1, 1, nil), mat.NewDense(1, 1, nil))
}

// Forward threads one sample through the network and returns the output row.
func (n *Network) Forward(x []float64) *mat.Dense {
	row := mat.NewDense(1, len(x), append([]float64(nil), x...))
	n.layers[0].SetOutput(row)
	for i := 1; i < len(n.layers); i++ {
		n.layers[i].Forward(n.layers[i-1].Output())
	}
	return n.layers[len(n.layers)-1].Output()
}

// Backward consumes the target for the sample last seen by Forward. It records
// the sample's cost, then walks the layers in reverse, updating each in place
// and handing the propagated error to its predecessor. The placeholder slot is
// never updated.
func (n *Network) Backward(y []float64, learningRate float64) {
	out := n.layers[len(n.layers)-1].Output()
	if out == nil {
		panic("net: Backward called before Forward")
	}

	target := mat.NewDense(1, len(y), append([]float64(nil), y...))

	// For classifiers this residual equals the cross-entropy gradient
	// because the final sigmoid and the log-loss cancel.
	var delta mat.Dense
	delta.Sub(out, target)

	n.costs = append(n.costs, n.sampleCost(target, out))

	var err mat.Matrix = &delta
	for i := len(n.layers) - 1; i >= 1; i-- {
		err = n.layers[i].Backward(err, n.layers[i-1].Output().T(), learningRate, n.lambda)
	}
}

// sampleCost is the data-fit term plus the L2 penalty on the first trainable
// layer's weights.
func (n *Network) sampleCost(y, yHat mat.Matrix) float64 {
	m, _ := yHat.Dims()
	var c float64
	if n.classification {
		c = loss.NegLogLikelihood(y, yHat)
	} else {
		c = loss.MSE(y, yHat)
	}
	return c + loss.L2Penalty(n.layers[1].Weights(), n.lambda, m)
}

// Fit trains the network on the given samples for the configured number of
// epochs, visiting the rows strictly in order. The cost log is reset first;
// parameters continue from their current values, so repeated calls keep
// refining the same weights.
func (n *Network) Fit(x, y mat.Matrix) {
	xr, xc := x.Dims()
	yr, yc := y.Dims()
	rows := min(xr, yr)

	n.costs = nil

	for _, cb := range n.callbacks {
		cb.OnTrainBegin(n)
	}

	xBuf := make([]float64, xc)
	yBuf := make([]float64, yc)
	for epoch := 0; epoch < n.epochs; epoch++ {
		for _, cb := range n.callbacks {
			cb.OnEpochBegin(epoch, n)
		}
		mark := len(n.costs)
		for i := 0; i < rows; i++ {
			mat.Row(xBuf, i, x)
			mat.Row(yBuf, i, y)
			n.Forward(xBuf)
			n.Backward(yBuf, n.learningRate)
		}
		epochCost := loss.NaNSum(n.costs[mark:])
		for _, cb := range n.callbacks {
			cb.OnEpochEnd(epoch, epochCost, n)
		}
	}

	n.aggregateCosts()

	for _, cb := range n.callbacks {
		cb.OnTrainEnd(n)
	}
}

// aggregateCosts folds the per-sample log into one summed entry per epoch.
func (n *Network) aggregateCosts() {
	if len(n.costs)%n.epochs != 0 {
		panic(fmt.Sprintf("net: cost log length %d is not divisible by %d epochs", len(n.costs), n.epochs))
	}
	chunk := len(n.costs) / n.epochs
	agg := make([]float64, n.epochs)
	for e := 0; e < n.epochs; e++ {
		agg[e] = loss.NaNSum(n.costs[e*chunk : (e+1)*chunk])
	}
	n.costs = agg
}

// Predict forwards each input row and collects the raw outputs, one row per
// sample.
func (n *Network) Predict(x mat.Matrix) *mat.Dense {
	rows, cols := x.Dims()
	cats := n.layers[len(n.layers)-1].OutSize()

	out := mat.NewDense(rows, cats, nil)
	buf := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(buf, i, x)
		pred := n.Forward(buf)
		out.SetRow(i, mat.Row(nil, 0, pred))
	}
	return out
}

// PredictClasses thresholds the raw outputs at strictly greater than 0.5 and
// returns the booleans in row-major order. A probability of exactly 0.5
// classifies as false. Panics unless the network was configured for
// classification.
func (n *Network) PredictClasses(x mat.Matrix) []bool {
	if !n.classification {
		panic("net: PredictClasses requires a classification network")
	}

	probs := n.Predict(x)
	rows, cols := probs.Dims()
	classes := make([]bool, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			classes = append(classes, probs.At(i, j) > 0.5)
		}
	}
	return classes
}

// Costs returns a copy of the per-epoch cost log recorded by the last Fit.
func (n *Network) Costs() []float64 {
	return append([]float64(nil), n.costs...)
}

// Layers returns the network's layers slice, placeholder slot included.
func (n *Network) Layers() []*layer.Layer {
	return n.layers
}
