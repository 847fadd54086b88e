package net

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/FlavioCFOliveira/GoFit/internal/activations"
	"github.com/FlavioCFOliveira/GoFit/internal/layer"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// layerGob is the wire form of one trainable layer. The activation travels by
// name so snapshots stay readable across enum reorderings.
type layerGob struct {
	Kind    string
	In, Out int
	Weights []float64
	Bias    []float64
}

// networkGob is the wire form of a network: topology, parameters,
// hyperparameters and the cost log. Callbacks are not persisted.
type networkGob struct {
	Layers         []layerGob
	Classification bool
	LearningRate   float64
	Lambda         float64
	Epochs         int
	Costs          []float64
}

// Save writes the network to a file using gob encoding.
func (n *Network) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", filename)
	}
	defer file.Close()

	return n.Encode(file)
}

// Load reads a network previously written by Save.
func Load(filename string) (*Network, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", filename)
	}
	defer file.Close()

	return Decode(file)
}

// Encode writes the network to an io.Writer using gob encoding.
func (n *Network) Encode(w io.Writer) error {
	g := networkGob{
		Classification: n.classification,
		LearningRate:   n.learningRate,
		Lambda:         n.lambda,
		Epochs:         n.epochs,
		Costs:          n.costs,
	}
	for _, l := range n.layers[1:] {
		g.Layers = append(g.Layers, layerGob{
			Kind:    l.Kind().String(),
			In:      l.InSize(),
			Out:     l.OutSize(),
			Weights: append([]float64(nil), l.Weights().RawMatrix().Data...),
			Bias:    append([]float64(nil), l.Bias().RawMatrix().Data...),
		})
	}

	if err := gob.NewEncoder(w).Encode(g); err != nil {
		return errors.Wrap(err, "failed to encode network")
	}
	return nil
}

// Decode reads a network from an io.Reader and rebuilds it, placeholder slot
// included.
func Decode(r io.Reader) (*Network, error) {
	var g networkGob
	if err := gob.NewDecoder(r).Decode(&g); err != nil {
		return nil, errors.Wrap(err, "failed to decode network")
	}
	if len(g.Layers) == 0 {
		return nil, errors.New("decoded network has no layers")
	}

	layers := make([]*layer.Layer, 0, len(g.Layers)+1)
	layers = append(layers, placeholder())
	for i, lg := range g.Layers {
		kind, err := activations.KindFromName(lg.Kind)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode layer %d", i+1)
		}
		if len(lg.Weights) != lg.In*lg.Out || len(lg.Bias) != lg.Out {
			return nil, errors.Errorf("layer %d: %d weights and %d biases do not fit shape %dx%d",
				i+1, len(lg.Weights), len(lg.Bias), lg.In, lg.Out)
		}
		layers = append(layers, layer.FromParams(kind,
			mat.NewDense(lg.In, lg.Out, lg.Weights),
			mat.NewDense(1, lg.Out, lg.Bias)))
	}

	return &Network{
		layers:         layers,
		classification: g.Classification,
		learningRate:   g.LearningRate,
		lambda:         g.Lambda,
		epochs:         g.Epochs,
		costs:          g.Costs,
	}, nil
}
