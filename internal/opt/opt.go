// Package opt provides the gradient-descent update rule shared by network
// layers and the iterative regression estimators.
package opt

// SGD (Stochastic Gradient Descent) update rule.
// A nonzero WeightDecay adds L2 shrinkage: the effective gradient for
// parameter i is gradients[i] + WeightDecay*params[i].
type SGD struct {
	LearningRate float64
	WeightDecay  float64
}

// Step computes updated parameters: params - lr * (gradients + wd*params)
// Returns a new slice with updated values
func (s SGD) Step(params, gradients []float64) []float64 {
	result := make([]float64, len(params))
	for i := range params {
		result[i] = params[i] - s.LearningRate*(gradients[i]+s.WeightDecay*params[i])
	}
	return result
}

// StepInPlace updates params in-place: params = params - lr * (gradients + wd*params)
func (s SGD) StepInPlace(params, gradients []float64) {
	for i := range params {
		params[i] -= s.LearningRate * (gradients[i] + s.WeightDecay*params[i])
	}
}
