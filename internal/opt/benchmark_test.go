// Package opt provides benchmarks for the SGD update rule.
package opt

import "testing"

// BenchmarkSGDStep benchmarks the allocating step.
func BenchmarkSGDStep(b *testing.B) {
	sgd := SGD{LearningRate: 0.01}
	params := make([]float64, 1000)
	gradients := make([]float64, 1000)
	for i := range params {
		params[i] = float64(i)
		gradients[i] = 0.1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sgd.Step(params, gradients)
	}
}

// BenchmarkSGDStepInPlace benchmarks the in-place step.
func BenchmarkSGDStepInPlace(b *testing.B) {
	sgd := SGD{LearningRate: 0.01, WeightDecay: 0.001}
	params := make([]float64, 1000)
	gradients := make([]float64, 1000)
	for i := range params {
		params[i] = float64(i)
		gradients[i] = 0.1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sgd.StepInPlace(params, gradients)
	}
}
