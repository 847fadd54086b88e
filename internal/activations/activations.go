// Package activations provides the activation variants available to network layers.
package activations

import (
	"fmt"
	"math"
)

// LeakySlope is the slope LeakyReLU applies to non-positive values.
const LeakySlope = 0.01

// Kind identifies an activation variant. The set is closed: a layer is
// constructed with one of the constants below and keeps it for its lifetime.
type Kind int

const (
	// Linear is the identity activation.
	Linear Kind = iota
	// Sigmoid squashes values into (0, 1).
	Sigmoid
	// ReLU zeroes non-positive values.
	ReLU
	// LeakyReLU scales non-positive values by LeakySlope.
	LeakyReLU
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "Linear"
	case Sigmoid:
		return "Sigmoid"
	case ReLU:
		return "ReLU"
	case LeakyReLU:
		return "LeakyReLU"
	}
	panic(fmt.Sprintf("activations: unknown kind %d", int(k)))
}

// Apply computes f(x)
func (k Kind) Apply(x float64) float64 {
	switch k {
	case Linear:
		return x
	case Sigmoid:
		return 1 / (1 + math.Exp(-x))
	case ReLU:
		if x > 0 {
			return x
		}
		return 0
	case LeakyReLU:
		if x > 0 {
			return x
		}
		return LeakySlope * x
	}
	panic(fmt.Sprintf("activations: unknown kind %d", int(k)))
}

// Derivative computes f' expressed in terms of the activation value v = f(x).
// Backpropagation caches activation values, not pre-activations, so the forms
// below take v: sigmoid' = v*(1-v), and for the piecewise variants v > 0
// exactly when x > 0.
func (k Kind) Derivative(v float64) float64 {
	switch k {
	case Linear:
		return 1
	case Sigmoid:
		return v * (1 - v)
	case ReLU:
		if v > 0 {
			return 1
		}
		return 0
	case LeakyReLU:
		if v > 0 {
			return 1
		}
		return LeakySlope
	}
	panic(fmt.Sprintf("activations: unknown kind %d", int(k)))
}

// KindFromName returns the Kind with the given String name.
// Used when reconstructing persisted networks.
func KindFromName(name string) (Kind, error) {
	switch name {
	case "Linear":
		return Linear, nil
	case "Sigmoid":
		return Sigmoid, nil
	case "ReLU":
		return ReLU, nil
	case "LeakyReLU":
		return LeakyReLU, nil
	}
	return 0, fmt.Errorf("activations: unknown kind name %q", name)
}
