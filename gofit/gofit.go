package gofit

import (
	"github.com/FlavioCFOliveira/GoFit/internal/activations"
	"github.com/FlavioCFOliveira/GoFit/internal/net"
	"github.com/FlavioCFOliveira/GoFit/internal/regression"
)

// Re-export common types and functions for easier access
type (
	Network      = net.Network
	Config       = net.Config
	Callback     = net.Callback
	BaseCallback = net.BaseCallback
	Model        = regression.Model
	Logistic     = regression.Logistic
	OLS          = regression.OLS
	Intervals    = regression.Intervals
	Kind         = activations.Kind
)

// Activations
const (
	Linear    = activations.Linear
	Sigmoid   = activations.Sigmoid
	ReLU      = activations.ReLU
	LeakyReLU = activations.LeakyReLU
)

// Network creation
func DefaultConfig() Config {
	return net.DefaultConfig()
}

func New(cfg Config) *Network {
	return net.New(cfg)
}

// Callbacks
func Logger(interval int) net.Logger {
	return net.Logger{Interval: interval}
}

func CSVLogger(filename string, append bool) Callback {
	return net.NewCSVLogger(filename, append)
}

func ModelCheckpoint(filename string) Callback {
	return net.NewModelCheckpoint(filename)
}

// Regression models
func NewLogistic(alpha float64, iterations int, lambda float64) *Logistic {
	return regression.NewLogistic(alpha, iterations, lambda)
}

func DefaultLogistic() *Logistic {
	return regression.DefaultLogistic()
}

func NewOLS(degree int) *OLS {
	return regression.NewOLS(degree)
}

// Model Persistence
func Load(filename string) (*Network, error) {
	return net.Load(filename)
}
