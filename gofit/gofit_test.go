package gofit_test

import (
	"path/filepath"
	"testing"

	"github.com/FlavioCFOliveira/GoFit/gofit"
	"gonum.org/v1/gonum/mat"
)

// TestFacadeTraining tests the re-exported surface end to end: configure,
// train, persist and reload through the facade alone.
func TestFacadeTraining(t *testing.T) {
	cfg := gofit.DefaultConfig()
	cfg.Inputs = 2
	cfg.Hidden = []int{3}
	cfg.FinalKind = gofit.Sigmoid
	cfg.Classification = true
	cfg.Epochs = 5
	cfg.LearningRate = 0.1
	cfg.Seed = 4
	cfg.Callbacks = []gofit.Callback{gofit.Logger(0)}

	n := gofit.New(cfg)

	x := mat.NewDense(4, 2, []float64{0, 0, 0, 1, 1, 0, 1, 1})
	y := mat.NewDense(4, 1, []float64{0, 1, 1, 0})
	n.Fit(x, y)

	if got := len(n.Costs()); got != 5 {
		t.Errorf("cost log length = %d, want 5", got)
	}

	classes := n.PredictClasses(x)
	if len(classes) != 4 {
		t.Errorf("classes length = %d, want 4", len(classes))
	}

	path := filepath.Join(t.TempDir(), "model.gob")
	if err := n.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := gofit.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !mat.Equal(n.Predict(x), loaded.Predict(x)) {
		t.Error("loaded network predicts differently")
	}
}

// TestFacadeActivationConstants tests that the re-exported constants map to
// the expected variants.
func TestFacadeActivationConstants(t *testing.T) {
	names := map[gofit.Kind]string{
		gofit.Linear:    "Linear",
		gofit.Sigmoid:   "Sigmoid",
		gofit.ReLU:      "ReLU",
		gofit.LeakyReLU: "LeakyReLU",
	}

	for kind, want := range names {
		if got := kind.String(); got != want {
			t.Errorf("kind string = %q, want %q", got, want)
		}
	}
}

// TestFacadeModels tests the regression constructors through the shared
// interface alias.
func TestFacadeModels(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{1, 0, 1, 1, 1, 2})
	y := mat.NewDense(3, 1, []float64{0, 1, 1})

	models := []gofit.Model{gofit.DefaultLogistic(), gofit.NewOLS(1)}
	for _, m := range models {
		if err := m.Fit(x, y); err != nil {
			t.Fatalf("Fit failed: %v", err)
		}
		preds, err := m.Predict(x)
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if len(preds) != 3 {
			t.Errorf("prediction count = %d, want 3", len(preds))
		}
	}
}
