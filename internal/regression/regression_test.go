package regression_test

import (
	"testing"

	"github.com/FlavioCFOliveira/GoFit/internal/regression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestModelContract tests both estimators through the shared interface.
func TestModelContract(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{1, 0, 1, 1, 1, 2, 1, 3})
	y := mat.NewDense(4, 1, []float64{0, 0, 1, 1})

	models := map[string]regression.Model{
		"logistic": regression.DefaultLogistic(),
		"ols":      regression.NewOLS(1),
	}

	for name, model := range models {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, model.Fit(x, y))

			preds, err := model.Predict(x)
			require.NoError(t, err)
			assert.Len(t, preds, 4)
		})
	}
}
