package gofit_test

import (
	"fmt"

	"github.com/FlavioCFOliveira/GoFit/gofit"
	"gonum.org/v1/gonum/mat"
)

func Example() {
	cfg := gofit.DefaultConfig()
	cfg.Inputs = 2
	cfg.Hidden = []int{3}
	cfg.FinalKind = gofit.Sigmoid
	cfg.Classification = true
	cfg.Epochs = 200
	cfg.LearningRate = 0.5
	cfg.Seed = 1

	n := gofit.New(cfg)

	x := mat.NewDense(4, 2, []float64{0, 0, 0, 1, 1, 0, 1, 1})
	y := mat.NewDense(4, 1, []float64{0, 1, 1, 0})
	n.Fit(x, y)

	fmt.Println(len(n.Costs()))
	// Output: 200
}

func ExampleNewOLS() {
	// Design matrix [1, x] for z = 1 + 2x
	x := mat.NewDense(3, 2, []float64{1, 0, 1, 1, 1, 2})
	z := mat.NewDense(3, 1, []float64{1, 3, 5})

	model := gofit.NewOLS(1)
	if err := model.Fit(x, z); err != nil {
		fmt.Println(err)
		return
	}

	pred, _ := model.Predict(mat.NewDense(1, 2, []float64{1, 10}))
	fmt.Printf("%s predicts %.0f\n", model, pred[0])
	// Output: ols predicts 21
}

func ExampleNewLogistic() {
	x := mat.NewDense(4, 1, []float64{-2, -1, 1, 2})
	y := mat.NewDense(4, 1, []float64{0, 0, 1, 1})

	model := gofit.NewLogistic(0.5, 2000, 0)
	if err := model.Fit(x, y); err != nil {
		fmt.Println(err)
		return
	}

	probs, _ := model.Predict(x)
	fmt.Println(probs[0] < 0.5, probs[3] > 0.5)
	// Output: true true
}
