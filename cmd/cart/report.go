package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/wlattner/cart/bag"
	"github.com/wlattner/cart/tree"
)

// fitReport carries everything the CLI prints after a fit: identifying
// metadata for the run, timing, and the confusion-matrix/accuracy figures
// computed against the held-out test rows.
type fitReport struct {
	RunID           string
	EnsembleSize    int
	NumTrain        int
	FitDuration     time.Duration
	AvgTreeDuration time.Duration
	Classes         []string
	ConfusionMatrix [][]int
	Accuracy        float64
}

func evaluate(ens *bag.Ensemble, meta tree.Metadata, test tree.TestData) (classes []string, confMat [][]int, accuracy float64) {
	classes = meta.ClassColumn().Vocab()
	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	confMat = make([][]int, len(classes))
	for i := range confMat {
		confMat[i] = make([]int, len(classes))
	}

	if len(test) == 0 {
		return classes, confMat, 0
	}

	correct := 0
	for _, row := range test {
		actual := row[len(row)-1]
		predicted := ens.Predict(row)

		ai, aok := index[actual]
		pi, pok := index[predicted]
		if !aok || !pok {
			continue
		}
		confMat[ai][pi]++
		if ai == pi {
			correct++
		}
	}
	accuracy = float64(correct) / float64(len(test))

	return classes, confMat, accuracy
}

// Print writes the fit-and-evaluate summary: an identifying run header,
// timing, a confusion matrix, and overall test accuracy, in the reference
// CLI's plain fmt.Fprintf table style.
func (r fitReport) Print(w io.Writer, colorize bool) {
	fmt.Fprintf(w, "Run %s: fit %d trees using %d examples in %.2fs (avg %.3fs/tree)\n",
		r.RunID, r.EnsembleSize, r.NumTrain, r.FitDuration.Seconds(), r.AvgTreeDuration.Seconds())
	fmt.Fprintln(w)

	header := "Confusion Matrix"
	if colorize {
		header = color.New(color.FgCyan, color.Bold).Sprint(header)
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, "----------------")

	fmt.Fprintf(w, "%-14s ", "")
	for _, class := range r.Classes {
		fmt.Fprintf(w, "%-14s ", class)
	}
	fmt.Fprintln(w)

	for predicted, class := range r.Classes {
		fmt.Fprintf(w, "%-14s ", class)
		for actual := range r.Classes {
			fmt.Fprintf(w, "%-14d ", r.ConfusionMatrix[actual][predicted])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	acc := fmt.Sprintf("Overall Accuracy: %.2f%%", 100.0*r.Accuracy)
	if colorize {
		acc = color.New(color.FgGreen, color.Bold).Sprint(acc)
	}
	fmt.Fprintln(w, acc)
}
