package main

import (
	"testing"

	"github.com/wlattner/cart/bag"
	"github.com/wlattner/cart/tree"
)

func fixture() (tree.Metadata, *tree.IntMatrix) {
	meta := tree.NewMetadata([]tree.ColumnMeta{
		tree.NewOrdinalColumn("a"),
		tree.NewCategoricalColumn("class", []string{"P", "N"}),
	})
	rows := [][]int{
		{1, 0}, {2, 0}, {3, 1}, {4, 1},
	}
	return meta, tree.NewIntMatrix(meta, rows)
}

func TestEvaluateCountsEveryTestRow(t *testing.T) {
	meta, m := fixture()
	ens, err := bag.Fit(meta, m, bag.EnsembleSize(5), bag.Seed(1))
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	test := tree.TestData{
		{"1", "P"},
		{"2", "P"},
		{"3", "N"},
		{"4", "N"},
	}

	classes, confMat, accuracy := evaluate(ens, meta, test)
	if len(classes) != 2 {
		t.Fatalf("len(classes) = %d, want 2", len(classes))
	}
	total := 0
	for _, row := range confMat {
		for _, v := range row {
			total += v
		}
	}
	if total != len(test) {
		t.Errorf("confusion matrix counts %d rows, want %d", total, len(test))
	}
	if accuracy < 0 || accuracy > 1 {
		t.Errorf("accuracy = %v, want in [0, 1]", accuracy)
	}
}

func TestEvaluateEmptyTestSet(t *testing.T) {
	meta, m := fixture()
	ens, err := bag.Fit(meta, m, bag.EnsembleSize(3), bag.Seed(1))
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	_, _, accuracy := evaluate(ens, meta, nil)
	if accuracy != 0 {
		t.Errorf("accuracy on empty test set = %v, want 0", accuracy)
	}
}
