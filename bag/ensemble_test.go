package bag

import (
	"reflect"
	"testing"

	"github.com/wlattner/cart/tree"
)

func tennisFixture() (tree.Metadata, *tree.IntMatrix) {
	meta := tree.NewMetadata([]tree.ColumnMeta{
		tree.NewCategoricalColumn("outlook", []string{"Sunny", "Overcast", "Rain"}),
		tree.NewOrdinalColumn("temperature"),
		tree.NewCategoricalColumn("windy", []string{"False", "True"}),
		tree.NewCategoricalColumn("play", []string{"yes", "no"}),
	})
	rows := [][]int{
		{0, 85, 0, 1},
		{0, 80, 1, 1},
		{1, 83, 0, 0},
		{2, 70, 0, 0},
		{2, 68, 0, 0},
		{2, 65, 1, 1},
		{1, 64, 1, 0},
		{0, 72, 0, 1},
		{0, 69, 0, 0},
		{2, 75, 0, 0},
		{0, 75, 1, 0},
		{1, 72, 1, 0},
		{1, 81, 0, 0},
		{2, 71, 1, 1},
	}
	return meta, tree.NewIntMatrix(meta, rows)
}

func TestFitEmptyEnsemble(t *testing.T) {
	meta, m := tennisFixture()
	if _, err := Fit(meta, m, EnsembleSize(0)); err != ErrEmptyEnsemble {
		t.Errorf("Fit with EnsembleSize(0) = %v, want ErrEmptyEnsemble", err)
	}
}

func TestFitEmptyDataset(t *testing.T) {
	meta, _ := tennisFixture()
	empty := tree.NewIntMatrix(meta, nil)
	if _, err := Fit(meta, empty); err != tree.ErrEmptyDataset {
		t.Errorf("Fit on empty dataset = %v, want ErrEmptyDataset", err)
	}
}

func TestFitBaggingDeterminism(t *testing.T) {
	meta, m := tennisFixture()

	ens1, err := Fit(meta, m, EnsembleSize(8), Seed(42), NumWorkers(4))
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	ens2, err := Fit(meta, m, EnsembleSize(8), Seed(42), NumWorkers(1))
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}

	if !reflect.DeepEqual(ens1.Bootstraps, ens2.Bootstraps) {
		t.Fatalf("bootstrap index multisets diverged across runs with the same seed")
	}

	testRows := [][]string{
		{"Sunny", "85", "False", "yes"},
		{"Overcast", "83", "False", "yes"},
		{"Rain", "65", "True", "no"},
	}
	for _, row := range testRows {
		p1 := ens1.Predict(row)
		p2 := ens2.Predict(row)
		if p1 != p2 {
			t.Errorf("Predict(%v) = %q / %q across two seeded runs, want identical", row, p1, p2)
		}
	}
}

func TestFitSingleTreeMatchesBuild(t *testing.T) {
	meta, m := tennisFixture()
	ens, err := Fit(meta, m, EnsembleSize(1), Seed(7))
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if len(ens.Trees) != 1 {
		t.Fatalf("len(Trees) = %d, want 1", len(ens.Trees))
	}
	if ens.Trees[0] == nil {
		t.Fatalf("Trees[0] is nil")
	}

	rows := make([][]int, len(ens.Bootstraps[0]))
	for i, id := range ens.Bootstraps[0] {
		rows[i] = m.Row(id)
	}
	want, err := tree.Build(meta, tree.AllRows(tree.NewIntMatrix(meta, rows)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !reflect.DeepEqual(ens.Trees[0], want) {
		t.Errorf("ensemble tree differs from tree.Build over the same bootstrap sample")
	}
}
