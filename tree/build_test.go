package tree

import "reflect"
import "testing"

func TestBuildPureDataset(t *testing.T) {
	meta := NewMetadata([]ColumnMeta{
		NewOrdinalColumn("a"),
		NewCategoricalColumn("class", []string{"P", "N"}),
	})
	m := NewIntMatrix(meta, [][]int{
		{1, 0},
		{2, 0},
		{3, 0},
	})

	root, err := Build(meta, AllRows(m))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !root.Leaf {
		t.Fatalf("expected a Leaf, got an Internal node with question %+v", root.Question)
	}
	if root.Prediction["P"] != 3 {
		t.Errorf("Prediction[P] = %d, want 3", root.Prediction["P"])
	}
	if len(root.Prediction) != 1 {
		t.Errorf("expected a single nonzero class, got %v", root.Prediction)
	}
}

func TestBuildOneSplitOrdinal(t *testing.T) {
	meta := NewMetadata([]ColumnMeta{
		NewOrdinalColumn("a"),
		NewCategoricalColumn("class", []string{"N", "P"}),
	})
	m := NewIntMatrix(meta, [][]int{
		{1, 0},
		{2, 0},
		{3, 1},
		{4, 1},
	})

	root, err := Build(meta, AllRows(m))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if root.Leaf {
		t.Fatalf("expected an Internal node")
	}
	if root.Question.Column != 0 || root.Question.Value != "3" {
		t.Errorf("question = %+v, want column 0 value 3", root.Question)
	}
	if !root.TrueChild.Leaf || root.TrueChild.Prediction["P"] != 2 {
		t.Errorf("true child = %+v, want Leaf{P:2}", root.TrueChild)
	}
	if !root.FalseChild.Leaf || root.FalseChild.Prediction["N"] != 2 {
		t.Errorf("false child = %+v, want Leaf{N:2}", root.FalseChild)
	}
}

func TestBuildCategoricalIsolation(t *testing.T) {
	meta := NewMetadata([]ColumnMeta{
		NewCategoricalColumn("outlook", []string{"Sunny", "Overcast", "Rain"}),
		NewCategoricalColumn("class", []string{"Y", "N"}),
	})
	// Sunny,N Sunny,N Overcast,Y Rain,Y Rain,N
	m := NewIntMatrix(meta, [][]int{
		{0, 1},
		{0, 1},
		{1, 0},
		{2, 0},
		{2, 1},
	})

	root, err := Build(meta, AllRows(m))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if root.Leaf {
		t.Fatalf("expected an Internal node")
	}
	if root.Question.Column != 0 || root.Question.Value != "Overcast" {
		t.Errorf("question = %+v, want column 0 value Overcast", root.Question)
	}
	if !root.TrueChild.Leaf || root.TrueChild.Prediction["Y"] != 1 || len(root.TrueChild.Prediction) != 1 {
		t.Errorf("true child = %+v, want Leaf{Y:1}", root.TrueChild)
	}
	if root.FalseChild.Leaf {
		t.Errorf("false child should still need a further split (Sunny vs Rain rows remain mixed)")
	}

	total := sumPredictions(root)
	if total["Y"] != 2 || total["N"] != 3 {
		t.Errorf("leaf predictions summed to %v, want Y:2 N:3", total)
	}
}

func TestBuildAllEqualFeatureColumn(t *testing.T) {
	meta := NewMetadata([]ColumnMeta{
		NewOrdinalColumn("a"),
		NewCategoricalColumn("class", []string{"X", "Y"}),
	})
	m := NewIntMatrix(meta, [][]int{
		{5, 0},
		{5, 1},
		{5, 0},
	})

	root, err := Build(meta, AllRows(m))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !root.Leaf {
		t.Fatalf("expected a Leaf since the only feature column is constant")
	}
	if root.Prediction["X"] != 2 || root.Prediction["Y"] != 1 {
		t.Errorf("Prediction = %v, want X:2 Y:1", root.Prediction)
	}
}

func TestBuildParallelEquivalence(t *testing.T) {
	meta := NewMetadata([]ColumnMeta{
		NewOrdinalColumn("a"),
		NewCategoricalColumn("class", []string{"A", "B"}),
	})
	rows := make([][]int, 30000)
	for i := range rows {
		class := 0
		if i%3 != 0 {
			class = 1
		}
		rows[i] = []int{i % 50, class}
	}
	m := NewIntMatrix(meta, rows)

	seq, err := Build(meta, AllRows(m), WithParallelThreshold(1<<30))
	if err != nil {
		t.Fatalf("Build (sequential): %v", err)
	}
	par, err := Build(meta, AllRows(m), WithParallelThreshold(25000))
	if err != nil {
		t.Fatalf("Build (parallel): %v", err)
	}
	if !reflect.DeepEqual(seq, par) {
		t.Fatalf("parallel build diverged from sequential build")
	}
}

func TestBuildEmptyDataset(t *testing.T) {
	meta := NewMetadata([]ColumnMeta{
		NewOrdinalColumn("a"),
		NewCategoricalColumn("class", []string{"X", "Y"}),
	})
	m := NewIntMatrix(meta, nil)
	if _, err := Build(meta, AllRows(m)); err != ErrEmptyDataset {
		t.Errorf("Build on empty rows = %v, want ErrEmptyDataset", err)
	}
}

func sumPredictions(n *Node) map[string]int {
	if n.Leaf {
		out := make(map[string]int, len(n.Prediction))
		for k, v := range n.Prediction {
			out[k] = v
		}
		return out
	}
	out := sumPredictions(n.TrueChild)
	for k, v := range sumPredictions(n.FalseChild) {
		out[k] += v
	}
	return out
}
