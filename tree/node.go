package tree

// LeafPrediction maps a class label to a nonnegative count: a leaf's
// prediction histogram.
type LeafPrediction map[string]int

// Node is a tagged-variant tree node: either a Leaf holding a prediction
// histogram, or an internal node holding a split Question and two
// children. A Node owns its children exclusively and is never mutated
// after construction.
type Node struct {
	Leaf       bool
	Prediction LeafPrediction

	Question   Question
	TrueChild  *Node
	FalseChild *Node
}

// newLeaf builds a Leaf Node from a class-code histogram, translating
// codes back to labels via the class column's vocabulary.
func newLeaf(counts ClassCount, classCol ColumnMeta) *Node {
	pred := make(LeafPrediction, len(counts))
	for code, n := range counts {
		if n == 0 {
			continue
		}
		pred[classCol.Label(code)] = n
	}
	return &Node{Leaf: true, Prediction: pred}
}

// PredictLabel reduces a leaf histogram to a single label: the class with
// the maximum count, ties broken by lexicographic order of the label so
// the reduction is deterministic.
func PredictLabel(pred LeafPrediction) string {
	best := ""
	bestN := -1
	for label, n := range pred {
		if n > bestN || (n == bestN && label < best) {
			best = label
			bestN = n
		}
	}
	return best
}
