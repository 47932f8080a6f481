package tree

// Classify walks node for a single raw test row (string fields, class
// column last and unused here), returning the leaf histogram reached. An
// unknown category or unparseable numeric value at an internal node falls
// to the false branch rather than aborting.
func Classify(row []string, node *Node, meta Metadata) LeafPrediction {
	n := node
	for !n.Leaf {
		if matchesRaw(row, n.Question, meta) {
			n = n.TrueChild
		} else {
			n = n.FalseChild
		}
	}
	return n.Prediction
}
