package tree

import "strconv"

// determineBestThreshold finds the best threshold (Ordinal) or category
// (Categorical) for splitting rows on col, given the already-computed
// parent class histogram and its Gini impurity. classIdx is the class
// column's index, used to pull each row's class code without a second
// Metadata lookup per row.
//
// It returns the winning value as a decimal string (a threshold for
// Ordinal columns, a category code for Categorical columns — the caller,
// findBestSplit, decodes the category code to a label) and the gain
// achieved; gain is 0, and the value unspecified, if no split improves on
// the parent.
func determineBestThreshold(rows []RowView, col, classIdx int, kind AttributeKind, parentCounts ClassCount, parentGini float64) (string, float64) {
	n := len(rows)
	values := make([]int, n)
	classes := make([]int, n)
	for i, row := range rows {
		values[i] = row.At(col)
		classes[i] = row.At(classIdx)
	}
	sortPairs(values, classes)

	left := NewClassCount(len(parentCounts))
	leftTotal := 0
	bestGain := 0.0
	bestValue := 0

	for i := 0; i < n; i++ {
		left[classes[i]]++
		leftTotal++

		last := i == n-1
		changed := !last && values[i] != values[i+1]
		if !changed && !last {
			continue
		}

		right := parentCounts.Sub(left)
		rightTotal := n - leftTotal

		gain := parentGini -
			(float64(leftTotal)/float64(n))*gini(left, leftTotal) -
			(float64(rightTotal)/float64(n))*gini(right, rightTotal)

		threshold := values[i]
		if !last {
			threshold = values[i+1]
		}

		if gain > bestGain {
			bestGain = gain
			bestValue = threshold
		}

		if kind == Categorical {
			left = NewClassCount(len(parentCounts))
			leftTotal = 0
		}
	}

	return strconv.Itoa(bestValue), bestGain
}
