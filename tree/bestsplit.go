package tree

import "strconv"

// Question identifies a candidate or decided split: a column index and the
// decoded split value (a decimal threshold for Ordinal columns, the
// original category label for Categorical columns). The integer-encoded
// form is cached alongside so Classify need not re-parse the string on
// every inference row.
type Question struct {
	Column int
	Value  string

	ordinal bool
	code    int
}

// findBestSplit computes the parent Gini impurity and class histogram
// once, then asks determineBestThreshold about every non-class column,
// keeping the strictly-best (column, value, gain) triple. Column index
// order breaks ties: the first column to reach a given gain wins.
func findBestSplit(rows []RowView, meta Metadata) (float64, Question) {
	classIdx := meta.ClassIndex()
	parentCounts := Tally(rows, meta)
	parentGini := gini(parentCounts, parentCounts.Total())

	bestGain := 0.0
	var best Question

	for col := 0; col < meta.NumFeatures(); col++ {
		kind := meta.Columns[col].Kind
		valStr, gain := determineBestThreshold(rows, col, classIdx, kind, parentCounts, parentGini)
		if gain <= bestGain {
			continue
		}

		code, _ := strconv.Atoi(valStr)
		q := Question{Column: col, ordinal: kind == Ordinal, code: code}
		if kind == Ordinal {
			q.Value = valStr
		} else {
			q.Value = meta.Columns[col].Label(code)
		}

		bestGain = gain
		best = q
	}

	return bestGain, best
}
