package tree

import "strconv"

// partition splits rows into (trueRows, falseRows) according to q, by a
// single linear scan that appends each row to exactly one output slice —
// a stable partition that preserves input order within each side, unlike
// an in-place swap partition.
func partition(rows []RowView, q Question, meta Metadata) (trueRows, falseRows []RowView) {
	trueRows = make([]RowView, 0, len(rows))
	falseRows = make([]RowView, 0, len(rows))

	for _, row := range rows {
		if matchesEncoded(row, q, meta) {
			trueRows = append(trueRows, row)
		} else {
			falseRows = append(falseRows, row)
		}
	}
	return trueRows, falseRows
}

// matchesEncoded evaluates q against an already integer-encoded row.
func matchesEncoded(row RowView, q Question, meta Metadata) bool {
	v := row.At(q.Column)
	if meta.Columns[q.Column].Kind == Ordinal {
		return v >= q.code
	}
	return v == q.code
}

// matchesRaw evaluates q against a raw string test row, used only during
// inference. An ordinal value that fails to parse, or a categorical value
// outside the training vocabulary, evaluates to false rather than
// aborting classification.
func matchesRaw(row []string, q Question, meta Metadata) bool {
	raw := row[q.Column]
	if meta.Columns[q.Column].Kind == Ordinal {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return false
		}
		return v >= q.code
	}
	code, ok := meta.Columns[q.Column].Code(raw)
	if !ok {
		return false
	}
	return code == q.code
}
