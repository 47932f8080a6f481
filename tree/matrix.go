package tree

// IntMatrix is an immutable, integer-encoded training table: ordinal
// columns store the literal value, categorical columns store the column's
// code.
type IntMatrix struct {
	Meta Metadata
	rows [][]int
}

// NewIntMatrix wraps rows (already integer-encoded per meta) as an
// IntMatrix. rows is retained, not copied; callers must not mutate it
// afterward.
func NewIntMatrix(meta Metadata, rows [][]int) *IntMatrix {
	return &IntMatrix{Meta: meta, rows: rows}
}

// Len returns the number of rows.
func (m *IntMatrix) Len() int { return len(m.rows) }

// Row returns the row at i. The returned slice must not be mutated.
func (m *IntMatrix) Row(i int) []int { return m.rows[i] }

// RowView is a non-owning reference to one row of a backing IntMatrix.
// Many RowViews may alias the same row — bootstrap resampling draws the
// same training row more than once — which is safe because IntMatrix rows
// are never mutated after construction.
type RowView struct {
	m   *IntMatrix
	idx int
}

// NewRowView builds a RowView over row idx of m.
func NewRowView(m *IntMatrix, idx int) RowView {
	return RowView{m: m, idx: idx}
}

// At returns the value in column col of the viewed row.
func (v RowView) At(col int) int { return v.m.rows[v.idx][col] }

// AllRows returns a RowView for every row of m, in order.
func AllRows(m *IntMatrix) []RowView {
	out := make([]RowView, m.Len())
	for i := range out {
		out[i] = NewRowView(m, i)
	}
	return out
}
