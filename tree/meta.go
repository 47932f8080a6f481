package tree

// AttributeKind distinguishes ordinal (numeric, threshold-split) columns
// from categorical (enumerated, equality-split) columns.
type AttributeKind int

const (
	Ordinal AttributeKind = iota
	Categorical
)

// ColumnMeta describes one column: its display name, its kind, and, for
// Categorical columns, the string<->code vocabulary.
type ColumnMeta struct {
	Name string
	Kind AttributeKind

	s2i map[string]int
	i2s []string
}

// NewOrdinalColumn builds an Ordinal ColumnMeta.
func NewOrdinalColumn(name string) ColumnMeta {
	return ColumnMeta{Name: name, Kind: Ordinal}
}

// NewCategoricalColumn builds a Categorical ColumnMeta whose vocabulary is
// vocab, assigned dense codes in the given order.
func NewCategoricalColumn(name string, vocab []string) ColumnMeta {
	s2i := make(map[string]int, len(vocab))
	i2s := make([]string, len(vocab))
	for i, v := range vocab {
		s2i[v] = i
		i2s[i] = v
	}
	return ColumnMeta{Name: name, Kind: Categorical, s2i: s2i, i2s: i2s}
}

// Code returns the dense integer code for a categorical value. ok is false
// if value is not in the column's vocabulary.
func (c ColumnMeta) Code(value string) (code int, ok bool) {
	code, ok = c.s2i[value]
	return code, ok
}

// Label returns the original string for a categorical code.
func (c ColumnMeta) Label(code int) string {
	if code < 0 || code >= len(c.i2s) {
		return ""
	}
	return c.i2s[code]
}

// VocabSize returns the number of distinct categories, 0 for Ordinal
// columns.
func (c ColumnMeta) VocabSize() int {
	return len(c.i2s)
}

// Vocab returns the column's categories in code order (Vocab()[code] ==
// Label(code)), nil for Ordinal columns.
func (c ColumnMeta) Vocab() []string {
	return c.i2s
}

// Metadata is the ordered column layout shared by an IntMatrix and its
// TestData counterpart. The last column is always the class column, which
// must be Categorical.
type Metadata struct {
	Columns []ColumnMeta

	classIndex int
}

// NewMetadata builds a Metadata from columns, the last of which is the
// class column. The class-column index is cached here once, at
// construction, rather than recomputed on every lookup or kept in
// process-wide state.
func NewMetadata(columns []ColumnMeta) Metadata {
	return Metadata{Columns: columns, classIndex: len(columns) - 1}
}

// ClassIndex returns the column index of the class attribute.
func (m Metadata) ClassIndex() int {
	return m.classIndex
}

// ClassColumn returns the ColumnMeta of the class attribute.
func (m Metadata) ClassColumn() ColumnMeta {
	return m.Columns[m.classIndex]
}

// NumFeatures returns the number of non-class columns.
func (m Metadata) NumFeatures() int {
	return len(m.Columns) - 1
}

// TestData is a held-out set of raw string rows, class column last. It is
// consumed only by the Classifier and the report, never by training.
type TestData [][]string
