// Package arff parses the ARFF text format into the tree package's
// Metadata/IntMatrix/TestData types. It is the "external collaborator" the
// induction engine in package tree treats only as a producer of typed
// metadata and an integer-encoded training matrix.
package arff

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/wlattner/cart/tree"
)

// Dataset is the result of reading a train/test ARFF pair: the column
// metadata and integer-encoded training matrix the tree package consumes,
// plus the raw string test rows the Classifier/report consume.
type Dataset struct {
	Meta  tree.Metadata
	Train *tree.IntMatrix
	Test  tree.TestData
}

type attribute struct {
	name  string
	kind  tree.AttributeKind
	vocab []string
}

// Read parses the ARFF files at trainPath and testPath (read concurrently,
// mirroring the two-thread DataReader constructor this is descended from)
// into a Dataset. If classLabel is non-empty and is not already the last
// declared attribute in a file, that file's attribute order and every data
// row are permuted to move it there.
func Read(trainPath, testPath, classLabel string) (*Dataset, error) {
	var trainAttrs, testAttrs []attribute
	var trainRows, testRows [][]string
	var trainErr, testErr error

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		trainAttrs, trainRows, trainErr = parseFile(trainPath)
	}()
	go func() {
		defer wg.Done()
		testAttrs, testRows, testErr = parseFile(testPath)
	}()
	wg.Wait()

	if trainErr != nil {
		return nil, fmt.Errorf("arff: reading %s: %w", trainPath, trainErr)
	}
	if testErr != nil {
		return nil, fmt.Errorf("arff: reading %s: %w", testPath, testErr)
	}

	if classLabel != "" {
		moveClassToBack(trainAttrs, trainRows, classLabel)
		moveClassToBack(testAttrs, testRows, classLabel)
	}

	columns := make([]tree.ColumnMeta, len(trainAttrs))
	for i, a := range trainAttrs {
		if a.kind == tree.Ordinal {
			columns[i] = tree.NewOrdinalColumn(a.name)
		} else {
			columns[i] = tree.NewCategoricalColumn(a.name, a.vocab)
		}
	}
	meta := tree.NewMetadata(columns)

	intRows := make([][]int, 0, len(trainRows))
	for _, row := range trainRows {
		if len(row) != len(columns) {
			log.Printf("arff: %s: dropping row with %d fields, want %d: %v", trainPath, len(row), len(columns), row)
			continue
		}
		encoded, ok := encodeRow(row, columns)
		if !ok {
			log.Printf("arff: %s: dropping row with an unencodable value: %v", trainPath, row)
			continue
		}
		intRows = append(intRows, encoded)
	}

	return &Dataset{
		Meta:  meta,
		Train: tree.NewIntMatrix(meta, intRows),
		Test:  tree.TestData(testRows),
	}, nil
}

func encodeRow(row []string, columns []tree.ColumnMeta) ([]int, bool) {
	out := make([]int, len(columns))
	for i, col := range columns {
		if col.Kind == tree.Ordinal {
			v, err := strconv.Atoi(row[i])
			if err != nil {
				return nil, false
			}
			out[i] = v
			continue
		}
		code, ok := col.Code(row[i])
		if !ok {
			return nil, false
		}
		out[i] = code
	}
	return out, true
}

// moveClassToBack relocates the attribute named classLabel (and the
// corresponding field of every row) to the last position, replacing the
// source's function-local static cache of this index with a plain linear
// search performed once per file.
func moveClassToBack(attrs []attribute, rows [][]string, classLabel string) {
	idx := -1
	for i, a := range attrs {
		if a.name == classLabel {
			idx = i
			break
		}
	}
	last := len(attrs) - 1
	if idx < 0 || idx == last {
		return
	}

	attrs[idx], attrs[last] = attrs[last], attrs[idx]
	for _, row := range rows {
		if idx < len(row) && last < len(row) {
			row[idx], row[last] = row[last], row[idx]
		}
	}
}

// parseFile reads one ARFF file into its declared attributes and raw
// (whitespace-trimmed) data rows. Blank lines and comment lines (first
// non-blank character '%') are ignored throughout.
func parseFile(path string) ([]attribute, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var attrs []attribute
	var rows [][]string
	inData := false

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		if !inData {
			upper := strings.ToUpper(line)
			switch {
			case strings.HasPrefix(upper, "@RELATION"):
				// relation name carries no semantics here.
			case strings.HasPrefix(upper, "@ATTRIBUTE"):
				a, err := parseAttribute(line)
				if err != nil {
					log.Printf("arff: %s: %v", path, err)
					continue
				}
				attrs = append(attrs, a)
			case strings.HasPrefix(upper, "@DATA"):
				inData = true
			default:
				log.Printf("arff: %s: unrecognized header line %q", path, line)
			}
			continue
		}

		fields := splitTrim(line, ",")
		if len(fields) != len(attrs) {
			log.Printf("arff: %s: dropping row with %d fields, want %d: %q", path, len(fields), len(attrs), line)
			continue
		}
		rows = append(rows, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}

	return attrs, rows, nil
}

func parseAttribute(line string) (attribute, error) {
	const prefix = "@ATTRIBUTE"
	rest := strings.TrimSpace(line[len(prefix):])
	upper := strings.ToUpper(rest)

	switch {
	case strings.HasSuffix(upper, "NUMERIC"):
		name := strings.TrimSpace(rest[:len(rest)-len("NUMERIC")])
		return attribute{name: name, kind: tree.Ordinal}, nil
	case strings.HasSuffix(upper, "REAL"):
		name := strings.TrimSpace(rest[:len(rest)-len("REAL")])
		return attribute{name: name, kind: tree.Ordinal}, nil
	}

	open := strings.Index(rest, "{")
	shut := strings.LastIndex(rest, "}")
	if open < 0 || shut < 0 || shut < open {
		return attribute{}, fmt.Errorf("malformed @ATTRIBUTE line: %q", line)
	}

	name := strings.TrimSpace(rest[:open])
	vocab := splitTrim(rest[open+1:shut], ",")
	return attribute{name: name, kind: tree.Categorical, vocab: vocab}, nil
}

func splitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}
