package tree

import (
	"errors"
	"sync"
)

// ErrEmptyDataset is returned by Build when invoked with zero rows or zero
// columns.
var ErrEmptyDataset = errors.New("tree: empty dataset")

// ParallelThreshold is the row-count above which Build spawns its two
// children concurrently rather than recursing on the calling goroutine.
const ParallelThreshold = 25000

type buildConfig struct {
	parallelThreshold int
}

// BuildOption configures a Build call.
type BuildOption func(*buildConfig)

// WithParallelThreshold overrides the default PARALLEL_THRESHOLD (25000),
// primarily so tests can force or forbid the concurrent path
// deterministically.
func WithParallelThreshold(n int) BuildOption {
	return func(c *buildConfig) { c.parallelThreshold = n }
}

// Build recursively induces a classification tree over rows by repeatedly
// finding the best Gini-gain split and partitioning, terminating a branch
// in a Leaf once no column yields positive gain. Above the parallel
// threshold, a split's two children are built on independent goroutines
// joined by a sync.WaitGroup; fan-out is otherwise bounded by tree depth,
// so spawning at every internal node would oversubscribe the scheduler.
func Build(meta Metadata, rows []RowView, opts ...BuildOption) (*Node, error) {
	if len(rows) == 0 || len(meta.Columns) == 0 {
		return nil, ErrEmptyDataset
	}

	cfg := buildConfig{parallelThreshold: ParallelThreshold}
	for _, o := range opts {
		o(&cfg)
	}

	return build(meta, rows, &cfg), nil
}

func build(meta Metadata, rows []RowView, cfg *buildConfig) *Node {
	gain, q := findBestSplit(rows, meta)
	if gain == 0 {
		return newLeaf(Tally(rows, meta), meta.ClassColumn())
	}

	trueRows, falseRows := partition(rows, q, meta)

	var trueChild, falseChild *Node
	if len(rows) > cfg.parallelThreshold {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			trueChild = build(meta, trueRows, cfg)
		}()
		go func() {
			defer wg.Done()
			falseChild = build(meta, falseRows, cfg)
		}()
		wg.Wait()
	} else {
		trueChild = build(meta, trueRows, cfg)
		falseChild = build(meta, falseRows, cfg)
	}

	return &Node{Question: q, TrueChild: trueChild, FalseChild: falseChild}
}
