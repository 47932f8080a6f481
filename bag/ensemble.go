// Package bag implements bagging (bootstrap aggregation) of classification
// trees from the tree package: N unpruned trees are fit on N independent
// with-replacement resamples of the training rows, and a row is classified
// by plurality vote across the trees.
package bag

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/wlattner/cart/tree"
)

// ErrEmptyEnsemble is returned by Fit when EnsembleSize is less than 1.
var ErrEmptyEnsemble = errors.New("bag: empty ensemble")

// ErrEmptyDataset is the same sentinel tree.Build returns, surfaced here so
// callers need not import tree just to compare errors.
var ErrEmptyDataset = tree.ErrEmptyDataset

type config struct {
	ensembleSize      int
	seed              uint64
	numWorkers        int
	parallelThreshold int
}

// Option configures a Fit call.
type Option func(*config)

// EnsembleSize sets the number of bootstrap trees. Default 10.
func EnsembleSize(n int) Option {
	return func(c *config) { c.ensembleSize = n }
}

// Seed sets the PRNG seed used to draw bootstrap row indices. Default 0.
func Seed(s uint64) Option {
	return func(c *config) { c.seed = s }
}

// NumWorkers sets how many goroutines fit trees concurrently. Default 1.
func NumWorkers(n int) Option {
	return func(c *config) { c.numWorkers = n }
}

// ParallelThreshold overrides each tree's own sequential-vs-parallel
// recursion cutoff (tree.ParallelThreshold by default); mainly useful for
// tests.
func ParallelThreshold(n int) Option {
	return func(c *config) { c.parallelThreshold = n }
}

// Ensemble is a fitted bagged forest: one tree per bootstrap sample, sharing
// the training Metadata.
type Ensemble struct {
	Meta  tree.Metadata
	Trees []*tree.Node

	// Bootstraps records, per tree, the training row indices drawn for its
	// bootstrap sample (including repeats). Exposed for reproducibility
	// testing, not required for prediction.
	Bootstraps [][]int

	// BuildDurations records each tree's build wall time, indexed the same
	// as Trees; advisory, consumed only by the CLI report.
	BuildDurations []time.Duration
}

// Fit draws EnsembleSize bootstrap samples from train (seeded by Seed,
// consumed sequentially so the draws are fixed before any tree-building
// goroutine starts), fits one unpruned tree per sample, and returns the
// resulting Ensemble.
func Fit(meta tree.Metadata, train *tree.IntMatrix, opts ...Option) (*Ensemble, error) {
	cfg := config{ensembleSize: 10, numWorkers: 1}
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.ensembleSize < 1 {
		return nil, ErrEmptyEnsemble
	}
	if train.Len() == 0 {
		return nil, tree.ErrEmptyDataset
	}

	n := train.Len()
	rng := rand.New(rand.NewSource(int64(cfg.seed)))

	bootstraps := make([][]int, cfg.ensembleSize)
	for i := range bootstraps {
		idx := make([]int, n)
		for j := range idx {
			idx[j] = rng.Intn(n)
		}
		bootstraps[i] = idx
	}

	var treeOpts []tree.BuildOption
	if cfg.parallelThreshold > 0 {
		treeOpts = append(treeOpts, tree.WithParallelThreshold(cfg.parallelThreshold))
	}

	nWorkers := cfg.numWorkers
	if nWorkers < 1 {
		nWorkers = 1
	}

	trees := make([]*tree.Node, cfg.ensembleSize)
	durations := make([]time.Duration, cfg.ensembleSize)
	jobs := make(chan int)
	errs := make(chan error, cfg.ensembleSize)

	var wg sync.WaitGroup
	for w := 0; w < nWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				start := time.Now()
				bm := bootstrapMatrix(meta, train, bootstraps[i])
				root, err := tree.Build(meta, tree.AllRows(bm), treeOpts...)
				durations[i] = time.Since(start)
				if err != nil {
					errs <- err
					continue
				}
				trees[i] = root
			}
		}()
	}

	go func() {
		for i := 0; i < cfg.ensembleSize; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	wg.Wait()
	close(errs)
	if err, ok := <-errs; ok {
		return nil, err
	}

	return &Ensemble{Meta: meta, Trees: trees, Bootstraps: bootstraps, BuildDurations: durations}, nil
}

// bootstrapMatrix materialises a bootstrap IntMatrix by copying the row
// references at idx out of train; the underlying []int rows themselves are
// never copied since they are immutable, only shared by index the same way
// the training matrix shares a row across any number of RowViews.
func bootstrapMatrix(meta tree.Metadata, train *tree.IntMatrix, idx []int) *tree.IntMatrix {
	rows := make([][]int, len(idx))
	for i, id := range idx {
		rows[i] = train.Row(id)
	}
	return tree.NewIntMatrix(meta, rows)
}

// Predict classifies row against every tree in the ensemble, reduces each
// tree's leaf histogram to its argmax label via tree.PredictLabel, then
// returns the plurality vote across those labels, ties broken
// lexicographically (the same reduction tree.PredictLabel applies to a
// single leaf histogram, reused here over the vote tally).
func (e *Ensemble) Predict(row []string) string {
	votes := make(tree.LeafPrediction)
	for _, root := range e.Trees {
		pred := tree.Classify(row, root, e.Meta)
		votes[tree.PredictLabel(pred)]++
	}
	return tree.PredictLabel(votes)
}
