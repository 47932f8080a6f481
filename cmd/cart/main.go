// Command cart fits a bagged ensemble of classification trees over an ARFF
// train/test pair and reports a confusion matrix, overall test accuracy,
// the total fit time and the average per-tree build time.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/davecheney/profile"
	"github.com/google/uuid"

	flag "github.com/docker/docker/pkg/mflag"

	"github.com/wlattner/cart/arff"
	"github.com/wlattner/cart/bag"
)

var (
	trainFile  = flag.String([]string{"-train"}, "", "training ARFF file")
	testFile   = flag.String([]string{"-test"}, "", "test ARFF file")
	classLabel = flag.String([]string{"c", "-class"}, "", "name of the class attribute; if empty, the last declared attribute is used")

	nTree    = flag.Int([]string{"n", "-trees"}, 10, "number of trees in the ensemble")
	seed     = flag.Int([]string{"-seed"}, 42, "seed for the bootstrap PRNG")
	nWorkers = flag.Int([]string{"-workers"}, 1, "number of workers fitting trees concurrently")

	useColor   = flag.Bool([]string{"-color"}, false, "colorize the tree/report output")
	explore    = flag.Bool([]string{"-explore"}, false, "after fitting, start an interactive tree explorer instead of printing a report")
	printFirst = flag.Bool([]string{"-print-tree"}, false, "print the first fitted tree before the report")

	configPath = flag.String([]string{"-config"}, "", "optional YAML file providing these settings; flags override it, it overrides these defaults")
	runProfile = flag.Bool([]string{"-profile"}, false, "cpu profile")
)

func main() {
	flag.Parse()

	if *runProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	cfg := runConfig{
		Train:   *trainFile,
		Test:    *testFile,
		Class:   *classLabel,
		Trees:   *nTree,
		Seed:    *seed,
		Workers: *nWorkers,
		Color:   *useColor,
	}

	if *configPath != "" {
		fileCfg, err := loadRunConfig(*configPath)
		if err != nil {
			fatal("error reading config", *configPath, err.Error())
		}
		applyConfigDefaults(&cfg, fileCfg)
	}

	if cfg.Train == "" || cfg.Test == "" {
		fmt.Fprintf(os.Stderr, "Usage of cart:\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if cfg.Workers > 1 {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}

	ds, err := arff.Read(cfg.Train, cfg.Test, cfg.Class)
	if err != nil {
		fatal("error reading data", err.Error())
	}

	start := time.Now()
	ens, err := bag.Fit(ds.Meta, ds.Train,
		bag.EnsembleSize(cfg.Trees),
		bag.Seed(uint64(cfg.Seed)),
		bag.NumWorkers(cfg.Workers),
	)
	if err != nil {
		fatal("error fitting ensemble", err.Error())
	}
	fitDuration := time.Since(start)

	if *printFirst && len(ens.Trees) > 0 {
		printTree(os.Stdout, ens.Trees[0], ds.Meta, cfg.Color, "")
		fmt.Fprintln(os.Stdout)
	}

	if *explore {
		if len(ens.Trees) == 0 {
			fatal("nothing to explore: the ensemble has no trees")
		}
		if err := runExplorer(ds.Meta, ens.Trees[0]); err != nil {
			fatal("explorer error", err.Error())
		}
		return
	}

	classes, confMat, accuracy := evaluate(ens, ds.Meta, ds.Test)
	report := fitReport{
		RunID:           uuid.New().String(),
		EnsembleSize:    len(ens.Trees),
		NumTrain:        ds.Train.Len(),
		FitDuration:     fitDuration,
		AvgTreeDuration: averageDuration(ens.BuildDurations),
		Classes:         classes,
		ConfusionMatrix: confMat,
		Accuracy:        accuracy,
	}
	report.Print(os.Stdout, cfg.Color)
}

// applyConfigDefaults fills each field of cfg that still holds its flag's
// built-in default ("" for strings, 10 trees, seed 42, 1 worker, color off)
// from fileCfg, skipping zero values in fileCfg. A flag set explicitly to
// its default value is indistinguishable from an unset one, so the file
// wins in that case.
func applyConfigDefaults(cfg *runConfig, fileCfg runConfig) {
	if cfg.Train == "" {
		cfg.Train = fileCfg.Train
	}
	if cfg.Test == "" {
		cfg.Test = fileCfg.Test
	}
	if cfg.Class == "" {
		cfg.Class = fileCfg.Class
	}
	if cfg.Trees == 10 && fileCfg.Trees != 0 {
		cfg.Trees = fileCfg.Trees
	}
	if cfg.Seed == 42 && fileCfg.Seed != 0 {
		cfg.Seed = fileCfg.Seed
	}
	if cfg.Workers == 1 && fileCfg.Workers != 0 {
		cfg.Workers = fileCfg.Workers
	}
	if !cfg.Color && fileCfg.Color {
		cfg.Color = fileCfg.Color
	}
}

func averageDuration(durations []time.Duration) time.Duration {
	if len(durations) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range durations {
		total += d
	}
	return total / time.Duration(len(durations))
}

func fatal(a ...interface{}) {
	fmt.Fprintln(os.Stderr, a...)
	os.Exit(1)
}
