package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/wlattner/cart/tree"
)

// runExplorer drives an interactive, readline-backed REPL that walks root
// node by node, prompting only for the feature each internal node's
// Question actually needs rather than demanding a whole row up front, and
// prints the leaf prediction reached at the end of each walk.
func runExplorer(meta tree.Metadata, root *tree.Node) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "cart> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("explore: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(os.Stdout, "Interactive tree explorer. Answer each prompted feature; Ctrl-D to quit.")

	for {
		n := root
		for !n.Leaf {
			col := meta.Columns[n.Question.Column]
			rl.SetPrompt(fmt.Sprintf("%s (%s)> ", col.Name, kindLabel(col.Kind)))

			line, err := rl.Readline()
			if err == readline.ErrInterrupt {
				break
			}
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}

			value := strings.TrimSpace(line)
			if explorerMatches(value, n.Question, meta) {
				n = n.TrueChild
			} else {
				n = n.FalseChild
			}
		}
		if n.Leaf {
			fmt.Fprintf(os.Stdout, "Prediction: %s\n\n", formatPrediction(n.Prediction))
		}
	}
}

func kindLabel(kind tree.AttributeKind) string {
	if kind == tree.Ordinal {
		return "numeric"
	}
	return "categorical"
}

// explorerMatches applies the same ordinal-threshold / categorical-equality
// semantics as tree.Classify, degrading to the false branch on a value that
// doesn't parse or isn't in the training vocabulary rather than aborting the
// walk.
func explorerMatches(value string, q tree.Question, meta tree.Metadata) bool {
	col := meta.Columns[q.Column]
	if col.Kind == tree.Ordinal {
		v, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		threshold, err := strconv.Atoi(q.Value)
		if err != nil {
			return false
		}
		return v >= threshold
	}
	return value == q.Value
}
