package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/wlattner/cart/tree"
)

// printTree renders node in the indented "question / --> True: / --> False:"
// form the induction engine's C++ ancestor used, optionally colorizing the
// question and branch labels.
func printTree(w io.Writer, node *tree.Node, meta tree.Metadata, colorize bool, indent string) {
	if node.Leaf {
		fmt.Fprintf(w, "%sPredict: %s\n", indent, formatPrediction(node.Prediction))
		return
	}

	col := meta.Columns[node.Question.Column]
	op := "=="
	if col.Kind == tree.Ordinal {
		op = ">="
	}
	question := fmt.Sprintf("%s %s %s?", col.Name, op, node.Question.Value)
	if colorize {
		question = color.New(color.FgCyan, color.Bold).Sprint(question)
	}
	fmt.Fprintf(w, "%s%s\n", indent, question)

	trueLabel, falseLabel := "--> True:", "--> False:"
	if colorize {
		trueLabel = color.New(color.FgGreen).Sprint(trueLabel)
		falseLabel = color.New(color.FgRed).Sprint(falseLabel)
	}

	fmt.Fprintf(w, "%s%s\n", indent, trueLabel)
	printTree(w, node.TrueChild, meta, colorize, indent+"   ")
	fmt.Fprintf(w, "%s%s\n", indent, falseLabel)
	printTree(w, node.FalseChild, meta, colorize, indent+"   ")
}

func formatPrediction(pred tree.LeafPrediction) string {
	s := "{"
	first := true
	for _, label := range sortedKeys(pred) {
		if !first {
			s += ", "
		}
		first = false
		s += fmt.Sprintf("%s: %d", label, pred[label])
	}
	return s + "}"
}

func sortedKeys(pred tree.LeafPrediction) []string {
	keys := make([]string, 0, len(pred))
	for k := range pred {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}
