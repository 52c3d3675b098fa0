package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/one-r/arff"
	"github.com/unixpickle/one-r/oner"
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: evaluate_rule [flags] <rule.bin> <test.arff>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	rulePath, testPath := args[0], args[1]

	log.Println("Loading rule...")
	rule, err := oner.Load(rulePath, oner.ReadRule)
	essentials.Must(err)

	log.Println("Loading test data...")
	ds, err := arff.ReadFile(testPath)
	essentials.Must(err)

	counts, err := oner.Classify(rule, ds.Schema, ds.InstanceList())
	essentials.Must(err)
	fmt.Println("Correctly classified instances:", counts.Correct)
	fmt.Println("Incorrectly classified instances:", counts.Incorrect)
	fmt.Println("Total number of instances:", counts.Total())
	fmt.Println("Unclassified instances:", counts.Skipped)
	fmt.Printf("Accuracy: %.2f%%\n", counts.Accuracy()*100)
}
