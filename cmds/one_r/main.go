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
	var verbose bool
	flag.BoolVar(&verbose, "verbose", false, "print the error rate of every attribute")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: one_r [flags] <train.arff> <test.arff>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	trainPath, testPath := args[0], args[1]

	log.Println("Loading training data...")
	train, err := arff.ReadFile(trainPath)
	essentials.Must(err)

	log.Println("Inducing rule...")
	model := oner.Train(train.Schema, train.InstanceList())
	if verbose {
		for _, e := range oner.RankAttributes(model.Errors) {
			log.Printf("%s: error=%f (%d/%d)", e.Name, e.TotalError, e.Misclassified,
				model.Tally.InstanceCount)
		}
	}

	fmt.Println("The rule generated by OneR is as follows:")
	fmt.Println()
	fmt.Println(model.Rule)

	log.Println("Loading test data...")
	test, err := arff.ReadFile(testPath)
	essentials.Must(err)
	counts, err := model.Classify(test.Schema, test.InstanceList())
	essentials.Must(err)

	fmt.Println("Correctly classified instances:", counts.Correct)
	fmt.Println("Incorrectly classified instances:", counts.Incorrect)
	fmt.Println("Total number of instances:", counts.Total())
	if counts.Skipped > 0 {
		fmt.Println("Unclassified instances:", counts.Skipped)
	}
}
