package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/one-r/arff"
	"github.com/unixpickle/one-r/oner"
)

func main() {
	var folds int
	var concurrency int
	var seed int64
	flag.IntVar(&folds, "folds", 10, "number of cross-validation folds")
	flag.IntVar(&concurrency, "concurrency", 0, "maximum number of folds to run at once (0 for GOMAXPROCS)")
	flag.Int64Var(&seed, "seed", 0, "if non-zero, shuffle instances with this seed before splitting")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: cross_validate [flags] <input.arff>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	log.Println("Loading dataset...")
	ds, err := arff.ReadFile(inputPath)
	essentials.Must(err)
	if folds < 2 || folds > len(ds.Instances) {
		essentials.Die(fmt.Sprintf("cannot split %d instances into %d folds", len(ds.Instances), folds))
	}

	instances := ds.Instances
	if seed != 0 {
		gen := rand.New(rand.NewSource(seed))
		gen.Shuffle(len(instances), func(i, j int) {
			instances[i], instances[j] = instances[j], instances[i]
		})
	}

	log.Printf("Running %d folds...", folds)
	var total oner.Counts
	for i, c := range oner.CrossValidate(ds.Schema, instances, folds, concurrency) {
		log.Printf("fold %d: correct=%d incorrect=%d skipped=%d", i, c.Correct, c.Incorrect, c.Skipped)
		total = total.Add(c)
	}

	fmt.Println("Correctly classified instances:", total.Correct)
	fmt.Println("Incorrectly classified instances:", total.Incorrect)
	fmt.Println("Unclassified instances:", total.Skipped)
	fmt.Printf("Accuracy: %.2f%%\n", total.Accuracy()*100)
}
