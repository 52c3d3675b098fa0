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
		fmt.Fprintln(os.Stderr, "Usage: train_rule [flags] <train.arff> <output.bin>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	log.Println("Loading dataset...")
	ds, err := arff.ReadFile(inputPath)
	essentials.Must(err)

	log.Println("Inducing rule...")
	model := oner.Train(ds.Schema, ds.InstanceList())
	best := model.Errors[model.Rule.AttributeIndex]
	log.Printf(
		"Selected %s with error %f (%d of %d instances)",
		best.Name,
		best.TotalError,
		best.Misclassified,
		model.Tally.InstanceCount,
	)

	log.Println("Saving rule...")
	essentials.Must(oner.Save(outputPath, model.Rule, oner.WriteRule))
}
