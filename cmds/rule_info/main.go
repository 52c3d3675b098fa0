package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/one-r/oner"
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: rule_info [flags] <input.bin>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	log.Println("Loading rule...")
	rule, err := oner.Load(inputPath, oner.ReadRule)
	essentials.Must(err)

	var undefined int
	for _, e := range rule.Entries {
		if !e.Defined {
			undefined++
		}
	}
	fmt.Println(rule)
	fmt.Println("Number of values:", len(rule.Entries))
	fmt.Println("Values without training data:", undefined)
}
