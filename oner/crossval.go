package oner

import (
	"runtime"

	"github.com/unixpickle/essentials"
)

// CrossValidate estimates how well OneR generalizes by k-fold
// cross-validation.
//
// Fold k tests on every instance whose index is congruent to k modulo folds,
// after training on all the other instances. The result holds the counts of
// each fold.
//
// The concurrency argument specifies the maximum number of Goroutines to use.
// If concurrency is 0, GOMAXPROCS is used.
func CrossValidate(
	schema Schema,
	instances []Instance,
	folds int,
	concurrency int,
) []Counts {
	if folds < 2 {
		panic("cross-validation needs at least two folds")
	} else if folds > len(instances) {
		panic("more folds than instances")
	}
	if concurrency == 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	concurrency = essentials.MinInt(concurrency, folds)

	res := make([]Counts, folds)
	essentials.ConcurrentMap(concurrency, folds, func(k int) {
		var trainIdxs, testIdxs []int
		for i := range instances {
			if i%folds == k {
				testIdxs = append(testIdxs, i)
			} else {
				trainIdxs = append(trainIdxs, i)
			}
		}
		model := Train(schema, NewListIndices(instances, trainIdxs))
		counts, err := model.Classify(schema, NewListIndices(instances, testIdxs))
		if err != nil {
			// The rule attribute always comes from the same schema.
			panic(err)
		}
		res[k] = counts
	})
	return res
}
