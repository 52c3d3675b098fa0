package oner

// AttributeError summarizes how well the majority-vote rule of a single
// predictor fits the training data.
type AttributeError struct {
	Index int
	Name  string

	// ValueErrors is the error rate of each domain value, in domain order.
	// Values without training instances have an error rate of 0.
	ValueErrors []float64

	// Misclassified is the number of training instances the attribute's
	// rule gets wrong.
	Misclassified int

	// TotalError is Misclassified divided by the number of training
	// instances, or 0 if there were none.
	TotalError float64
}

// EstimateErrors computes per-value and per-attribute error rates.
//
// The instanceCount should be the number of instances that were scanned to
// build the tally, not the per-attribute totals.
func EstimateErrors(
	schema Schema,
	tally *Tally,
	majorities Majorities,
	instanceCount int,
) []AttributeError {
	schema.mustHaveClass()
	if len(majorities) != len(tally.Attributes) {
		panic("tally and majorities must have same length")
	}

	res := make([]AttributeError, len(tally.Attributes))
	for i, attr := range tally.Attributes {
		attrErr := AttributeError{
			Index:       i,
			Name:        attr.Name,
			ValueErrors: make([]float64, len(attr.Values)),
		}
		for j, v := range attr.Values {
			wrong := v.Total - majorities[i][j].Count
			attrErr.Misclassified += wrong
			if v.Total > 0 {
				attrErr.ValueErrors[j] = float64(wrong) / float64(v.Total)
			}
		}
		if instanceCount > 0 {
			attrErr.TotalError = float64(attrErr.Misclassified) / float64(instanceCount)
		}
		res[i] = attrErr
	}
	return res
}
