package oner

import "github.com/pkg/errors"

// Counts is the outcome of classifying a set of instances.
type Counts struct {
	Correct   int
	Incorrect int

	// Skipped counts instances that received no prediction, because their
	// attribute value is unknown to the rule or was never seen in training.
	Skipped int
}

// Total is the number of instances that received a prediction.
func (c Counts) Total() int {
	return c.Correct + c.Incorrect
}

// Accuracy is the fraction of predicted instances that were correct, or 0 if
// no instance received a prediction.
func (c Counts) Accuracy() float64 {
	if c.Total() == 0 {
		return 0
	}
	return float64(c.Correct) / float64(c.Total())
}

func (c Counts) Add(other Counts) Counts {
	return Counts{
		Correct:   c.Correct + other.Correct,
		Incorrect: c.Incorrect + other.Incorrect,
		Skipped:   c.Skipped + other.Skipped,
	}
}

// Classify applies the rule to every instance and compares the prediction to
// the instance's class label.
//
// Only the field at the position of the rule's attribute in schema is
// consulted. The schema may differ from the training schema, as long as it
// declares the rule's attribute.
func Classify(rule *Rule, schema Schema, instances List[Instance]) (Counts, error) {
	schema.mustHaveClass()
	idx := schema.IndexOf(rule.Attribute)
	if idx == -1 {
		return Counts{}, errors.Errorf("classify: schema has no attribute %q", rule.Attribute)
	} else if idx == schema.ClassIndex() {
		return Counts{}, errors.Errorf("classify: attribute %q is the class attribute", rule.Attribute)
	}

	var res Counts
	for i := 0; i < instances.Len; i++ {
		inst := instances.Get(i)
		if len(inst) != len(schema) {
			res.Skipped++
			continue
		}
		pred, ok := rule.Predict(inst[idx])
		if !ok {
			res.Skipped++
		} else if pred == inst.Class() {
			res.Correct++
		} else {
			res.Incorrect++
		}
	}
	return res, nil
}
