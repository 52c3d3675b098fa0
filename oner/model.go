package oner

// A Model holds every artifact of one training run.
type Model struct {
	Schema     Schema
	Tally      *Tally
	Majorities Majorities
	Errors     []AttributeError
	Rule       *Rule
}

// Train runs the full OneR pipeline on a training set.
//
// Each call builds its own state, so separate calls may run concurrently.
func Train(schema Schema, instances List[Instance]) *Model {
	tally := BuildTallies(schema, instances)
	majorities := ResolveMajorities(schema, tally)
	errs := EstimateErrors(schema, tally, majorities, tally.InstanceCount)
	return &Model{
		Schema:     schema,
		Tally:      tally,
		Majorities: majorities,
		Errors:     errs,
		Rule:       SelectRule(schema, errs, majorities),
	}
}

// Classify evaluates the model's rule on a test set described by schema.
func (m *Model) Classify(schema Schema, instances List[Instance]) (Counts, error) {
	return Classify(m.Rule, schema, instances)
}
