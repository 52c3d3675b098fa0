package oner

import "testing"

func TestRankAttributes(t *testing.T) {
	errs := []AttributeError{
		{Index: 0, Name: "a", TotalError: 0.5},
		{Index: 1, Name: "b", TotalError: 0.2},
		{Index: 2, Name: "c", TotalError: 0.4},
		{Index: 3, Name: "d", TotalError: 0.2},
	}
	ranked := RankAttributes(errs)
	var names string
	for _, e := range ranked {
		names += e.Name
	}
	mustEqual(t, "bdca", names)
	mustEqual(t, "a", errs[0].Name)
}

func TestRankAttributesAgreesWithSelectRule(t *testing.T) {
	schema, instances := tieSchema()
	model := Train(schema, NewListSlice(instances))
	mustEqual(t, model.Rule.Attribute, RankAttributes(model.Errors)[0].Name)
}
