package oner

import "testing"

func weatherSchema() Schema {
	return Schema{
		{Name: "weather", Domain: []string{"sunny", "rainy"}},
		{Name: "play", Domain: []string{"yes", "no"}},
	}
}

func weatherInstances() []Instance {
	return []Instance{
		{"sunny", "yes"},
		{"sunny", "yes"},
		{"rainy", "no"},
		{"rainy", "no"},
		{"sunny", "no"},
	}
}

// tieSchema has two predictors which both misclassify one of five
// instances.
func tieSchema() (Schema, []Instance) {
	schema := Schema{
		{Name: "outlook", Domain: []string{"sunny", "rainy"}},
		{Name: "windy", Domain: []string{"calm", "gusty"}},
		{Name: "play", Domain: []string{"yes", "no"}},
	}
	instances := []Instance{
		{"sunny", "calm", "yes"},
		{"sunny", "calm", "yes"},
		{"rainy", "gusty", "no"},
		{"rainy", "gusty", "no"},
		{"sunny", "calm", "no"},
	}
	return schema, instances
}

func mustEqual[T comparable](t *testing.T, expected, actual T) {
	t.Helper()
	if expected != actual {
		t.Fatalf("expected %v but got %v", expected, actual)
	}
}
