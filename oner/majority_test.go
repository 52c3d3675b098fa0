package oner

import "testing"

func TestResolveMajoritiesWeather(t *testing.T) {
	schema := weatherSchema()
	majorities := ResolveMajorities(schema, BuildTallies(schema, NewListSlice(weatherInstances())))
	expected := []MajorityInfo{
		{Value: "sunny", Class: "yes", Count: 2, Defined: true},
		{Value: "rainy", Class: "no", Count: 2, Defined: true},
	}
	for i, info := range majorities[0] {
		if info != expected[i] {
			t.Errorf("value %d: expected %+v but got %+v", i, expected[i], info)
		}
	}
}

func TestResolveMajoritiesTieGoesToFirstClass(t *testing.T) {
	schema := Schema{
		{Name: "x", Domain: []string{"a"}},
		{Name: "class", Domain: []string{"p", "q", "r"}},
	}
	instances := []Instance{
		{"a", "r"},
		{"a", "q"},
		{"a", "r"},
		{"a", "q"},
		{"a", "p"},
	}
	majorities := ResolveMajorities(schema, BuildTallies(schema, NewListSlice(instances)))
	info := majorities[0][0]
	mustEqual(t, "q", info.Class)
	mustEqual(t, 2, info.Count)
}

func TestResolveMajoritiesUndefined(t *testing.T) {
	schema := weatherSchema()
	instances := []Instance{{"sunny", "no"}}
	majorities := ResolveMajorities(schema, BuildTallies(schema, NewListSlice(instances)))
	rainy := majorities[0][1]
	if rainy.Defined {
		t.Fatalf("expected no majority but got %+v", rainy)
	}
	mustEqual(t, "", rainy.Class)
	mustEqual(t, 0, rainy.Count)
	mustEqual(t, NoMajority, rainy.String())
	mustEqual(t, "no", majorities[0][0].String())
}

func TestResolveMajoritiesMaxCount(t *testing.T) {
	schema, instances := tieSchema()
	tally := BuildTallies(schema, NewListSlice(instances))
	majorities := ResolveMajorities(schema, tally)
	for i, attr := range tally.Attributes {
		for j, v := range attr.Values {
			var max int
			for _, count := range v.Counts {
				if count > max {
					max = count
				}
			}
			mustEqual(t, max, majorities[i][j].Count)
		}
	}
}
