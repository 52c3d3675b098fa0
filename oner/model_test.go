package oner

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestTrainIdempotent(t *testing.T) {
	schema, instances := randomDataset(rand.New(rand.NewSource(1337)), 300)
	m1 := Train(schema, NewListSlice(instances))
	m2 := Train(schema, NewListSlice(instances))
	if !reflect.DeepEqual(m1.Rule, m2.Rule) {
		t.Fatalf("rules differ: %v != %v", m1.Rule, m2.Rule)
	}
	if !reflect.DeepEqual(m1.Errors, m2.Errors) {
		t.Fatal("attribute errors differ")
	}
	c1, err := m1.Classify(schema, NewListSlice(instances))
	if err != nil {
		t.Fatal(err)
	}
	c2, err := m2.Classify(schema, NewListSlice(instances))
	if err != nil {
		t.Fatal(err)
	}
	mustEqual(t, c1, c2)
}

func TestTrainMisclassifiedMatchesClassify(t *testing.T) {
	schema, instances := randomDataset(rand.New(rand.NewSource(7)), 200)
	model := Train(schema, NewListSlice(instances))
	counts, err := model.Classify(schema, NewListSlice(instances))
	if err != nil {
		t.Fatal(err)
	}
	best := model.Errors[model.Rule.AttributeIndex]
	mustEqual(t, best.Misclassified, counts.Incorrect)
	mustEqual(t, len(instances)-best.Misclassified, counts.Correct)
}

func TestTrainMisclassifiedOrderInvariant(t *testing.T) {
	schema, instances := randomDataset(rand.New(rand.NewSource(99)), 200)
	perm := []int{2, 0, 1, 3}
	permSchema := make(Schema, len(schema))
	for i, j := range perm {
		permSchema[i] = schema[j]
	}
	permInstances := make([]Instance, len(instances))
	for k, inst := range instances {
		permInst := make(Instance, len(inst))
		for i, j := range perm {
			permInst[i] = inst[j]
		}
		permInstances[k] = permInst
	}

	sumMisclassified := func(errs []AttributeError) int {
		var sum int
		for _, e := range errs {
			sum += e.Misclassified
		}
		return sum
	}
	m1 := Train(schema, NewListSlice(instances))
	m2 := Train(permSchema, NewListSlice(permInstances))
	mustEqual(t, sumMisclassified(m1.Errors), sumMisclassified(m2.Errors))
}

func BenchmarkTrain(b *testing.B) {
	schema, instances := randomDataset(rand.New(rand.NewSource(1337)), 10000)
	list := NewListSlice(instances)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Train(schema, list)
	}
}

func randomDataset(gen *rand.Rand, n int) (Schema, []Instance) {
	schema := Schema{
		{Name: "outlook", Domain: []string{"sunny", "overcast", "rainy"}},
		{Name: "temperature", Domain: []string{"hot", "mild", "cool"}},
		{Name: "humidity", Domain: []string{"high", "normal"}},
		{Name: "play", Domain: []string{"yes", "no"}},
	}
	instances := make([]Instance, n)
	for i := range instances {
		inst := make(Instance, len(schema))
		for j, attr := range schema[:len(schema)-1] {
			inst[j] = attr.Domain[gen.Intn(len(attr.Domain))]
		}
		// Make the class depend mostly on humidity.
		if (inst[2] == "normal") != (gen.Intn(5) == 0) {
			inst[3] = "yes"
		} else {
			inst[3] = "no"
		}
		instances[i] = inst
	}
	return schema, instances
}
