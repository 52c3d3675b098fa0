package oner

// A ValueTally counts how often one attribute value co-occurs with each class
// label.
type ValueTally struct {
	Value string

	// Total is the number of counted instances with this value. It always
	// equals the sum of Counts.
	Total int

	// Counts maps every class label to its co-occurrence count.
	Counts map[string]int
}

func (v *ValueTally) add(class string) bool {
	if _, ok := v.Counts[class]; !ok {
		return false
	}
	v.Counts[class]++
	v.Total++
	return true
}

// An AttributeTally holds the ValueTally of every value in an attribute's
// domain, in domain order.
type AttributeTally struct {
	Name   string
	Index  int
	Values []*ValueTally

	lookup map[string]int
}

// Value looks up the tally for a value label.
func (a *AttributeTally) Value(label string) (*ValueTally, bool) {
	idx, ok := a.lookup[label]
	if !ok {
		return nil, false
	}
	return a.Values[idx], true
}

// A Tally holds per-(attribute, value, class) counts for every predictor of a
// schema.
type Tally struct {
	Attributes []*AttributeTally

	// InstanceCount is the number of instances that were scanned, including
	// ones which did not match any bucket.
	InstanceCount int
}

// BuildTallies scans the instances once and counts, for every predictor i,
// the pair (instance[i], class label).
//
// Values or class labels which are not part of the schema are not counted.
func BuildTallies(schema Schema, instances List[Instance]) *Tally {
	schema.mustHaveClass()

	classes := schema.ClassAttribute().Domain
	res := &Tally{Attributes: make([]*AttributeTally, schema.NumPredictors())}
	for i := range res.Attributes {
		spec := schema[i]
		attr := &AttributeTally{
			Name:   spec.Name,
			Index:  i,
			Values: make([]*ValueTally, len(spec.Domain)),
			lookup: make(map[string]int, len(spec.Domain)),
		}
		for j, value := range spec.Domain {
			counts := make(map[string]int, len(classes))
			for _, class := range classes {
				counts[class] = 0
			}
			attr.Values[j] = &ValueTally{Value: value, Counts: counts}
			attr.lookup[value] = j
		}
		res.Attributes[i] = attr
	}

	for i := 0; i < instances.Len; i++ {
		inst := instances.Get(i)
		res.InstanceCount++
		if len(inst) != len(schema) {
			continue
		}
		class := inst.Class()
		for j, attr := range res.Attributes {
			if v, ok := attr.Value(inst[j]); ok {
				v.add(class)
			}
		}
	}

	return res
}

// Attribute returns the tally of the i-th predictor.
func (t *Tally) Attribute(i int) *AttributeTally {
	return t.Attributes[i]
}

// Consistent checks that every value's Total equals the sum of its class
// counts.
func (t *Tally) Consistent() bool {
	for _, attr := range t.Attributes {
		for _, v := range attr.Values {
			var sum int
			for _, count := range v.Counts {
				sum += count
			}
			if sum != v.Total {
				return false
			}
		}
	}
	return true
}
