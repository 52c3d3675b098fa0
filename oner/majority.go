package oner

// NoMajority is how an undefined majority class is displayed.
const NoMajority = "?"

// MajorityInfo is the majority class of one attribute value.
//
// If the value was never counted, Defined is false, Class is empty and Count
// is zero.
type MajorityInfo struct {
	Value   string
	Class   string
	Count   int
	Defined bool
}

func (m MajorityInfo) String() string {
	if !m.Defined {
		return NoMajority
	}
	return m.Class
}

// Majorities holds a MajorityInfo for every predictor value, indexed first by
// predictor and then by domain position.
type Majorities [][]MajorityInfo

// ResolveMajorities finds the majority class of every attribute value.
//
// Class labels are scanned in domain order and the maximum only moves on a
// strict increase, so the first label reaching the maximum count wins.
func ResolveMajorities(schema Schema, tally *Tally) Majorities {
	schema.mustHaveClass()
	classes := schema.ClassAttribute().Domain

	res := make(Majorities, len(tally.Attributes))
	for i, attr := range tally.Attributes {
		infos := make([]MajorityInfo, len(attr.Values))
		for j, v := range attr.Values {
			infos[j] = majority(v, classes)
		}
		res[i] = infos
	}
	return res
}

func majority(v *ValueTally, classes []string) MajorityInfo {
	info := MajorityInfo{Value: v.Value}
	for _, class := range classes {
		if count := v.Counts[class]; count > info.Count {
			info.Class = class
			info.Count = count
			info.Defined = true
		}
	}
	return info
}
