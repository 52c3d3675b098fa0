package oner

import (
	"fmt"
	"strings"
)

// A RuleEntry maps one value of the rule's attribute to a predicted class.
//
// Entries for values that never appeared in training are not Defined.
type RuleEntry struct {
	Value   string
	Class   string
	Defined bool
}

// A Rule predicts the class of an instance from a single attribute.
type Rule struct {
	// AttributeIndex is the position of the attribute in the training
	// schema.
	AttributeIndex int
	Attribute      string

	// Entries cover the attribute's domain, in domain order.
	Entries []RuleEntry
}

// SelectRule picks the predictor with the lowest total error and turns its
// majority classes into a Rule.
//
// Attributes are scanned in declaration order and only a strictly lower error
// replaces the current best, so ties go to the earliest attribute.
func SelectRule(schema Schema, errs []AttributeError, majorities Majorities) *Rule {
	schema.mustHaveClass()
	if len(errs) == 0 {
		panic("cannot select a rule without attributes")
	}

	best := errs[0]
	for _, e := range errs[1:] {
		if e.TotalError < best.TotalError {
			best = e
		}
	}

	infos := majorities[best.Index]
	res := &Rule{
		AttributeIndex: best.Index,
		Attribute:      schema[best.Index].Name,
		Entries:        make([]RuleEntry, len(infos)),
	}
	for i, info := range infos {
		res.Entries[i] = RuleEntry{
			Value:   info.Value,
			Class:   info.Class,
			Defined: info.Defined,
		}
	}
	return res
}

// Predict returns the predicted class for a value of the rule's attribute.
//
// The result is not ok if the value is not in the rule or never appeared in
// training.
func (r *Rule) Predict(value string) (class string, ok bool) {
	for _, e := range r.Entries {
		if e.Value == value {
			return e.Class, e.Defined
		}
	}
	return "", false
}

func (r *Rule) String() string {
	lines := make([]string, 0, len(r.Entries)+1)
	lines = append(lines, r.Attribute+":")
	for _, e := range r.Entries {
		class := e.Class
		if !e.Defined {
			class = NoMajority
		}
		lines = append(lines, fmt.Sprintf("%s ==> %s", e.Value, class))
	}
	if len(lines) == 1 {
		return lines[0]
	}
	return lines[0] + "\n" + indentText(strings.Join(lines[1:], "\n"))
}

func indentText(text string) string {
	lines := strings.Split(text, "\n")
	for i, x := range lines {
		lines[i] = "    " + x
	}
	return strings.Join(lines, "\n")
}
