package oner

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// An AttributeSpec is a named categorical attribute with an ordered domain of
// distinct value labels.
type AttributeSpec struct {
	Name   string
	Domain []string
}

// IndexOf returns the position of value in the domain, or -1.
func (a AttributeSpec) IndexOf(value string) int {
	return slices.Index(a.Domain, value)
}

// A Schema is an ordered list of attributes. The last attribute is the class
// attribute, and its domain is the set of class labels.
type Schema []AttributeSpec

// An Instance holds one value label per attribute of a Schema, with the class
// label in the last position.
type Instance []string

// Class returns the class label of the instance.
func (i Instance) Class() string {
	return i[len(i)-1]
}

func (s Schema) ClassIndex() int {
	return len(s) - 1
}

func (s Schema) ClassAttribute() AttributeSpec {
	return s[s.ClassIndex()]
}

// NumPredictors returns the number of non-class attributes.
func (s Schema) NumPredictors() int {
	return len(s) - 1
}

// IndexOf returns the position of the attribute with the given name, or -1.
func (s Schema) IndexOf(name string) int {
	for i, a := range s {
		if a.Name == name {
			return i
		}
	}
	return -1
}

// Validate checks that the schema has at least one predictor and a class
// attribute, that attribute names are unique, and that every domain is
// non-empty with unique entries.
func (s Schema) Validate() error {
	if len(s) < 2 {
		return errors.Errorf("schema has %d attributes but needs at least 2", len(s))
	}
	names := map[string]bool{}
	for _, a := range s {
		if a.Name == "" {
			return errors.New("attribute name is empty")
		}
		if names[a.Name] {
			return errors.Errorf("duplicate attribute %q", a.Name)
		}
		names[a.Name] = true
		if len(a.Domain) == 0 {
			return errors.Errorf("attribute %q has an empty domain", a.Name)
		}
		for i, v := range a.Domain {
			if slices.Index(a.Domain[:i], v) != -1 {
				return errors.Errorf("attribute %q repeats value %q", a.Name, v)
			}
		}
	}
	return nil
}

func (s Schema) mustHaveClass() {
	if len(s) < 2 {
		panic("schema must have at least one predictor and a class attribute")
	}
}
