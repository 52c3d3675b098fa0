// Package arff reads categorical datasets in the Attribute-Relation File
// Format.
package arff

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/one-r/oner"
	"golang.org/x/exp/slices"
)

// MissingValue is the ARFF marker for an unknown value, which is not
// supported.
const MissingValue = "?"

// A Dataset is a parsed ARFF file.
type Dataset struct {
	Relation  string
	Schema    oner.Schema
	Instances []oner.Instance
}

// InstanceList returns a list view of the instances.
func (d *Dataset) InstanceList() oner.List[oner.Instance] {
	return oner.NewListSlice(d.Instances)
}

// ReadFile reads an ARFF file from disk.
func ReadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "read arff")
	}
	defer f.Close()
	res, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read arff %s", path)
	}
	return res, nil
}

// Read parses an ARFF document containing only nominal attributes.
//
// Every instance is checked against the schema, so the result can be passed
// directly to the oner package.
func Read(r io.Reader) (*Dataset, error) {
	res := &Dataset{}
	inData := false

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		var err error
		if inData {
			err = res.addInstance(line)
		} else {
			inData, err = res.addHeader(line)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan arff")
	}
	if !inData {
		return nil, errors.New("missing @data section")
	}
	return res, nil
}

func (d *Dataset) addHeader(line string) (bool, error) {
	keyword, rest := splitKeyword(line)
	switch keyword {
	case "@relation":
		d.Relation = unquote(rest)
	case "@attribute":
		attr, err := parseAttribute(rest)
		if err != nil {
			return false, err
		}
		d.Schema = append(d.Schema, attr)
	case "@data":
		if err := d.Schema.Validate(); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, errors.Errorf("unexpected header line: %s", line)
	}
	return false, nil
}

func (d *Dataset) addInstance(line string) error {
	if strings.HasPrefix(line, "@") {
		return errors.Errorf("unexpected declaration in data section: %s", line)
	}
	fields := splitList(line)
	if len(fields) != len(d.Schema) {
		return errors.Errorf("expected %d values but got %d", len(d.Schema), len(fields))
	}
	for i, field := range fields {
		attr := d.Schema[i]
		if field == MissingValue {
			return errors.Errorf("missing value for attribute %q", attr.Name)
		}
		if attr.IndexOf(field) == -1 {
			return errors.Errorf("value %q is not in the domain of %q", field, attr.Name)
		}
	}
	d.Instances = append(d.Instances, oner.Instance(fields))
	return nil
}

func parseAttribute(decl string) (oner.AttributeSpec, error) {
	start := strings.Index(decl, "{")
	end := strings.LastIndex(decl, "}")
	if start == -1 || end < start {
		return oner.AttributeSpec{}, errors.Errorf("attribute is not nominal: %s", decl)
	}
	name := unquote(strings.TrimSpace(decl[:start]))
	if name == "" {
		return oner.AttributeSpec{}, errors.New("attribute has no name")
	}
	domain := splitList(decl[start+1 : end])
	if slices.Contains(domain, MissingValue) {
		return oner.AttributeSpec{}, errors.Errorf("attribute %q declares %q as a value", name, MissingValue)
	}
	return oner.AttributeSpec{Name: name, Domain: domain}, nil
}

func splitKeyword(line string) (keyword, rest string) {
	idx := strings.IndexAny(line, " \t")
	if idx == -1 {
		return strings.ToLower(line), ""
	}
	return strings.ToLower(line[:idx]), strings.TrimSpace(line[idx:])
}

func splitList(list string) []string {
	if strings.TrimSpace(list) == "" {
		return []string{}
	}
	parts := strings.Split(list, ",")
	for i, p := range parts {
		parts[i] = unquote(strings.TrimSpace(p))
	}
	return parts
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
