package oner

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

const maxStringLength = 1 << 20

// WriteRule serializes r in a little-endian binary format.
func WriteRule(w io.Writer, r *Rule) error {
	if err := writeRule(w, r); err != nil {
		return errors.Wrap(err, "write rule")
	}
	return nil
}

func writeRule(w io.Writer, r *Rule) error {
	header := []uint32{uint32(r.AttributeIndex), uint32(len(r.Entries))}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}
	if err := writeString(w, r.Attribute); err != nil {
		return err
	}
	for _, e := range r.Entries {
		var defined uint8
		if e.Defined {
			defined = 1
		}
		if err := writeString(w, e.Value); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, defined); err != nil {
			return err
		}
		if err := writeString(w, e.Class); err != nil {
			return err
		}
	}
	return nil
}

// ReadRule reads the output written by WriteRule.
func ReadRule(r io.Reader) (*Rule, error) {
	res, err := readRule(r)
	if err != nil {
		return nil, errors.Wrap(err, "read rule")
	}
	return res, nil
}

func readRule(r io.Reader) (*Rule, error) {
	var header [2]uint32
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	attr, err := readString(r)
	if err != nil {
		return nil, err
	}
	res := &Rule{
		AttributeIndex: int(header[0]),
		Attribute:      attr,
		Entries:        []RuleEntry{},
	}
	for i := 0; i < int(header[1]); i++ {
		var e RuleEntry
		var defined uint8
		if e.Value, err = readString(r); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &defined); err != nil {
			return nil, err
		}
		if e.Class, err = readString(r); err != nil {
			return nil, err
		}
		e.Defined = defined != 0
		res.Entries = append(res.Entries, e)
	}
	return res, nil
}

func writeString(w io.Writer, s string) error {
	if len(s) > maxStringLength {
		return errors.Errorf("string of length %d is too long", len(s))
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return "", err
	}
	if size > maxStringLength {
		return "", errors.Errorf("string of length %d is too long", size)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// Save creates a file at path and writes obj to it with the given writer.
func Save[T any](path string, obj T, writer func(io.Writer, T) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save")
	}
	if err := writer(f, obj); err != nil {
		f.Close()
		return errors.Wrap(err, "save")
	}
	return errors.Wrap(f.Close(), "save")
}

// Load opens the file at path and decodes it with the given reader.
func Load[T any](path string, reader func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, errors.Wrap(err, "load")
	}
	defer f.Close()
	res, err := reader(f)
	if err != nil {
		return zero, errors.Wrap(err, "load")
	}
	return res, nil
}
