package parsed

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// ErrFieldAbsent is returned when a record does not hold the requested field.
var ErrFieldAbsent = errors.New("field absent")

// Record is a read-only, field keyed view of one parsed data line.
type Record interface {
	// Has returns whether the record holds an entry for the provided field.
	Has(FieldType) bool
	// Float returns the numeric value of the provided field.
	// The error wraps ErrFieldAbsent if the field is missing.
	Float(FieldType) (float64, error)
}

// DataLineMap is a Record backed by the raw text of each field.
type DataLineMap map[FieldType]string

// Has implements the Record interface.
func (m DataLineMap) Has(f FieldType) bool {
	_, ok := m[f]
	return ok
}

// Set stores the raw text of a field.
func (m DataLineMap) Set(f FieldType, raw string) {
	m[f] = strings.TrimSpace(raw)
}

// SetFloat stores a numeric field.
func (m DataLineMap) SetFloat(f FieldType, val float64) {
	m[f] = strconv.FormatFloat(val, 'g', -1, 64)
}

// Raw returns the raw text of a field.
func (m DataLineMap) Raw(f FieldType) (string, error) {
	raw, ok := m[f]
	if !ok {
		return "", fmt.Errorf("%s: %w", f.Description(), ErrFieldAbsent)
	}
	return raw, nil
}

// Float implements the Record interface.
func (m DataLineMap) Float(f FieldType) (float64, error) {
	raw, err := m.Raw(f)
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", f.Description(), err)
	}
	return val, nil
}

// Time returns a field holding a Julian date as a UTC time.
func (m DataLineMap) Time(f FieldType) (time.Time, error) {
	jd, err := m.Float(f)
	if err != nil {
		return time.Time{}, err
	}
	return julian.JDToTime(jd).UTC(), nil
}

// Fields returns the fields held by this record, in FieldType order.
func (m DataLineMap) Fields() []FieldType {
	fields := make([]FieldType, 0, len(m))
	for f := Epoch; f <= Eccentricity; f++ {
		if m.Has(f) {
			fields = append(fields, f)
		}
	}
	return fields
}
