package ephemeris

import (
	"fmt"
	"strings"

	"github.com/danvip10/tudat/parsed"
)

// StateFields are the fields holding each component of a CartesianState, in index order.
var StateFields = [6]parsed.FieldType{
	XPosition: parsed.CartesianXCoordinate,
	YPosition: parsed.CartesianYCoordinate,
	ZPosition: parsed.CartesianZCoordinate,
	XVelocity: parsed.CartesianXVelocity,
	YVelocity: parsed.CartesianYVelocity,
	ZVelocity: parsed.CartesianZVelocity,
}

// MissingFieldError is returned when a record has no entry for a state component.
type MissingFieldError struct {
	Field parsed.FieldType
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("no %s entry found", e.Field.Description())
}

// MissingFieldsError lists every state component missing from a record.
type MissingFieldsError struct {
	Fields []parsed.FieldType
}

func (e *MissingFieldsError) Error() string {
	descs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		descs[i] = f.Description()
	}
	return fmt.Sprintf("no %s entries found", strings.Join(descs, ", "))
}

// CartesianStateExtractor builds Cartesian states from parsed records.
// The zero value stops at the first missing field.
type CartesianStateExtractor struct {
	CollectAll bool // report every missing field in a MissingFieldsError
}

// Extract returns the Cartesian state held by the record.
// Fields are checked in the order x, y, z, vx, vy, vz. No state is returned on error.
func (c CartesianStateExtractor) Extract(rec parsed.Record) (*CartesianState, error) {
	if c.CollectAll {
		var missing []parsed.FieldType
		for _, f := range StateFields {
			if !rec.Has(f) {
				missing = append(missing, f)
			}
		}
		if len(missing) > 0 {
			return nil, &MissingFieldsError{missing}
		}
	}
	state := new(CartesianState)
	for i, f := range StateFields {
		if !rec.Has(f) {
			return nil, &MissingFieldError{f}
		}
		val, err := rec.Float(f)
		if err != nil {
			return nil, fmt.Errorf("invalid %s entry: %w", f.Description(), err)
		}
		state[i] = val
	}
	return state, nil
}
