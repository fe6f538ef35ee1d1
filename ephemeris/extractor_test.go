package ephemeris

import (
	"errors"
	"fmt"
	"testing"

	"github.com/danvip10/tudat/parsed"
)

// listRecord is an ordered Record which remembers which fields were checked.
type listRecord struct {
	fields  []parsed.FieldType
	values  []float64
	checked []parsed.FieldType
}

func (r *listRecord) Has(f parsed.FieldType) bool {
	r.checked = append(r.checked, f)
	for _, rf := range r.fields {
		if rf == f {
			return true
		}
	}
	return false
}

func (r *listRecord) Float(f parsed.FieldType) (float64, error) {
	for i, rf := range r.fields {
		if rf == f {
			return r.values[i], nil
		}
	}
	return 0, fmt.Errorf("%s: %w", f, parsed.ErrFieldAbsent)
}

func fullRecord() parsed.DataLineMap {
	m := parsed.DataLineMap{}
	for i, f := range StateFields {
		m.SetFloat(f, float64(i+1))
	}
	return m
}

func TestExtract(t *testing.T) {
	state, err := CartesianStateExtractor{}.Extract(fullRecord())
	if err != nil {
		t.Fatal(err)
	}
	if *state != (CartesianState{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("invalid state %s", state)
	}
}

func TestExtractInsertionOrder(t *testing.T) {
	rec := &listRecord{
		fields: []parsed.FieldType{parsed.CartesianZVelocity, parsed.Epoch, parsed.CartesianYVelocity, parsed.CartesianXVelocity,
			parsed.CartesianZCoordinate, parsed.CartesianYCoordinate, parsed.CartesianXCoordinate},
		values: []float64{6, 2451545, 5, 4, 3, 2, 1},
	}
	state, err := CartesianStateExtractor{}.Extract(rec)
	if err != nil {
		t.Fatal(err)
	}
	if *state != (CartesianState{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("invalid state %s", state)
	}
}

func TestExtractMissingField(t *testing.T) {
	for i, f := range StateFields {
		rec := fullRecord()
		delete(rec, f)
		state, err := CartesianStateExtractor{}.Extract(rec)
		if state != nil {
			t.Fatalf("partial state returned without %s", f)
		}
		var missing *MissingFieldError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingFieldError, got %v", err)
		}
		if missing.Field != StateFields[i] {
			t.Fatalf("reported %s instead of %s", missing.Field, f)
		}
	}
	rec := fullRecord()
	delete(rec, parsed.CartesianZVelocity)
	_, err := CartesianStateExtractor{}.Extract(rec)
	if err == nil || err.Error() != "no Cartesian z velocity entry found" {
		t.Fatalf("invalid error: %v", err)
	}
	delete(rec, parsed.CartesianXCoordinate)
	if _, err = (CartesianStateExtractor{}).Extract(rec); err == nil || err.Error() != "no Cartesian x coordinate entry found" {
		t.Fatalf("invalid error: %v", err)
	}
}

func TestExtractFailFast(t *testing.T) {
	rec := &listRecord{
		fields: []parsed.FieldType{parsed.CartesianXCoordinate, parsed.CartesianZCoordinate, parsed.CartesianXVelocity},
		values: []float64{1, 3, 4},
	}
	if _, err := (CartesianStateExtractor{}).Extract(rec); err == nil {
		t.Fatal("expected an error")
	}
	if len(rec.checked) != 2 || rec.checked[1] != parsed.CartesianYCoordinate {
		t.Fatalf("fields checked after the first missing one: %v", rec.checked)
	}
}

func TestExtractCollectAll(t *testing.T) {
	rec := fullRecord()
	delete(rec, parsed.CartesianYCoordinate)
	delete(rec, parsed.CartesianZVelocity)
	state, err := CartesianStateExtractor{CollectAll: true}.Extract(rec)
	if state != nil {
		t.Fatal("partial state returned")
	}
	var missing *MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldsError, got %v", err)
	}
	if len(missing.Fields) != 2 || missing.Fields[0] != parsed.CartesianYCoordinate || missing.Fields[1] != parsed.CartesianZVelocity {
		t.Fatalf("invalid missing fields %v", missing.Fields)
	}
	if err.Error() != "no Cartesian y coordinate, Cartesian z velocity entries found" {
		t.Fatalf("invalid error: %s", err)
	}
	if state, err := (CartesianStateExtractor{CollectAll: true}).Extract(fullRecord()); err != nil || *state != (CartesianState{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("state=%v err=%v", state, err)
	}
}

func TestExtractInvalidValue(t *testing.T) {
	rec := fullRecord()
	rec.Set(parsed.CartesianYVelocity, "fast")
	state, err := CartesianStateExtractor{}.Extract(rec)
	if state != nil || err == nil {
		t.Fatal("non numeric value should fail")
	}
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		t.Fatal("present field reported as missing")
	}
}

func TestExtractOwnership(t *testing.T) {
	rec := fullRecord()
	s1, _ := CartesianStateExtractor{}.Extract(rec)
	s2, _ := CartesianStateExtractor{}.Extract(rec)
	s1[XPosition] = 42
	if s2[XPosition] != 1 {
		t.Fatal("extracted states share memory")
	}
	if x, _ := rec.Float(parsed.CartesianXCoordinate); x != 1 {
		t.Fatal("record was modified")
	}
}
