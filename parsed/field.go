package parsed

import (
	"fmt"
	"strings"
)

// FieldType identifies the content of a field in a parsed data line.
type FieldType uint8

const (
	// Epoch is a TDB Julian date.
	Epoch FieldType = iota + 1
	CartesianXCoordinate
	CartesianYCoordinate
	CartesianZCoordinate
	CartesianXVelocity
	CartesianYVelocity
	CartesianZVelocity
	SemiMajorAxis
	Eccentricity
)

var fieldNames = map[FieldType]string{
	Epoch:                "epoch",
	CartesianXCoordinate: "x",
	CartesianYCoordinate: "y",
	CartesianZCoordinate: "z",
	CartesianXVelocity:   "vx",
	CartesianYVelocity:   "vy",
	CartesianZVelocity:   "vz",
	SemiMajorAxis:        "sma",
	Eccentricity:         "ecc",
}

var fieldDescriptions = map[FieldType]string{
	Epoch:                "epoch",
	CartesianXCoordinate: "Cartesian x coordinate",
	CartesianYCoordinate: "Cartesian y coordinate",
	CartesianZCoordinate: "Cartesian z coordinate",
	CartesianXVelocity:   "Cartesian x velocity",
	CartesianYVelocity:   "Cartesian y velocity",
	CartesianZVelocity:   "Cartesian z velocity",
	SemiMajorAxis:        "semi major axis",
	Eccentricity:         "eccentricity",
}

// String returns the short name of the field, as used in column layouts.
func (f FieldType) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("field(%d)", uint8(f))
}

// Description returns a human readable description of the field.
func (f FieldType) Description() string {
	if desc, ok := fieldDescriptions[f]; ok {
		return desc
	}
	return f.String()
}

// FieldTypeFromString returns the field from its short name.
func FieldTypeFromString(name string) (FieldType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field type '%s'", name)
}

// StateLayout returns the column layout of interpolated state files:
// <jd> <x> <y> <z> <vel x> <vel y> <vel z>.
func StateLayout() []FieldType {
	return []FieldType{Epoch, CartesianXCoordinate, CartesianYCoordinate, CartesianZCoordinate,
		CartesianXVelocity, CartesianYVelocity, CartesianZVelocity}
}
