package config

import (
	"fmt"
	"strconv"
	"strings"
)

// dimensionUnits maps a unit suffix to its length in CSS pixels.
// 1in = 96px = 72pt = 1440tw = 2.54cm = 25.4mm.
var dimensionUnits = map[string]float64{
	"in": 96,
	"cm": 96 / 2.54,
	"mm": 96 / 25.4,
	"pt": 96.0 / 72,
	"tw": 1.0 / 15,
	"px": 1,
}

// ParseDimension converts a dimension string to CSS pixels. Accepted
// suffixes are in, cm, mm, pt, px, and tw (twips); a bare number is
// pixels. Whitespace around the number and suffix is ignored.
func ParseDimension(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrBadDimension)
	}
	scale := 1.0
	num := s
	for unit, perUnit := range dimensionUnits {
		if strings.HasSuffix(s, unit) {
			scale = perUnit
			num = strings.TrimSpace(strings.TrimSuffix(s, unit))
			break
		}
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadDimension, s)
	}
	return v * scale, nil
}

// dimensionField parses a dimension and tags failures with the setup
// field they came from.
func dimensionField(field, value string) (float64, error) {
	v, err := ParseDimension(value)
	if err != nil {
		return 0, &FieldError{Field: field, Err: err}
	}
	return v, nil
}
