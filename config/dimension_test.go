package config

import (
	"errors"
	"math"
	"testing"
)

func TestParseDimension(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"8.5in", 816},
		{"11in", 1056},
		{"1in", 96},
		{"2.54cm", 96},
		{"25.4mm", 96},
		{"72pt", 96},
		{"96px", 96},
		{"720tw", 48},
		{"1440tw", 96},
		{"100", 100},
		{"0", 0},
		{" 1 in ", 96},
		{"0.5in", 48},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDimension(tt.input)
			if err != nil {
				t.Fatalf("ParseDimension(%q): %v", tt.input, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseDimension(%q) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDimensionErrors(t *testing.T) {
	for _, input := range []string{"", "in", "abc", "12qq", "1.2.3in", "--5px"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDimension(input)
			if !errors.Is(err, ErrBadDimension) {
				t.Errorf("ParseDimension(%q): expected ErrBadDimension, got %v", input, err)
			}
		})
	}
}

func TestDimensionFieldTagsErrors(t *testing.T) {
	_, err := dimensionField("margins.top", "bogus")
	if err == nil {
		t.Fatal("expected error")
	}
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected a FieldError, got %T", err)
	}
	if fe.Field != "margins.top" {
		t.Errorf("expected field margins.top, got %s", fe.Field)
	}
	if !errors.Is(err, ErrBadDimension) {
		t.Errorf("expected the cause to unwrap to ErrBadDimension, got %v", err)
	}
}
