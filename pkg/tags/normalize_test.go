package tags

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "empty input",
			input: []string{},
			want:  []string{},
		},
		{
			name:  "lowercases and trims",
			input: []string{"  Work ", "IDEAS"},
			want:  []string{"work", "ideas"},
		},
		{
			name:  "case variants collapse to one tag",
			input: []string{"Work", "work", " WORK "},
			want:  []string{"work"},
		},
		{
			name:  "blank entries dropped",
			input: []string{"", "   ", "todo"},
			want:  []string{"todo"},
		},
		{
			name:  "first occurrence order preserved",
			input: []string{"beta", "Alpha", "BETA", "gamma", "alpha"},
			want:  []string{"beta", "alpha", "gamma"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	input := []string{"  Work ", "ideas", "WORK", "Reading List"}

	once := Normalize(input)
	twice := Normalize(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Normalize not idempotent: %v != %v", once, twice)
	}
}
