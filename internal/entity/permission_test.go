package entity

import (
	"testing"
)

func TestPermissionOrdering(t *testing.T) {
	ordered := []Permission{PermissionNone, PermissionRead, PermissionWrite, PermissionAdmin, PermissionOwner}

	for i, lower := range ordered {
		for j, higher := range ordered {
			got := higher.AtLeast(lower)
			want := j >= i
			if got != want {
				t.Errorf("%s.AtLeast(%s) = %v, want %v", higher, lower, got, want)
			}
		}
	}
}

func TestParsePermission(t *testing.T) {
	tests := []struct {
		input   string
		want    Permission
		wantErr bool
	}{
		{input: "read", want: PermissionRead},
		{input: "write", want: PermissionWrite},
		{input: "admin", want: PermissionAdmin},
		{input: "owner", wantErr: true},
		{input: "none", wantErr: true},
		{input: "", wantErr: true},
		{input: "READ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePermission(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParsePermission(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePermission(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePermission(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPermissionStringRoundTrip(t *testing.T) {
	for _, p := range []Permission{PermissionRead, PermissionWrite, PermissionAdmin} {
		parsed, err := ParsePermission(p.String())
		if err != nil {
			t.Fatalf("ParsePermission(%q) unexpected error: %v", p.String(), err)
		}
		if parsed != p {
			t.Errorf("round trip for %v yielded %v", p, parsed)
		}
	}
}
