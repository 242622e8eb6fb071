package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/terrabotics/georef"
)

func TestParseFrame(t *testing.T) {
	cases := []struct {
		in      string
		want    georef.CoordinateType
		wantErr bool
	}{
		{"spherical", georef.Spherical, false},
		{"ECEF", georef.ECEF, false},
		{"Global", georef.Global, false},
		{"local2", georef.Local2, false},
		{"local", georef.Local2, false},
		{"enu", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := parseFrame(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("parseFrame(%q): expected error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseFrame(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseFrame(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseVec(t *testing.T) {
	got, err := parseVec(" -1510.88, 2,-4 ")
	if err != nil {
		t.Fatalf("parseVec: %v", err)
	}
	want := r3.Vec{X: -1510.88, Y: 2, Z: -4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseVec mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{"", "1,2", "1,2,3,4", "a,2,3"} {
		if _, err := parseVec(bad); err == nil {
			t.Errorf("parseVec(%q): expected error", bad)
		}
	}
}
