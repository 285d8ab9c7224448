package mesh

import (
	"errors"
	"testing"
)

func TestResolveSide(t *testing.T) {
	m := DefaultMarkers()

	tests := []struct {
		name    string
		want    Side
		wantErr bool
	}{
		{"head_l_smile", SideLeft, false},
		{"head_r_smile", SideRight, false},
		{"_l_", SideLeft, false},
		{"brow_L_up", SideLeft, true}, // markers are case sensitive
		{"head_smile", SideLeft, true},
		{"", SideLeft, true},
	}

	for _, tc := range tests {
		got, err := ResolveSide(tc.name, m)
		if tc.wantErr {
			if !errors.Is(err, ErrMissingSideTag) {
				t.Errorf("ResolveSide(%q): expected ErrMissingSideTag, got %v", tc.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ResolveSide(%q): unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ResolveSide(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestResolveSideCustomMarkers(t *testing.T) {
	m := Markers{Left: ".L.", Right: ".R."}

	got, err := ResolveSide("cheek.R.puff", m)
	if err != nil {
		t.Fatalf("ResolveSide failed: %v", err)
	}
	if got != SideRight {
		t.Errorf("ResolveSide = %v, want right", got)
	}
}

func TestSwapSide(t *testing.T) {
	m := DefaultMarkers()

	got, err := SwapSide("head_l_smile", m)
	if err != nil {
		t.Fatalf("SwapSide failed: %v", err)
	}
	if got != "head_r_smile" {
		t.Errorf("SwapSide = %q, want %q", got, "head_r_smile")
	}

	got, err = SwapSide("head_r_smile", m)
	if err != nil {
		t.Fatalf("SwapSide failed: %v", err)
	}
	if got != "head_l_smile" {
		t.Errorf("SwapSide = %q, want %q", got, "head_l_smile")
	}

	if _, err = SwapSide("head_smile", m); !errors.Is(err, ErrMissingSideTag) {
		t.Errorf("expected ErrMissingSideTag, got %v", err)
	}
}

func TestSideStringAndOpposite(t *testing.T) {
	if SideLeft.String() != "left" || SideRight.String() != "right" {
		t.Errorf("unexpected side names: %v %v", SideLeft, SideRight)
	}
	if SideLeft.Opposite() != SideRight || SideRight.Opposite() != SideLeft {
		t.Error("Opposite() is not an involution over {left, right}")
	}
}
