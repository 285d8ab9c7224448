package mesh

import (
	"errors"
	"fmt"
	"strings"
)

// Side-tag errors.
var (
	ErrMissingSideTag = errors.New("mesh name has no recognized left/right marker")
)

// Side classifies a blendshape mesh as a left-side or right-side sculpt.
// It is resolved once from the mesh name at load time rather than
// re-parsed from the name string ad hoc.
type Side int

// Blendshape sides.
const (
	SideLeft Side = iota
	SideRight
)

// String returns "left" or "right".
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Markers holds the naming-convention substrings that tag a mesh name
// with its side.
type Markers struct {
	Left  string
	Right string
}

// DefaultMarkers returns the conventional sculpting-pipeline markers.
func DefaultMarkers() Markers {
	return Markers{Left: "_l_", Right: "_r_"}
}

// ResolveSide derives the side tag from a mesh name. The left marker is
// checked first; a name carrying neither marker fails with
// ErrMissingSideTag.
func ResolveSide(name string, m Markers) (Side, error) {
	switch {
	case strings.Contains(name, m.Left):
		return SideLeft, nil
	case strings.Contains(name, m.Right):
		return SideRight, nil
	default:
		return SideLeft, fmt.Errorf("%w: %q", ErrMissingSideTag, name)
	}
}

// SwapSide returns the name with its side marker replaced by the
// opposite marker, naming the mirrored counterpart of a blendshape
// ("head_l_smile" -> "head_r_smile").
func SwapSide(name string, m Markers) (string, error) {
	switch {
	case strings.Contains(name, m.Left):
		return strings.Replace(name, m.Left, m.Right, 1), nil
	case strings.Contains(name, m.Right):
		return strings.Replace(name, m.Right, m.Left, 1), nil
	default:
		return name, fmt.Errorf("%w: %q", ErrMissingSideTag, name)
	}
}
