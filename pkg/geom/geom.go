// Package geom provides the mirror-plane math used by the blendshape
// mirroring engine.
package geom

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis selects one of the three world axes.
type Axis int

// World axes. AxisX is the conventional left-right axis.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis converts a config/CLI string ("x", "Y", ...) to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	default:
		return AxisX, fmt.Errorf("invalid mirror axis %q: must be x, y or z", s)
	}
}

// String returns the lowercase axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// MirrorPlane is an axis-aligned reflection plane: the plane through
// Offset, perpendicular to Axis. Computed once per mirroring operation
// from the seam vertex; immutable afterward.
type MirrorPlane struct {
	Axis   Axis
	Offset float64
}

// ReflectPoint reflects p across the plane. Only the coordinate along
// the plane's axis changes: x' = 2*Offset - x.
func (pl MirrorPlane) ReflectPoint(p mgl64.Vec3) mgl64.Vec3 {
	p[pl.Axis] = 2*pl.Offset - p[pl.Axis]
	return p
}

// ReflectDelta reflects a displacement vector. Deltas are origin
// relative, so the axis component is negated with no offset term.
func (pl MirrorPlane) ReflectDelta(d mgl64.Vec3) mgl64.Vec3 {
	d[pl.Axis] = -d[pl.Axis]
	return d
}

// SignedDistance returns the coordinate of p along the plane's axis,
// relative to the plane. Positive and negative values identify the two
// lateral halves of a mesh.
func (pl MirrorPlane) SignedDistance(p mgl64.Vec3) float64 {
	return p[pl.Axis] - pl.Offset
}
