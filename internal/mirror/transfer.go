package mirror

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/meshtools/blendmirror/pkg/mesh"
)

// SeamPolicy controls what happens to a seam vertex's own sculpt delta.
type SeamPolicy int

const (
	// SeamCopy applies the seam vertex's sculpted position directly.
	// This is the default: a seam vertex has no opposite side to receive
	// a reflection from.
	SeamCopy SeamPolicy = iota

	// SeamReflect re-applies the seam delta with its axis component
	// mirrored, pulling a sculpt that drifted off-plane back toward the
	// plane.
	SeamReflect
)

// ParseSeamPolicy converts a config string to a SeamPolicy.
func ParseSeamPolicy(s string) (SeamPolicy, error) {
	switch s {
	case "", "copy":
		return SeamCopy, nil
	case "reflect":
		return SeamReflect, nil
	default:
		return SeamCopy, fmt.Errorf("invalid seam policy %q: must be copy or reflect", s)
	}
}

// String returns the config spelling of the policy.
func (p SeamPolicy) String() string {
	if p == SeamReflect {
		return "reflect"
	}
	return "copy"
}

// TransferOptions tunes delta transfer. The zero value is the default
// behavior: seam vertices keep their sculpt as-is, and the Left side
// tag names the negative half of the mirror axis (the half on the
// viewer's left in a front view).
type TransferOptions struct {
	SeamPolicy   SeamPolicy
	LeftPositive bool
}

// Mirror synthesizes the mirrored blendshape. Vertices on the source
// side named by side, and seam vertices, keep the blendshape's sculpted
// positions; every target-side vertex receives its base position plus
// the axis-reflected delta of its correspondent on the source side.
//
// Mirror is a pure function: it never mutates its inputs, and identical
// inputs produce bit-identical output positions. The returned mesh
// shares base's topology and carries shape's name; callers rename it for
// the opposite side.
func Mirror(base, shape *mesh.Mesh, corr *Correspondence, side mesh.Side, opts TransferOptions) (*mesh.Mesh, error) {
	n := base.VertexCount()
	if shape.VertexCount() != n {
		return nil, fmt.Errorf("%w: base has %d, blendshape %q has %d",
			ErrTopologyMismatch, n, shape.Name, shape.VertexCount())
	}
	if corr.Len() != n {
		return nil, fmt.Errorf("%w: correspondence covers %d vertices, base has %d",
			ErrTopologyMismatch, corr.Len(), n)
	}

	plane := corr.Plane()
	sourcePositive := (side == mesh.SideLeft) == opts.LeftPositive

	out := make([]mgl64.Vec3, n)
	for v := 0; v < n; v++ {
		basePos := base.Position(v)

		if corr.IsSeam(v) {
			if opts.SeamPolicy == SeamReflect {
				delta := shape.Position(v).Sub(basePos)
				out[v] = basePos.Add(plane.ReflectDelta(delta))
			} else {
				out[v] = shape.Position(v)
			}
			continue
		}

		onSource := (plane.SignedDistance(basePos) > 0) == sourcePositive
		if onSource {
			// Source side is authoritative and untouched.
			out[v] = shape.Position(v)
			continue
		}

		u := corr.Of(v)
		delta := shape.Position(u).Sub(base.Position(u))
		out[v] = basePos.Add(plane.ReflectDelta(delta))
	}

	return base.WithPositions(shape.Name, out), nil
}
