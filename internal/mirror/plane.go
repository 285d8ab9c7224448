package mirror

import (
	"fmt"

	"github.com/meshtools/blendmirror/pkg/geom"
	"github.com/meshtools/blendmirror/pkg/mesh"
)

// ResolvePlane computes the mirror plane from a user-picked seam vertex:
// the plane perpendicular to axis through the seam vertex's coordinate
// along that axis. Fails with ErrInvalidSelection when seamIndex does
// not address a vertex of base.
//
// No symmetry validation happens here. A seam vertex far from the true
// symmetry line degrades correspondence quality downstream without
// raising an error; the check command surfaces that quality instead.
func ResolvePlane(base *mesh.Mesh, seamIndex int, axis geom.Axis) (geom.MirrorPlane, error) {
	if seamIndex < 0 || seamIndex >= base.VertexCount() {
		return geom.MirrorPlane{}, fmt.Errorf("%w: index %d, mesh has %d vertices",
			ErrInvalidSelection, seamIndex, base.VertexCount())
	}
	return geom.MirrorPlane{
		Axis:   axis,
		Offset: base.Position(seamIndex)[axis],
	}, nil
}
