package mirror

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/meshtools/blendmirror/pkg/geom"
	"github.com/meshtools/blendmirror/pkg/mesh"
)

// Tolerance defaults for correspondence building.
const (
	// DefaultSeamEpsilon bounds how far a vertex's reflection may land
	// from the vertex itself for it to count as lying on the seam.
	DefaultSeamEpsilon = 1e-6

	// DefaultTieTolerance bounds the distance difference under which two
	// nearest-neighbor candidates count as tied.
	DefaultTieTolerance = 1e-9
)

// BuildOptions tunes correspondence building. Zero fields fall back to
// the package defaults.
type BuildOptions struct {
	SeamEpsilon  float64
	TieTolerance float64
}

func (o BuildOptions) withDefaults() BuildOptions {
	if o.SeamEpsilon <= 0 {
		o.SeamEpsilon = DefaultSeamEpsilon
	}
	if o.TieTolerance <= 0 {
		o.TieTolerance = DefaultTieTolerance
	}
	return o
}

// Correspondence maps every vertex index of a base mesh to the index of
// its nearest mirror image across a plane. It depends only on the base
// mesh and the plane — not on any blendshape — so one map serves every
// blendshape sharing that base and seam.
type Correspondence struct {
	plane geom.MirrorPlane
	pairs []int
	seam  []bool
}

// Plane returns the mirror plane the map was built against.
func (c *Correspondence) Plane() geom.MirrorPlane { return c.plane }

// Len returns the number of vertices covered.
func (c *Correspondence) Len() int { return len(c.pairs) }

// Of returns the correspondent of vertex i.
func (c *Correspondence) Of(i int) int { return c.pairs[i] }

// IsSeam reports whether vertex i lies on the mirror plane and maps to
// itself.
func (c *Correspondence) IsSeam(i int) bool { return c.seam[i] }

// SeamCount returns the number of seam vertices.
func (c *Correspondence) SeamCount() int {
	n := 0
	for _, s := range c.seam {
		if s {
			n++
		}
	}
	return n
}

// BuildCorrespondence computes the full correspondence map for base
// across plane: each vertex is reflected and paired with the base vertex
// nearest the reflected position. Candidates tied within TieTolerance
// resolve to the lowest vertex index, so the map is deterministic across
// runs. A vertex whose own position is among the nearest candidates and
// within SeamEpsilon of its reflection is a seam vertex and maps to
// itself.
//
// The nearest-neighbor search runs on a k-d tree, so building is
// O(n log n) instead of the naive O(n²) scan. Queries are independent
// per vertex; the loop is kept serial since the map is built once per
// base/seam and memoized by the session layer.
func BuildCorrespondence(base *mesh.Mesh, plane geom.MirrorPlane, opts BuildOptions) *Correspondence {
	opts = opts.withDefaults()
	n := base.VertexCount()
	c := &Correspondence{
		plane: plane,
		pairs: make([]int, n),
		seam:  make([]bool, n),
	}
	if n == 0 {
		return c
	}

	tree := newVertexTree(base.Positions)
	eps2 := opts.SeamEpsilon * opts.SeamEpsilon

	for i := 0; i < n; i++ {
		q := vertexPoint{index: -1, pos: plane.ReflectPoint(base.Position(i))}

		nearest, d2 := tree.Nearest(q)

		// Gather every candidate tied with the nearest within the
		// tolerance and resolve deterministically.
		r := math.Sqrt(d2) + opts.TieTolerance
		keeper := kdtree.NewDistKeeper(r * r)
		tree.NearestSet(keeper, q)

		best := -1
		self := false
		for _, cd := range keeper.Heap {
			if cd.Comparable == nil {
				continue
			}
			vp := cd.Comparable.(vertexPoint)
			if vp.index == i && cd.Dist <= eps2 {
				self = true
			}
			if best < 0 || vp.index < best {
				best = vp.index
			}
		}
		if best < 0 {
			// Keeper radius collapsed to zero distance; fall back to the
			// single nearest hit.
			best = nearest.(vertexPoint).index
			self = best == i && d2 <= eps2
		}

		if self {
			c.pairs[i] = i
			c.seam[i] = true
		} else {
			c.pairs[i] = best
		}
	}
	return c
}

// Quality summarizes how well the base mesh's two halves line up under
// the map: the residual of vertex i is the distance between its
// reflected position and its correspondent's position. Large residuals
// mean a poorly placed seam or an asymmetric mesh — degraded output, not
// an error.
type Quality struct {
	MaxResidual  float64
	MeanResidual float64
	SeamVertices int
}

// Quality evaluates the map against the base mesh it was built from.
func (c *Correspondence) Quality(base *mesh.Mesh) Quality {
	q := Quality{SeamVertices: c.SeamCount()}
	if len(c.pairs) == 0 {
		return q
	}
	var sum float64
	for i, j := range c.pairs {
		refl := c.plane.ReflectPoint(base.Position(i))
		res := refl.Sub(base.Position(j)).Len()
		sum += res
		if res > q.MaxResidual {
			q.MaxResidual = res
		}
	}
	q.MeanResidual = sum / float64(len(c.pairs))
	return q
}

// bruteCorrespondent is the reference O(n) nearest-neighbor search with
// the same tie-break and seam rules as BuildCorrespondence. Kept for
// cross-checking the k-d tree path in tests.
func bruteCorrespondent(positions []mgl64.Vec3, plane geom.MirrorPlane, i int, opts BuildOptions) (index int, seam bool) {
	opts = opts.withDefaults()
	q := plane.ReflectPoint(positions[i])

	bestDist := math.Inf(1)
	for _, p := range positions {
		d := q.Sub(p).Len()
		if d < bestDist {
			bestDist = d
		}
	}

	best := -1
	self := false
	for j, p := range positions {
		d := q.Sub(p).Len()
		if d <= bestDist+opts.TieTolerance {
			if j == i && d <= opts.SeamEpsilon {
				self = true
			}
			if best < 0 {
				best = j
			}
		}
	}
	if self {
		return i, true
	}
	return best, false
}
