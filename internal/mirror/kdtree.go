package mirror

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// vertexPoint adapts an indexed mesh vertex to gonum's k-d tree. The
// query side uses index -1.
type vertexPoint struct {
	index int
	pos   mgl64.Vec3
}

func (p vertexPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(vertexPoint)
	return p.pos[d] - q.pos[d]
}

func (p vertexPoint) Dims() int { return 3 }

// Distance returns the squared Euclidean distance.
func (p vertexPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(vertexPoint)
	d := p.pos.Sub(q.pos)
	return d.Dot(d)
}

type vertexSet []vertexPoint

func (s vertexSet) Index(i int) kdtree.Comparable         { return s[i] }
func (s vertexSet) Len() int                              { return len(s) }
func (s vertexSet) Slice(start, end int) kdtree.Interface { return s[start:end] }
func (s vertexSet) Pivot(d kdtree.Dim) int {
	return vertexPlane{vertexSet: s, Dim: d}.Pivot()
}

// vertexPlane sorts a vertexSet along a single dimension for pivot
// selection during tree construction.
type vertexPlane struct {
	kdtree.Dim
	vertexSet
}

func (p vertexPlane) Less(i, j int) bool {
	return p.vertexSet[i].pos[p.Dim] < p.vertexSet[j].pos[p.Dim]
}
func (p vertexPlane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p vertexPlane) Slice(start, end int) kdtree.SortSlicer {
	p.vertexSet = p.vertexSet[start:end]
	return p
}
func (p vertexPlane) Swap(i, j int) {
	p.vertexSet[i], p.vertexSet[j] = p.vertexSet[j], p.vertexSet[i]
}

// newVertexTree builds a k-d tree over the given positions. Vertex
// indices travel with the points, so the tree owns its own copy and the
// caller's slice is left untouched.
func newVertexTree(positions []mgl64.Vec3) *kdtree.Tree {
	points := make(vertexSet, len(positions))
	for i, p := range positions {
		points[i] = vertexPoint{index: i, pos: p}
	}
	return kdtree.New(points, false)
}
