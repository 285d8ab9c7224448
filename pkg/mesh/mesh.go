// Package mesh defines the in-memory mesh model shared by the mirroring
// engine and the interchange readers.
package mesh

import "github.com/go-gl/mathgl/mgl64"

// Mesh is a vertex-indexed polygon mesh. Positions are the only data the
// mirroring engine reads or writes; the vertex index is the sole identity
// used for correspondence, so nothing may reorder Positions or change
// their count. Connectivity rides along opaquely in Topology.
type Mesh struct {
	Name      string
	Positions []mgl64.Vec3
	Topology  *Topology
}

// New returns a mesh with the given name and positions and no topology.
func New(name string, positions []mgl64.Vec3) *Mesh {
	return &Mesh{Name: name, Positions: positions}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) mgl64.Vec3 {
	return m.Positions[i]
}

// WithPositions returns a new mesh that shares this mesh's topology but
// carries the given name and positions. len(positions) must equal the
// receiver's vertex count, otherwise the shared topology would no longer
// describe the vertex list.
func (m *Mesh) WithPositions(name string, positions []mgl64.Vec3) *Mesh {
	return &Mesh{Name: name, Positions: positions, Topology: m.Topology}
}

// Bounds returns the axis-aligned bounding box of the vertex positions.
// Both extremes are zero for an empty mesh.
func (m *Mesh) Bounds() (min, max mgl64.Vec3) {
	if len(m.Positions) == 0 {
		return mgl64.Vec3{}, mgl64.Vec3{}
	}
	min, max = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for c := 0; c < 3; c++ {
			if p[c] < min[c] {
				min[c] = p[c]
			}
			if p[c] > max[c] {
				max[c] = p[c]
			}
		}
	}
	return min, max
}

// FaceCount reports the number of face statements in the topology, or
// zero when the mesh carries none.
func (m *Mesh) FaceCount() int {
	if m.Topology == nil {
		return 0
	}
	return m.Topology.FaceCount()
}
