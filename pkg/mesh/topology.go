package mesh

import "strings"

// Statement is one line of an interchange file. Vertex statements are
// identified by the index of the position they define; every other line
// is carried verbatim in Raw. The engine never interprets Raw — it only
// exists so a written mesh keeps exactly the connectivity of the mesh it
// was derived from, in the original order.
type Statement struct {
	// Vertex is the position index this statement defines, or -1 for a
	// raw pass-through line.
	Vertex int
	Raw    string
}

// Topology is the opaque connectivity block of a mesh: the full ordered
// statement list of the file it was read from, with vertex statements
// reduced to position slots. It is shared, never copied, between a base
// mesh and the meshes derived from it.
type Topology struct {
	Statements []Statement
}

// VertexSlots returns the number of vertex statements.
func (t *Topology) VertexSlots() int {
	n := 0
	for _, s := range t.Statements {
		if s.Vertex >= 0 {
			n++
		}
	}
	return n
}

// FaceCount returns the number of face ("f") statements.
func (t *Topology) FaceCount() int {
	n := 0
	for _, s := range t.Statements {
		if s.Vertex < 0 && (strings.HasPrefix(s.Raw, "f ") || strings.HasPrefix(s.Raw, "f\t")) {
			n++
		}
	}
	return n
}
