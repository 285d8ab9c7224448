// Package formats provides readers and writers for mesh interchange
// file formats.
//
// The mirroring engine depends on vertex order and count surviving a
// load/save round trip exactly: index-based correspondence silently
// corrupts if either changes. The OBJ reader therefore keeps every
// statement of the source file, in file order, and the writer re-emits
// non-vertex statements verbatim.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/meshtools/blendmirror/pkg/mesh"
)

// OBJ format errors.
var (
	ErrMalformedOBJVertex = errors.New("malformed OBJ vertex statement")
	ErrEmptyOBJ           = errors.New("OBJ data contains no vertices")
	ErrVertexSlotMismatch = errors.New("vertex count does not match topology vertex statements")
)

// ParseOBJ parses Wavefront OBJ data into a mesh with the given name.
// Vertex ("v") statements become positions, indexed in file order; every
// other line (f, vn, vt, g, o, s, usemtl, comments, blanks) is carried
// opaquely in the mesh topology. Extra components on a vertex statement
// beyond x y z (w, vertex colors) are dropped.
func ParseOBJ(data []byte, name string) (*mesh.Mesh, error) {
	var (
		positions  []mgl64.Vec3
		statements []mesh.Statement
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != "v" {
			statements = append(statements, mesh.Statement{Vertex: -1, Raw: line})
			continue
		}

		if len(fields) < 4 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedOBJVertex, lineNo, line)
		}
		var p mgl64.Vec3
		for c := 0; c < 3; c++ {
			v, err := strconv.ParseFloat(fields[c+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedOBJVertex, lineNo, line)
			}
			p[c] = v
		}
		statements = append(statements, mesh.Statement{Vertex: len(positions)})
		positions = append(positions, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning OBJ data: %w", err)
	}

	if len(positions) == 0 {
		return nil, ErrEmptyOBJ
	}

	return &mesh.Mesh{
		Name:      name,
		Positions: positions,
		Topology:  &mesh.Topology{Statements: statements},
	}, nil
}

// ParseOBJFile parses an OBJ file from disk. The mesh is named after the
// file, extension stripped, which is where the side tag lives in the
// sculpting pipeline's naming convention.
func ParseOBJFile(path string) (*mesh.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseOBJ(data, name)
}

// WriteOBJ writes the mesh as OBJ text. When the mesh carries topology,
// statements are emitted in their original file order with the current
// positions substituted into the vertex slots; a mesh without topology
// writes its vertex list only.
func WriteOBJ(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	if m.Topology == nil {
		for _, p := range m.Positions {
			if err := writeVertex(bw, p); err != nil {
				return err
			}
		}
		return bw.Flush()
	}

	if slots := m.Topology.VertexSlots(); slots != len(m.Positions) {
		return fmt.Errorf("%w: %d positions, %d statements", ErrVertexSlotMismatch, len(m.Positions), slots)
	}
	for _, s := range m.Topology.Statements {
		if s.Vertex >= 0 {
			if err := writeVertex(bw, m.Positions[s.Vertex]); err != nil {
				return err
			}
			continue
		}
		if _, err := bw.WriteString(s.Raw); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeVertex(w *bufio.Writer, p mgl64.Vec3) error {
	_, err := fmt.Fprintf(w, "v %s %s %s\n",
		strconv.FormatFloat(p[0], 'g', -1, 64),
		strconv.FormatFloat(p[1], 'g', -1, 64),
		strconv.FormatFloat(p[2], 'g', -1, 64))
	return err
}

// WriteOBJFile writes the mesh to path, creating parent directories as
// needed.
func WriteOBJFile(path string, m *mesh.Mesh) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating OBJ file: %w", err)
	}
	defer f.Close()

	if err := WriteOBJ(f, m); err != nil {
		return err
	}
	return f.Close()
}
