// Package session ties the mirroring pipeline together for one base
// mesh: it loads meshes, caches correspondence maps and applies the
// configured naming convention when synthesizing mirrored blendshapes.
package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/meshtools/blendmirror/internal/config"
	"github.com/meshtools/blendmirror/internal/mirror"
	"github.com/meshtools/blendmirror/pkg/formats"
	"github.com/meshtools/blendmirror/pkg/geom"
	"github.com/meshtools/blendmirror/pkg/mesh"
)

// ErrNoBaseMesh is returned when an operation needs a base mesh but
// none has been loaded.
var ErrNoBaseMesh = errors.New("no base mesh loaded")

// memoKey identifies one correspondence map: the map depends only on
// the base mesh, the axis and the seam vertex.
type memoKey struct {
	axis geom.Axis
	seam int
}

// Session holds a base mesh and the correspondence maps built against
// it. Maps are memoized so mirroring many blendshapes over the same
// base pays the O(n log n) build cost once per axis/seam pair.
//
// A Session is not safe for concurrent use.
type Session struct {
	cfg  *config.Config
	log  *zap.SugaredLogger
	base *mesh.Mesh
	memo map[memoKey]*mirror.Correspondence
}

// New creates a session with the given configuration. A nil logger
// disables logging.
func New(cfg *config.Config, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		cfg:  cfg,
		log:  log.Sugar(),
		memo: make(map[memoKey]*mirror.Correspondence),
	}
}

// Markers returns the configured side-naming markers.
func (s *Session) Markers() mesh.Markers {
	return mesh.Markers{
		Left:  s.cfg.Naming.LeftMarker,
		Right: s.cfg.Naming.RightMarker,
	}
}

// LoadBase reads the base mesh from an OBJ file. Any cached
// correspondence maps are discarded since they were built against the
// previous base.
func (s *Session) LoadBase(path string) error {
	m, err := formats.ParseOBJFile(path)
	if err != nil {
		return fmt.Errorf("loading base mesh: %w", err)
	}
	s.SetBase(m)
	s.log.Infow("base mesh loaded", "path", path, "vertices", m.VertexCount(), "faces", m.FaceCount())
	return nil
}

// SetBase installs a base mesh directly and discards cached maps.
func (s *Session) SetBase(m *mesh.Mesh) {
	s.base = m
	s.memo = make(map[memoKey]*mirror.Correspondence)
}

// Base returns the current base mesh, or nil if none is loaded.
func (s *Session) Base() *mesh.Mesh {
	return s.base
}

// Correspondence returns the correspondence map for the given axis and
// seam vertex, building and caching it on first use.
func (s *Session) Correspondence(axis geom.Axis, seamIndex int) (*mirror.Correspondence, error) {
	if s.base == nil {
		return nil, ErrNoBaseMesh
	}

	key := memoKey{axis: axis, seam: seamIndex}
	if corr, ok := s.memo[key]; ok {
		s.log.Debugw("correspondence cache hit", "axis", axis, "seam", seamIndex)
		return corr, nil
	}

	plane, err := mirror.ResolvePlane(s.base, seamIndex, axis)
	if err != nil {
		return nil, err
	}

	corr := mirror.BuildCorrespondence(s.base, plane, mirror.BuildOptions{
		SeamEpsilon:  s.cfg.Mirror.SeamEpsilon,
		TieTolerance: s.cfg.Mirror.TieTolerance,
	})
	s.memo[key] = corr

	s.log.Debugw("correspondence built",
		"axis", axis, "seam", seamIndex,
		"vertices", corr.Len(), "seam_vertices", corr.SeamCount())
	return corr, nil
}

// MirrorShape synthesizes the opposite-side counterpart of a sculpted
// blendshape. The shape's side comes from its name via the configured
// markers, and the returned mesh carries the swapped name.
func (s *Session) MirrorShape(shape *mesh.Mesh, axis geom.Axis, seamIndex int) (*mesh.Mesh, error) {
	if s.base == nil {
		return nil, ErrNoBaseMesh
	}

	markers := s.Markers()
	side, err := mesh.ResolveSide(shape.Name, markers)
	if err != nil {
		return nil, err
	}

	corr, err := s.Correspondence(axis, seamIndex)
	if err != nil {
		return nil, err
	}

	policy, err := mirror.ParseSeamPolicy(s.cfg.Mirror.SeamPolicy)
	if err != nil {
		return nil, err
	}

	out, err := mirror.Mirror(s.base, shape, corr, side, mirror.TransferOptions{
		SeamPolicy:   policy,
		LeftPositive: s.cfg.Mirror.LeftPositive,
	})
	if err != nil {
		return nil, err
	}

	out.Name, err = mesh.SwapSide(shape.Name, markers)
	if err != nil {
		return nil, err
	}

	s.log.Infow("blendshape mirrored",
		"source", shape.Name, "output", out.Name,
		"side", side, "axis", axis, "seam", seamIndex)
	return out, nil
}
