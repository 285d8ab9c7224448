// Package mirror implements the mirror correspondence and delta-transfer
// engine: resolving a mirror plane from a seam vertex, pairing each
// vertex with its geometric mirror image, and synthesizing a mirrored
// blendshape by transferring reflected sculpt deltas across the plane.
//
// Every operation is a pure function of its inputs. Session state
// (loaded meshes, current selection, cached correspondence) lives in
// internal/session, not here.
package mirror

import "errors"

// Engine errors. All are detected up front; no operation emits a
// partially mirrored mesh.
var (
	ErrInvalidSelection = errors.New("seam vertex index out of range")
	ErrTopologyMismatch = errors.New("base and blendshape vertex counts differ")
)
