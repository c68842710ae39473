package domain

import (
	"log/slog"

	"github.com/mouse-blink/parcel/internal/adapter"
	m "github.com/mouse-blink/parcel/internal/model"
)

// Workspace groups the three state owners of one client session.
type Workspace struct {
	Geometry    *GeometryStore
	Terrain     *TerrainSession
	Subdivision *SubdivisionController
}

// NewWorkspace wires the owners together. The subdivision controller is
// subscribed first so stale lots are gone before anyone else reacts to a
// geometry change.
func NewWorkspace(api adapter.TerrainAPI, logger *slog.Logger) *Workspace {
	geometry := NewGeometryStore(logger)
	subdivision := NewSubdivisionController(api, geometry, logger)
	terrain := NewTerrainSession(api, geometry, logger)

	return &Workspace{
		Geometry:    geometry,
		Terrain:     terrain,
		Subdivision: subdivision,
	}
}

// Snapshot captures the state to carry into the next run.
func (w *Workspace) Snapshot() m.Snapshot {
	snapshot := m.Snapshot{Terrain: w.Terrain.Current()}
	if geom, ok := w.Geometry.Current(); ok {
		snapshot.Terrain.Geometry = geom
	}

	if sub, ok := w.Subdivision.Last(); ok {
		snapshot.Subdivision = &sub
	}

	return snapshot
}

// Restore loads a snapshot without firing change notifications. Lots
// without a geometry are dropped.
func (w *Workspace) Restore(snapshot m.Snapshot) {
	w.Geometry.restore(snapshot.Terrain.Geometry)
	w.Terrain.restore(snapshot.Terrain)

	if snapshot.Terrain.Geometry.IsZero() {
		w.Subdivision.restore(nil)
		return
	}

	w.Subdivision.restore(snapshot.Subdivision)
}
