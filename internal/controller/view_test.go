package controller

import (
	"testing"

	m "github.com/mouse-blink/parcel/internal/model"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestBuildStatus(t *testing.T) {
	geom := m.MustGeometry(orb.Polygon{{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}})

	tests := []struct {
		name     string
		identity m.TerrainIdentity
		hasGeom  bool
		wantKind StatusKind
		wantID   string
	}{
		{name: "nothing drawn", wantKind: StatusInactive, wantID: "N/A"},
		{name: "drawn not saved", identity: m.TerrainIdentity{Geometry: geom}, hasGeom: true, wantKind: StatusUnsavedNew, wantID: "Nuevo"},
		{name: "saved", identity: m.TerrainIdentity{ID: 42, Name: "Lote A", Geometry: geom}, hasGeom: true, wantKind: StatusActive, wantID: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var current m.Geometry
			if tt.hasGeom {
				current = geom
			}

			view := buildStatus(tt.identity, current, tt.hasGeom, m.ProjectContext{ProjectID: 7}, 0)
			assert.Equal(t, tt.wantKind, view.Kind)
			assert.Equal(t, tt.wantID, view.IDLabel)
		})
	}
}

func TestBuildLots(t *testing.T) {
	empty := buildLots(m.Subdivision{}, false)
	assert.True(t, empty.Empty())
	assert.Equal(t, "No se han generado lotes aún.", empty.Headline)

	view := buildLots(m.Subdivision{
		TerrainID: 42,
		Method:    "voronoi",
		Lots:      m.LotCollection{{AreaSquareMeters: 25}, {AreaSquareMeters: 75}},
	}, true)

	assert.Equal(t, "2 lotes generados por voronoi", view.Headline)
	assert.InDelta(t, 100, view.TotalArea, 0)
	assert.InDelta(t, 50, view.AverageArea, 0)
	assert.InDelta(t, 25, view.Rows[0].Percent, 1e-9)
	assert.InDelta(t, 75, view.Rows[1].Percent, 1e-9)
}
