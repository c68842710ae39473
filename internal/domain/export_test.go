package domain

import (
	"testing"

	m "github.com/mouse-blink/parcel/internal/model"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "lotes_subdivididos_42.geojson", ExportFileName(42))
	assert.Equal(t, "lotes_subdivididos_nuevo.geojson", ExportFileName(0))
}

func TestExportLots(t *testing.T) {
	sub := m.Subdivision{TerrainID: 42, Method: "grid", Lots: lots(100, 250)}

	data, err := ExportLots(sub)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"features\"", "output is indented")

	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	first := fc.Features[0]
	assert.Equal(t, "Polygon", first.Geometry.GeoJSONType())
	assert.InDelta(t, 1, first.Properties.MustFloat64("lot"), 0)
	assert.InDelta(t, 100, first.Properties.MustFloat64("areaSquareMeters"), 0)
	assert.InDelta(t, 42, first.Properties.MustFloat64("terrainId"), 0)
	assert.Equal(t, "grid", first.Properties.MustString("method"))

	second := fc.Features[1]
	assert.InDelta(t, 2, second.Properties.MustFloat64("lot"), 0)
	assert.InDelta(t, 250, second.Properties.MustFloat64("areaSquareMeters"), 0)
}

func TestExportLots_RoundTrip(t *testing.T) {
	sub := m.Subdivision{
		TerrainID: 42,
		Method:    "voronoi",
		Lots: m.LotCollection{
			{Geometry: polygon(0.0001), AreaSquareMeters: 120.5},
			{Geometry: m.MustGeometry(orb.Polygon{{{0.0001, 0}, {0.0001, 0.0003}, {0.0004, 0.0003}, {0.0004, 0}, {0.0001, 0}}}), AreaSquareMeters: 980},
			{Geometry: m.MustGeometry(orb.MultiPolygon{
				{{{1, 1}, {1, 1.0002}, {1.0002, 1.0002}, {1, 1}}},
				{{{2, 2}, {2, 2.0001}, {2.0001, 2.0001}, {2, 2}}},
			}), AreaSquareMeters: 33.25},
		},
	}

	data, err := ExportLots(sub)
	require.NoError(t, err)

	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, len(sub.Lots))

	decoded := m.Subdivision{TerrainID: 42, Method: fc.Features[0].Properties.MustString("method")}

	for i, feature := range fc.Features {
		assert.True(t, orb.Equal(sub.Lots[i].Geometry.Orb(), feature.Geometry), "lot %d geometry", i+1)

		geom, err := m.NewGeometry(feature.Geometry)
		require.NoError(t, err)

		decoded.Lots = append(decoded.Lots, m.Lot{
			Geometry:         geom,
			AreaSquareMeters: feature.Properties.MustFloat64("areaSquareMeters"),
		})
	}

	again, err := ExportLots(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}

func TestExportLots_UnsavedTerrain(t *testing.T) {
	data, err := ExportLots(m.Subdivision{Method: "line", Lots: lots(1)})
	require.NoError(t, err)

	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)

	_, ok := fc.Features[0].Properties["terrainId"]
	assert.False(t, ok)
}

func TestExportLots_MissingGeometry(t *testing.T) {
	_, err := ExportLots(m.Subdivision{Lots: m.LotCollection{{AreaSquareMeters: 1}}})
	require.Error(t, err)
}
