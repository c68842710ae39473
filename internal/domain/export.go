package domain

import (
	"encoding/json"
	"fmt"

	m "github.com/mouse-blink/parcel/internal/model"
	"github.com/paulmach/orb/geojson"
)

// exportPrefix starts every export file name.
const exportPrefix = "lotes_subdivididos_"

// ExportFileName names the export for a terrain; unsaved terrains get a
// placeholder.
func ExportFileName(terrainID int64) string {
	if terrainID == 0 {
		return exportPrefix + "nuevo.geojson"
	}

	return fmt.Sprintf("%s%d.geojson", exportPrefix, terrainID)
}

// ExportLots renders the lots as a pretty-printed GeoJSON FeatureCollection.
func ExportLots(sub m.Subdivision) ([]byte, error) {
	fc := geojson.NewFeatureCollection()

	for i, lot := range sub.Lots {
		if lot.Geometry.IsZero() {
			return nil, fmt.Errorf("lot %d has no geometry", i+1)
		}

		feature := geojson.NewFeature(lot.Geometry.Orb())
		feature.Properties["lot"] = i + 1
		feature.Properties["areaSquareMeters"] = lot.AreaSquareMeters

		if sub.Method != "" {
			feature.Properties["method"] = sub.Method
		}

		if sub.TerrainID != 0 {
			feature.Properties["terrainId"] = sub.TerrainID
		}

		fc.Append(feature)
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}

	return data, nil
}
