// Package model defines the data structures shared by the terrain client.
package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// minRingPositions is the smallest closed ring: three vertices plus the closing one.
const minRingPositions = 4

// ErrEmptyGeometry is returned when an operation needs a geometry and none is set.
var ErrEmptyGeometry = errors.New("geometry is empty")

// Geometry is the active drawable polygon, shaped like a GeoJSON geometry
// ({type, coordinates}). Only Polygon and MultiPolygon are accepted.
// The zero value means "no geometry".
type Geometry struct {
	shape orb.Geometry
}

// NewGeometry wraps an orb polygon or multipolygon.
func NewGeometry(g orb.Geometry) (Geometry, error) {
	switch shape := g.(type) {
	case orb.Polygon:
		if err := validatePolygon(shape); err != nil {
			return Geometry{}, err
		}
	case orb.MultiPolygon:
		if len(shape) == 0 {
			return Geometry{}, fmt.Errorf("multipolygon has no polygons")
		}

		for i, poly := range shape {
			if err := validatePolygon(poly); err != nil {
				return Geometry{}, fmt.Errorf("polygon %d: %w", i, err)
			}
		}
	case nil:
		return Geometry{}, ErrEmptyGeometry
	default:
		return Geometry{}, fmt.Errorf("unsupported geometry type %q", g.GeoJSONType())
	}

	return Geometry{shape: g}, nil
}

// MustGeometry is NewGeometry for literals known to be valid.
func MustGeometry(g orb.Geometry) Geometry {
	geom, err := NewGeometry(g)
	if err != nil {
		panic(err)
	}

	return geom
}

func validatePolygon(poly orb.Polygon) error {
	if len(poly) == 0 {
		return fmt.Errorf("polygon has no rings")
	}

	for i, ring := range poly {
		if len(ring) < minRingPositions {
			return fmt.Errorf("ring %d has %d positions, need at least %d", i, len(ring), minRingPositions)
		}

		if !ring.Closed() {
			return fmt.Errorf("ring %d is not closed", i)
		}

		if planar.Area(ring) == 0 {
			return fmt.Errorf("ring %d has no area", i)
		}
	}

	return nil
}

// ParseGeometry decodes GeoJSON into a Geometry. It accepts a bare geometry,
// a Feature, or a FeatureCollection holding exactly one feature, which is
// what drawing tools usually export.
func ParseGeometry(data []byte) (Geometry, error) {
	var probe struct {
		Type string `json:"type"`
	}

	if err := json.Unmarshal(data, &probe); err != nil {
		return Geometry{}, fmt.Errorf("decode geojson: %w", err)
	}

	switch probe.Type {
	case "Feature":
		feature, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return Geometry{}, fmt.Errorf("decode feature: %w", err)
		}

		return NewGeometry(feature.Geometry)
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return Geometry{}, fmt.Errorf("decode feature collection: %w", err)
		}

		if len(fc.Features) != 1 {
			return Geometry{}, fmt.Errorf("feature collection must hold exactly one feature, got %d", len(fc.Features))
		}

		return NewGeometry(fc.Features[0].Geometry)
	case "":
		return Geometry{}, fmt.Errorf("geojson has no type")
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return Geometry{}, fmt.Errorf("decode geometry: %w", err)
		}

		return NewGeometry(g.Geometry())
	}
}

// IsZero reports whether no geometry is set.
func (g Geometry) IsZero() bool {
	return g.shape == nil
}

// Type returns the GeoJSON type name, or "" for the zero value.
func (g Geometry) Type() string {
	if g.shape == nil {
		return ""
	}

	return g.shape.GeoJSONType()
}

// Orb returns the underlying orb geometry.
func (g Geometry) Orb() orb.Geometry {
	return g.shape
}

// Area is the geodesic area in square meters.
func (g Geometry) Area() float64 {
	if g.shape == nil {
		return 0
	}

	return geo.Area(g.shape)
}

// Equal reports whether both geometries have the same type and coordinates.
func (g Geometry) Equal(other Geometry) bool {
	if g.shape == nil || other.shape == nil {
		return g.shape == nil && other.shape == nil
	}

	return orb.Equal(g.shape, other.shape)
}

// MarshalJSON encodes the geometry as a GeoJSON geometry object.
func (g Geometry) MarshalJSON() ([]byte, error) {
	if g.shape == nil {
		return []byte("null"), nil
	}

	return json.Marshal(geojson.NewGeometry(g.shape))
}

// UnmarshalJSON decodes a GeoJSON geometry, feature or null.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*g = Geometry{}
		return nil
	}

	parsed, err := ParseGeometry(data)
	if err != nil {
		return err
	}

	*g = parsed

	return nil
}

// String returns the compact GeoJSON encoding, the form sent over the wire.
func (g Geometry) String() string {
	if g.shape == nil {
		return ""
	}

	data, err := g.MarshalJSON()
	if err != nil {
		return ""
	}

	return string(data)
}
