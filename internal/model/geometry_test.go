package model

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(size float64) orb.Polygon {
	return orb.Polygon{{{0, 0}, {0, size}, {size, size}, {size, 0}, {0, 0}}}
}

func TestNewGeometry(t *testing.T) {
	tests := []struct {
		name    string
		input   orb.Geometry
		wantErr bool
		isEmpty bool
	}{
		{name: "polygon", input: square(1)},
		{name: "multipolygon", input: orb.MultiPolygon{square(1), square(2)}},
		{name: "nil", input: nil, wantErr: true, isEmpty: true},
		{name: "point", input: orb.Point{1, 2}, wantErr: true},
		{name: "too few positions", input: orb.Polygon{{{0, 0}, {1, 1}, {0, 0}}}, wantErr: true},
		{name: "open ring", input: orb.Polygon{{{0, 0}, {0, 1}, {1, 1}, {1, 0}}}, wantErr: true},
		{name: "collapsed ring", input: orb.Polygon{{{0, 0}, {0, 0}, {0, 0}, {0, 0}}}, wantErr: true},
		{name: "collinear ring", input: orb.Polygon{{{0, 0}, {1, 1}, {2, 2}, {0, 0}}}, wantErr: true},
		{name: "open hole", input: orb.Polygon{square(2)[0], {{0.5, 0.5}, {0.5, 1}, {1, 1}, {1, 0.5}}}, wantErr: true},
		{name: "open ring in multipolygon", input: orb.MultiPolygon{square(1), {{{0, 0}, {0, 1}, {1, 1}, {1, 0}}}}, wantErr: true},
		{name: "empty multipolygon", input: orb.MultiPolygon{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geom, err := NewGeometry(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, geom.IsZero())

				if tt.isEmpty {
					assert.ErrorIs(t, err, ErrEmptyGeometry)
				}

				return
			}

			require.NoError(t, err)
			assert.False(t, geom.IsZero())
			assert.Equal(t, tt.input.GeoJSONType(), geom.Type())
		})
	}
}

func TestParseGeometry(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType string
		wantErr  bool
	}{
		{
			name:     "bare polygon",
			input:    `{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[1,0],[0,0]]]}`,
			wantType: "Polygon",
		},
		{
			name:     "feature",
			input:    `{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[1,0],[0,0]]]}}`,
			wantType: "Polygon",
		},
		{
			name: "feature collection with one feature",
			input: `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},` +
				`"geometry":{"type":"MultiPolygon","coordinates":[[[[0,0],[0,1],[1,1],[1,0],[0,0]]]]}}]}`,
			wantType: "MultiPolygon",
		},
		{
			name:    "feature collection with two features",
			input:   `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[1,0],[0,0]]]}},{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[1,0],[0,0]]]}}]}`,
			wantErr: true,
		},
		{name: "unclosed polygon", input: `{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[1,0]]]}`, wantErr: true},
		{name: "zero area polygon", input: `{"type":"Polygon","coordinates":[[[0,0],[0,0],[0,0],[0,0]]]}`, wantErr: true},
		{name: "line string", input: `{"type":"LineString","coordinates":[[0,0],[1,1]]}`, wantErr: true},
		{name: "no type", input: `{"coordinates":[]}`, wantErr: true},
		{name: "not json", input: `polygon`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geom, err := ParseGeometry([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, geom.Type())
		})
	}
}

func TestGeometry_Area(t *testing.T) {
	assert.Zero(t, Geometry{}.Area())

	// 0.001 degrees at the equator is roughly 111 m on each side.
	area := MustGeometry(square(0.001)).Area()
	assert.InDelta(t, 12392, area, 200)

	double := MustGeometry(orb.MultiPolygon{square(0.001), square(0.001)}).Area()
	assert.InDelta(t, 2*area, double, 1)
}

func TestGeometry_JSONRoundTrip(t *testing.T) {
	original := MustGeometry(square(1))

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[1,0],[0,0]]]}`, string(data))

	var decoded Geometry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equal(decoded))
	assert.Equal(t, string(data), original.String())

	var empty Geometry
	require.NoError(t, json.Unmarshal([]byte("null"), &empty))
	assert.True(t, empty.IsZero())
	assert.Empty(t, empty.String())
}

func TestGeometry_Equal(t *testing.T) {
	a := MustGeometry(square(1))
	b := MustGeometry(square(1))
	c := MustGeometry(square(2))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Geometry{}))
	assert.True(t, Geometry{}.Equal(Geometry{}))
}
