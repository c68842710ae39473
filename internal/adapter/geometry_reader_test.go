package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	m "github.com/mouse-blink/parcel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalGeometryReader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terreno.geojson")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"Feature","properties":{},"geometry":`+testPolygon+`}`), 0o644))

	geom, err := NewLocalGeometryReader(nil).ReadGeometry(m.Path(path))
	require.NoError(t, err)
	assert.True(t, geom.Equal(testGeometry()))
}

func TestLocalGeometryReader_Stdin(t *testing.T) {
	reader := NewLocalGeometryReader(strings.NewReader(testPolygon))

	geom, err := reader.ReadGeometry(StdinPath)
	require.NoError(t, err)
	assert.Equal(t, "Polygon", geom.Type())
}

func TestLocalGeometryReader_Errors(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "line.geojson")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"type":"LineString","coordinates":[[0,0],[1,1]]}`), 0o644))

	reader := NewLocalGeometryReader(nil)

	_, err := reader.ReadGeometry(m.Path(filepath.Join(dir, "missing.geojson")))
	require.Error(t, err)

	_, err = reader.ReadGeometry(m.Path(invalid))
	require.Error(t, err)
}
