package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/parcel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalExportStore_WriteExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	store := NewLocalExportStore(m.Path(dir))

	path, err := store.WriteExport("lotes_subdivididos_42.geojson", []byte(`{"type":"FeatureCollection","features":[]}`))
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(dir, "lotes_subdivididos_42.geojson")), path)

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(data))
}

func TestLocalExportStore_RejectsPaths(t *testing.T) {
	store := NewLocalExportStore(m.Path(t.TempDir()))

	for _, name := range []string{"", "../escape.geojson", "sub/dir.geojson"} {
		_, err := store.WriteExport(name, []byte("{}"))
		assert.Error(t, err, "name %q", name)
	}
}

func TestNewLocalExportStore_DefaultDir(t *testing.T) {
	assert.Equal(t, m.Path("."), NewLocalExportStore("").dir)
}
