package adapter

import (
	"fmt"
	"io"
	"os"

	m "github.com/mouse-blink/parcel/internal/model"
)

// StdinPath selects standard input as the geometry source.
const StdinPath = m.Path("-")

// GeometryReader reads drawn polygons. It stands in for the map drawing tool:
// whatever the user drew arrives here as GeoJSON.
type GeometryReader interface {
	ReadGeometry(path m.Path) (m.Geometry, error)
}

// LocalGeometryReader reads GeoJSON from a file or from stdin.
type LocalGeometryReader struct {
	stdin io.Reader
}

// NewLocalGeometryReader creates a reader; stdin is used for the "-" path.
func NewLocalGeometryReader(stdin io.Reader) *LocalGeometryReader {
	if stdin == nil {
		stdin = os.Stdin
	}

	return &LocalGeometryReader{stdin: stdin}
}

// ReadGeometry decodes the GeoJSON at path.
func (r *LocalGeometryReader) ReadGeometry(path m.Path) (m.Geometry, error) {
	var (
		data []byte
		err  error
	)

	if path == StdinPath {
		data, err = io.ReadAll(r.stdin)
	} else {
		data, err = os.ReadFile(string(path))
	}

	if err != nil {
		return m.Geometry{}, fmt.Errorf("read geometry %s: %w", path, err)
	}

	geom, err := m.ParseGeometry(data)
	if err != nil {
		return m.Geometry{}, fmt.Errorf("geometry %s: %w", path, err)
	}

	return geom, nil
}
