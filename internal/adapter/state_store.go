package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/parcel/internal/model"
	"gopkg.in/yaml.v3"
)

// stateVersion is bumped when the file layout changes incompatibly.
const stateVersion = 1

// StateStore persists the client snapshot between runs.
type StateStore interface {
	LoadSnapshot() (m.Snapshot, error)
	SaveSnapshot(snapshot m.Snapshot) error
}

// LocalStateStore keeps the snapshot in a YAML file.
type LocalStateStore struct {
	path m.Path
}

// NewLocalStateStore creates a store backed by the file at path.
func NewLocalStateStore(path m.Path) *LocalStateStore {
	return &LocalStateStore{path: path}
}

type stateYAML struct {
	Version     int              `yaml:"version"`
	Terrain     terrainYAML      `yaml:"terrain"`
	Subdivision *subdivisionYAML `yaml:"subdivision,omitempty"`
}

type terrainYAML struct {
	ID       int64  `yaml:"id,omitempty"`
	Name     string `yaml:"name,omitempty"`
	Geometry string `yaml:"geometry,omitempty"`
}

type subdivisionYAML struct {
	TerrainID int64     `yaml:"terrain_id"`
	Method    string    `yaml:"method"`
	Lots      []lotYAML `yaml:"lots"`
}

type lotYAML struct {
	Geometry         string  `yaml:"geometry"`
	AreaSquareMeters float64 `yaml:"area_square_meters"`
}

// LoadSnapshot reads the snapshot. A missing file yields an empty snapshot.
func (s *LocalStateStore) LoadSnapshot() (m.Snapshot, error) {
	data, err := os.ReadFile(string(s.path))
	if errors.Is(err, fs.ErrNotExist) {
		return m.Snapshot{}, nil
	}

	if err != nil {
		return m.Snapshot{}, fmt.Errorf("read state %s: %w", s.path, err)
	}

	var decoded stateYAML
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return m.Snapshot{}, fmt.Errorf("decode state %s: %w", s.path, err)
	}

	if decoded.Version > stateVersion {
		return m.Snapshot{}, fmt.Errorf("state %s has version %d, newest supported is %d", s.path, decoded.Version, stateVersion)
	}

	return decoded.snapshot()
}

// SaveSnapshot writes the snapshot atomically.
func (s *LocalStateStore) SaveSnapshot(snapshot m.Snapshot) error {
	data, err := yaml.Marshal(newStateYAML(snapshot))
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	dir := filepath.Dir(string(s.path))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp state: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return fmt.Errorf("write state: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close state: %w", err)
	}

	if err := os.Rename(tmpName, string(s.path)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace state %s: %w", s.path, err)
	}

	return nil
}

func newStateYAML(snapshot m.Snapshot) stateYAML {
	out := stateYAML{
		Version: stateVersion,
		Terrain: terrainYAML{
			ID:       snapshot.Terrain.ID,
			Name:     snapshot.Terrain.Name,
			Geometry: snapshot.Terrain.Geometry.String(),
		},
	}

	if sub := snapshot.Subdivision; sub != nil {
		lots := make([]lotYAML, 0, len(sub.Lots))
		for _, lot := range sub.Lots {
			lots = append(lots, lotYAML{
				Geometry:         lot.Geometry.String(),
				AreaSquareMeters: lot.AreaSquareMeters,
			})
		}

		out.Subdivision = &subdivisionYAML{
			TerrainID: sub.TerrainID,
			Method:    sub.Method,
			Lots:      lots,
		}
	}

	return out
}

func (s stateYAML) snapshot() (m.Snapshot, error) {
	terrain := m.TerrainIdentity{
		ID:   s.Terrain.ID,
		Name: s.Terrain.Name,
	}

	if s.Terrain.Geometry != "" {
		geom, err := m.ParseGeometry([]byte(s.Terrain.Geometry))
		if err != nil {
			return m.Snapshot{}, fmt.Errorf("terrain geometry: %w", err)
		}

		terrain.Geometry = geom
	}

	snapshot := m.Snapshot{Terrain: terrain}

	if s.Subdivision == nil {
		return snapshot, nil
	}

	lots := make(m.LotCollection, 0, len(s.Subdivision.Lots))

	for i, lot := range s.Subdivision.Lots {
		geom, err := m.ParseGeometry([]byte(lot.Geometry))
		if err != nil {
			return m.Snapshot{}, fmt.Errorf("lot %d geometry: %w", i+1, err)
		}

		lots = append(lots, m.Lot{Geometry: geom, AreaSquareMeters: lot.AreaSquareMeters})
	}

	snapshot.Subdivision = &m.Subdivision{
		TerrainID: s.Subdivision.TerrainID,
		Method:    s.Subdivision.Method,
		Lots:      lots,
	}

	return snapshot, nil
}
