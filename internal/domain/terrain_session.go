package domain

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mouse-blink/parcel/internal/adapter"
	m "github.com/mouse-blink/parcel/internal/model"
)

// TerrainSession owns the identity of the active terrain and persists it.
type TerrainSession struct {
	api        adapter.TerrainAPI
	geometry   *GeometryStore
	project    m.ProjectContext
	configured bool
	identity   m.TerrainIdentity
	guard      guard
	logger     *slog.Logger
}

// NewTerrainSession creates a session that follows the given geometry store.
func NewTerrainSession(api adapter.TerrainAPI, geometry *GeometryStore, logger *slog.Logger) *TerrainSession {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &TerrainSession{
		api:      api,
		geometry: geometry,
		guard:    newGuard(),
		logger:   logger,
	}
	geometry.Subscribe(s.onGeometryChange)

	return s
}

// Configure sets the project context. It is called once at startup; a
// missing project leaves saving disabled.
func (s *TerrainSession) Configure(projectID int64) error {
	project := m.ProjectContext{ProjectID: projectID}
	if !project.Valid() {
		s.configured = false
		return &ConfigError{Reason: "project id is not set"}
	}

	s.project = project
	s.configured = true
	s.logger.Debug("terrain session configured", "project_id", projectID)

	return nil
}

// Project returns the configured project and whether one is set.
func (s *TerrainSession) Project() (m.ProjectContext, bool) {
	return s.project, s.configured
}

// Current returns the active terrain identity.
func (s *TerrainSession) Current() m.TerrainIdentity {
	return s.identity
}

// Save creates the terrain on the backend and attaches the returned id.
// On failure the identity is left untouched.
func (s *TerrainSession) Save(ctx context.Context, name string, geometry m.Geometry) (m.TerrainIdentity, error) {
	name = strings.TrimSpace(name)

	if geometry.IsZero() {
		return m.TerrainIdentity{}, invalid(FieldGeometry, "draw a polygon first")
	}

	if name == "" {
		return m.TerrainIdentity{}, invalid(FieldName, "name is required")
	}

	if !s.configured {
		return m.TerrainIdentity{}, &ConfigError{Reason: "project id is not set"}
	}

	release, err := s.guard.acquire()
	if err != nil {
		return m.TerrainIdentity{}, err
	}
	defer release()

	record, err := s.api.CreateTerrain(ctx, adapter.CreateTerrainRequest{
		ProjectID: s.project.ProjectID,
		Name:      name,
		Geometry:  geometry,
	})
	if err != nil {
		s.logger.Debug("save terrain failed", "name", name, "error", err)
		return m.TerrainIdentity{}, &BackendError{Op: OpSave, Err: err}
	}

	s.identity = m.TerrainIdentity{
		ID:       record.ID,
		Name:     name,
		Geometry: geometry,
	}
	s.logger.Info("terrain saved", "id", record.ID, "name", name)

	return s.identity, nil
}

// Load fetches a terrain by id. found is false when the backend does not
// know the id; nothing changes in that case.
func (s *TerrainSession) Load(ctx context.Context, id int64) (identity m.TerrainIdentity, found bool, err error) {
	if id <= 0 {
		return m.TerrainIdentity{}, false, invalid(FieldID, "terrain id is required")
	}

	release, err := s.guard.acquire()
	if err != nil {
		return m.TerrainIdentity{}, false, err
	}
	defer release()

	record, err := s.api.GetTerrain(ctx, id)
	if errors.Is(err, adapter.ErrNotFound) {
		s.logger.Info("terrain not found", "id", id)
		return m.TerrainIdentity{}, false, nil
	}

	if err != nil {
		s.logger.Debug("load terrain failed", "id", id, "error", err)
		return m.TerrainIdentity{}, false, &BackendError{Op: OpLoad, Err: err}
	}

	if err := s.geometry.SetFromLoad(record.Geometry); err != nil {
		return m.TerrainIdentity{}, false, &BackendError{Op: OpLoad, Err: err}
	}

	s.identity = record.Identity()

	s.logger.Info("terrain loaded", "id", record.ID, "name", record.Name)

	return s.identity, true, nil
}

// Reset returns the identity to its empty state.
func (s *TerrainSession) Reset() {
	s.identity = m.TerrainIdentity{}
}

func (s *TerrainSession) onGeometryChange(change GeometryChange) {
	switch change.Kind {
	case ChangeDraw:
		s.identity = m.TerrainIdentity{Geometry: change.Geometry}
	case ChangeEdit, ChangeLoad:
		s.identity.Geometry = change.Geometry
	case ChangeClear:
		s.Reset()
	}
}

func (s *TerrainSession) restore(identity m.TerrainIdentity) {
	s.identity = identity
}
