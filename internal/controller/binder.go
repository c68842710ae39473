package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mouse-blink/parcel/internal/adapter"
	"github.com/mouse-blink/parcel/internal/domain"
	m "github.com/mouse-blink/parcel/internal/model"
)

// ErrReported marks an error that has already been shown to the user.
var ErrReported = errors.New("already reported")

// ViewBinder wires user actions to the state owners and reports every
// outcome through the UI. It never writes state itself.
type ViewBinder struct {
	ws      *domain.Workspace
	ui      UI
	reader  adapter.GeometryReader
	exports adapter.ExportStore
	logger  *slog.Logger
}

// NewViewBinder creates a binder over the given workspace.
func NewViewBinder(
	ws *domain.Workspace,
	ui UI,
	reader adapter.GeometryReader,
	exports adapter.ExportStore,
	logger *slog.Logger,
) *ViewBinder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &ViewBinder{
		ws:      ws,
		ui:      ui,
		reader:  reader,
		exports: exports,
		logger:  logger,
	}
}

// WithExports returns a binder over the same session that writes exports
// to store.
func (b *ViewBinder) WithExports(store adapter.ExportStore) *ViewBinder {
	out := *b
	out.exports = store

	return &out
}

// Start configures the project context. A missing project is reported once
// here; later saves fail with their own notification.
func (b *ViewBinder) Start(projectID int64) error {
	if err := b.ws.Terrain.Configure(projectID); err != nil {
		b.logger.Debug("project context missing", "error", err)
		b.ui.Notify(configNotification())

		return b.reported(err)
	}

	return nil
}

// Draw replaces the active geometry with the polygon found at path.
func (b *ViewBinder) Draw(path m.Path) error {
	geom, err := b.reader.ReadGeometry(path)
	if err == nil {
		err = b.ws.Geometry.SetFromDraw(geom)
	}

	if err != nil {
		return b.fail(actionDraw, err)
	}

	b.ui.Notify(Notification{
		Level:   LevelSuccess,
		Title:   "Polígono dibujado",
		Message: fmt.Sprintf("%s de %.2f m². Guárdelo para poder subdividirlo.", geom.Type(), geom.Area()),
	})

	return nil
}

// Edit replaces the active geometry with an edited version read from path.
// The terrain keeps its id and name.
func (b *ViewBinder) Edit(path m.Path) error {
	geom, err := b.reader.ReadGeometry(path)
	if err == nil {
		err = b.ws.Geometry.SetFromEdit(geom)
	}

	if err != nil {
		return b.fail(actionEdit, err)
	}

	b.ui.Notify(Notification{
		Level:   LevelSuccess,
		Title:   "Polígono editado",
		Message: fmt.Sprintf("Nueva área: %.2f m².", geom.Area()),
	})

	return nil
}

// Save persists the active geometry under name. A blank name falls back to
// the name of the current terrain.
func (b *ViewBinder) Save(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		name = b.ws.Terrain.Current().Name
	}

	geom, _ := b.ws.Geometry.Current()

	identity, err := b.ws.Terrain.Save(ctx, name, geom)
	if err != nil {
		return b.fail(actionSave, err)
	}

	b.ui.Notify(Notification{
		Level:   LevelSuccess,
		Title:   "Guardado exitoso",
		Message: fmt.Sprintf("Terreno guardado con ID: %d", identity.ID),
	})

	return nil
}

// Load fetches the terrain whose id the user typed.
func (b *ViewBinder) Load(ctx context.Context, rawID string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil || id <= 0 {
		return b.fail(actionLoad, &domain.ValidationError{Field: domain.FieldID, Reason: fmt.Sprintf("%q is not a terrain id", rawID)})
	}

	identity, found, err := b.ws.Terrain.Load(ctx, id)
	if err != nil {
		return b.fail(actionLoad, err)
	}

	if !found {
		b.ui.Notify(notFoundNotification(id))
		return b.reported(fmt.Errorf("terrain %d: %w", id, adapter.ErrNotFound))
	}

	b.ui.Notify(Notification{
		Level:   LevelSuccess,
		Title:   "Terreno cargado",
		Message: fmt.Sprintf("Terreno %q (ID %d) cargado.", identity.Name, identity.ID),
	})

	return nil
}

// Subdivide splits the active terrain into lotCount lots using method.
func (b *ViewBinder) Subdivide(ctx context.Context, lotCount int, method string) error {
	geom, _ := b.ws.Geometry.Current()

	result, err := b.ws.Subdivision.Subdivide(ctx, b.ws.Terrain.Current().ID, geom, lotCount, method)
	if err != nil {
		return b.fail(actionSubdivide, err)
	}

	summary := result.Lots.Summary()
	b.ui.Notify(Notification{
		Level:   LevelSuccess,
		Title:   "Subdivisión completada",
		Message: fmt.Sprintf("Método: %s. Lotes creados: %d. Área total: %.2f m².", result.Method, summary.Count, summary.TotalArea),
	})

	return nil
}

// Clear drops the active geometry, the terrain identity and the lots.
func (b *ViewBinder) Clear() {
	b.ws.Geometry.Clear()
	b.ui.Notify(Notification{
		Level:   LevelInfo,
		Title:   "Mapa limpio",
		Message: "Se eliminaron el polígono, el terreno y los lotes.",
	})
}

// Export writes the current lots as a GeoJSON file and returns its path.
func (b *ViewBinder) Export() (m.Path, error) {
	sub, ok := b.ws.Subdivision.Last()
	if !ok {
		return "", b.fail(actionExport, &domain.ValidationError{Field: domain.FieldLots, Reason: "no lots to export"})
	}

	data, err := domain.ExportLots(sub)
	if err != nil {
		return "", b.fail(actionExport, err)
	}

	path, err := b.exports.WriteExport(domain.ExportFileName(b.ws.Terrain.Current().ID), data)
	if err != nil {
		return "", b.fail(actionExport, err)
	}

	b.ui.Notify(Notification{
		Level:   LevelSuccess,
		Title:   "Exportación completada",
		Message: fmt.Sprintf("%d lotes exportados a %s", len(sub.Lots), path),
	})

	return path, nil
}

// SaveLots persists the current lots on the backend.
func (b *ViewBinder) SaveLots(ctx context.Context) error {
	ids, err := b.ws.Subdivision.SaveLots(ctx, b.ws.Terrain.Current().Name)
	if err != nil {
		if len(ids) > 0 {
			b.logger.Debug("lots partially saved", "saved", len(ids))
		}

		return b.fail(actionSaveLots, err)
	}

	b.ui.Notify(Notification{
		Level:   LevelSuccess,
		Title:   "Lotes guardados",
		Message: fmt.Sprintf("%d lotes guardados en el servidor.", len(ids)),
	})

	return nil
}

// Status derives the status indicators from the current state.
func (b *ViewBinder) Status() StatusView {
	geom, ok := b.ws.Geometry.Current()
	project, _ := b.ws.Terrain.Project()

	return buildStatus(b.ws.Terrain.Current(), geom, ok, project, len(b.ws.Subdivision.Lots()))
}

// Lots derives the lot summary from the current state.
func (b *ViewBinder) Lots() LotsView {
	return buildLots(b.ws.Subdivision.Last())
}

// Refresh redraws the status and the lot summary.
func (b *ViewBinder) Refresh() error {
	if err := b.ui.DisplayStatus(b.Status()); err != nil {
		return err
	}

	return b.ui.DisplayLots(b.Lots())
}

func (b *ViewBinder) fail(act action, err error) error {
	b.logger.Debug("action failed", "error", err)
	b.ui.Notify(failureNotification(act, err))

	return b.reported(err)
}

func (b *ViewBinder) reported(err error) error {
	return fmt.Errorf("%w: %w", ErrReported, err)
}
