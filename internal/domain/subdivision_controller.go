package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mouse-blink/parcel/internal/adapter"
	m "github.com/mouse-blink/parcel/internal/model"
)

// ErrNoLots is reported when the backend answers with an empty result.
var ErrNoLots = errors.New("backend produced no lots")

// SubdivisionController mediates subdivision requests and owns the lots of
// the last successful one.
type SubdivisionController struct {
	api    adapter.TerrainAPI
	last   *m.Subdivision
	guard  guard
	logger *slog.Logger
}

// NewSubdivisionController creates a controller whose lots are cleared on
// every change of the given geometry store.
func NewSubdivisionController(api adapter.TerrainAPI, geometry *GeometryStore, logger *slog.Logger) *SubdivisionController {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &SubdivisionController{
		api:    api,
		guard:  newGuard(),
		logger: logger,
	}
	geometry.Subscribe(func(GeometryChange) { c.clear() })

	return c
}

// Subdivide asks the backend to split the terrain and replaces the lots with
// the result. On any failure the previous result is kept.
func (c *SubdivisionController) Subdivide(ctx context.Context, terrainID int64, geometry m.Geometry, lotCount int, method string) (m.Subdivision, error) {
	method = strings.TrimSpace(method)

	switch {
	case terrainID == 0:
		return m.Subdivision{}, invalid(FieldTerrain, "save or load a terrain first")
	case geometry.IsZero():
		return m.Subdivision{}, invalid(FieldGeometry, "terrain has no geometry")
	case lotCount <= 0:
		return m.Subdivision{}, invalid(FieldLotCount, "lot count must be a positive integer")
	case method == "":
		return m.Subdivision{}, invalid(FieldMethod, "method is required")
	}

	release, err := c.guard.acquire()
	if err != nil {
		return m.Subdivision{}, err
	}
	defer release()

	c.logger.Debug("subdivision requested", "terrain_id", terrainID, "lots", lotCount, "method", method)

	lots, err := c.api.Subdivide(ctx, terrainID, adapter.SubdivideRequest{
		Geometry: geometry,
		LotCount: lotCount,
		Method:   method,
	})
	if err == nil && len(lots) == 0 {
		err = ErrNoLots
	}

	if err != nil {
		c.logger.Debug("subdivision failed", "terrain_id", terrainID, "method", method, "error", err)
		return m.Subdivision{}, &BackendError{Op: OpSubdivide, Err: err}
	}

	result := m.Subdivision{
		TerrainID: terrainID,
		Method:    method,
		Lots:      lots.Clone(),
	}
	c.last = &result
	c.logger.Info("terrain subdivided", "terrain_id", terrainID, "method", method, "lots", len(lots))

	out, _ := c.Last()

	return out, nil
}

// Last returns the current result and whether there is one.
func (c *SubdivisionController) Last() (m.Subdivision, bool) {
	if c.last == nil {
		return m.Subdivision{}, false
	}

	out := *c.last
	out.Lots = c.last.Lots.Clone()

	return out, true
}

// Lots returns a copy of the current lot collection.
func (c *SubdivisionController) Lots() m.LotCollection {
	if c.last == nil {
		return nil
	}

	return c.last.Lots.Clone()
}

// Summary derives count and areas from the current lots.
func (c *SubdivisionController) Summary() m.LotSummary {
	if c.last == nil {
		return m.LotSummary{}
	}

	return c.last.Lots.Summary()
}

// SaveLots persists every lot of the current result, numbered after the
// terrain name. It returns the ids created before any failure.
func (c *SubdivisionController) SaveLots(ctx context.Context, terrainName string) ([]int64, error) {
	if c.last == nil || len(c.last.Lots) == 0 {
		return nil, invalid(FieldLots, "no lots to save")
	}

	release, err := c.guard.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	prefix := strings.TrimSpace(terrainName)
	if prefix == "" {
		prefix = fmt.Sprintf("terreno%d", c.last.TerrainID)
	}

	ids := make([]int64, 0, len(c.last.Lots))

	for i, lot := range c.last.Lots {
		id, err := c.api.CreateLot(ctx, adapter.CreateLotRequest{
			TerrainID:        c.last.TerrainID,
			Number:           fmt.Sprintf("%s-%d", prefix, i+1),
			Geometry:         lot.Geometry,
			AreaSquareMeters: lot.AreaSquareMeters,
		})
		if err != nil {
			c.logger.Debug("save lot failed", "terrain_id", c.last.TerrainID, "lot", i+1, "error", err)
			return ids, &BackendError{Op: OpSaveLots, Err: err}
		}

		ids = append(ids, id)
	}

	c.logger.Info("lots saved", "terrain_id", c.last.TerrainID, "count", len(ids))

	return ids, nil
}

func (c *SubdivisionController) clear() {
	if c.last != nil {
		c.logger.Debug("lots cleared")
	}

	c.last = nil
}

func (c *SubdivisionController) restore(sub *m.Subdivision) {
	if sub == nil || len(sub.Lots) == 0 {
		c.last = nil
		return
	}

	out := *sub
	out.Lots = sub.Lots.Clone()
	c.last = &out
}
