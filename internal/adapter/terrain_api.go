// Package adapter provides the ports between the terrain client and the outside
// world: the backend HTTP API, local files, and cookie input.
package adapter

import (
	"context"
	"errors"
	"fmt"

	m "github.com/mouse-blink/parcel/internal/model"
)

// ErrNotFound is returned when the backend answers 404.
var ErrNotFound = errors.New("not found")

// ErrTimeout is returned when a request exceeds its deadline.
var ErrTimeout = errors.New("request timed out")

// APIError is a non-2xx backend response other than 404.
type APIError struct {
	StatusCode int
	// Message is extracted from the response body; empty when the body had none.
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// CreateTerrainRequest is the body of POST /terrains/.
type CreateTerrainRequest struct {
	ProjectID int64
	Name      string
	Geometry  m.Geometry
}

// SubdivideRequest is the body of POST /terrains/{id}/subdivide/.
type SubdivideRequest struct {
	Geometry m.Geometry
	LotCount int
	Method   string
}

// CreateLotRequest is the body of POST /lots/.
type CreateLotRequest struct {
	TerrainID        int64
	Number           string
	Geometry         m.Geometry
	AreaSquareMeters float64
}

// TerrainAPI is the backend surface the client consumes.
type TerrainAPI interface {
	CreateTerrain(ctx context.Context, req CreateTerrainRequest) (m.TerrainRecord, error)
	GetTerrain(ctx context.Context, id int64) (m.TerrainRecord, error)
	Subdivide(ctx context.Context, terrainID int64, req SubdivideRequest) (m.LotCollection, error)
	CreateLot(ctx context.Context, req CreateLotRequest) (int64, error)
}
