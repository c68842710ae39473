package controller

import (
	"fmt"
	"strconv"

	m "github.com/mouse-blink/parcel/internal/model"
)

// StatusKind is the terrain status indicator.
type StatusKind int

// Available StatusKind values.
const (
	StatusInactive StatusKind = iota
	StatusActive
	StatusUnsavedNew
)

// Text returns the label shown next to the indicator.
func (k StatusKind) Text() string {
	switch k {
	case StatusActive:
		return "Terreno cargado"
	case StatusUnsavedNew:
		return "Terreno nuevo (no guardado)"
	default:
		return "No hay terreno cargado"
	}
}

// StatusView is what the status panel shows.
type StatusView struct {
	Kind         StatusKind
	IDLabel      string
	Name         string
	GeometryType string
	Area         float64
	ProjectID    int64
	LotCount     int
}

// LotRow is one line of the lot table.
type LotRow struct {
	Number  int
	Area    float64
	Percent float64
}

// LotsView is what the lot panel shows.
type LotsView struct {
	Headline    string
	Method      string
	TerrainID   int64
	Count       int
	TotalArea   float64
	AverageArea float64
	Rows        []LotRow
}

// Empty reports whether there is nothing to list.
func (v LotsView) Empty() bool {
	return len(v.Rows) == 0
}

const noLotsHeadline = "No se han generado lotes aún."

func buildStatus(identity m.TerrainIdentity, geometry m.Geometry, hasGeometry bool, project m.ProjectContext, lotCount int) StatusView {
	view := StatusView{
		Kind:      StatusInactive,
		IDLabel:   "N/A",
		ProjectID: project.ProjectID,
		LotCount:  lotCount,
	}

	if !hasGeometry {
		return view
	}

	view.GeometryType = geometry.Type()
	view.Area = geometry.Area()
	view.Name = identity.Name

	if identity.Saved() {
		view.Kind = StatusActive
		view.IDLabel = strconv.FormatInt(identity.ID, 10)
	} else {
		view.Kind = StatusUnsavedNew
		view.IDLabel = "Nuevo"
	}

	return view
}

func buildLots(sub m.Subdivision, ok bool) LotsView {
	if !ok || len(sub.Lots) == 0 {
		return LotsView{Headline: noLotsHeadline}
	}

	summary := sub.Lots.Summary()
	view := LotsView{
		Headline:    fmt.Sprintf("%d lotes generados por %s", summary.Count, sub.Method),
		Method:      sub.Method,
		TerrainID:   sub.TerrainID,
		Count:       summary.Count,
		TotalArea:   summary.TotalArea,
		AverageArea: summary.AverageArea,
		Rows:        make([]LotRow, 0, len(sub.Lots)),
	}

	for i, lot := range sub.Lots {
		row := LotRow{Number: i + 1, Area: lot.AreaSquareMeters}
		if summary.TotalArea > 0 {
			row.Percent = lot.AreaSquareMeters / summary.TotalArea * 100
		}

		view.Rows = append(view.Rows, row)
	}

	return view
}
