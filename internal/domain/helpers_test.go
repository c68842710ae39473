package domain

import (
	"fmt"

	"github.com/mouse-blink/parcel/internal/adapter"
	m "github.com/mouse-blink/parcel/internal/model"
	"github.com/paulmach/orb"
)

func polygon(size float64) m.Geometry {
	return m.MustGeometry(orb.Polygon{{{0, 0}, {0, size}, {size, size}, {size, 0}, {0, 0}}})
}

func lots(areas ...float64) m.LotCollection {
	out := make(m.LotCollection, 0, len(areas))
	for _, area := range areas {
		out = append(out, m.Lot{Geometry: polygon(0.0001), AreaSquareMeters: area})
	}

	return out
}

func adapterNotFound() error {
	return fmt.Errorf("GET /terrains/999/: %w", adapter.ErrNotFound)
}
