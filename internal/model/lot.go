package model

// Lot is one polygon produced by subdividing a terrain.
type Lot struct {
	Geometry         Geometry
	AreaSquareMeters float64
}

// LotCollection is the ordered output of a subdivision request.
type LotCollection []Lot

// LotSummary holds aggregate figures derived from a LotCollection.
type LotSummary struct {
	Count       int
	TotalArea   float64
	AverageArea float64
}

// Summary derives count, total and average area. It is recomputed on
// every call and never cached.
func (lc LotCollection) Summary() LotSummary {
	summary := LotSummary{Count: len(lc)}

	for _, lot := range lc {
		summary.TotalArea += lot.AreaSquareMeters
	}

	if summary.Count > 0 {
		summary.AverageArea = summary.TotalArea / float64(summary.Count)
	}

	return summary
}

// Clone returns a copy whose backing array is not shared.
func (lc LotCollection) Clone() LotCollection {
	if lc == nil {
		return nil
	}

	out := make(LotCollection, len(lc))
	copy(out, lc)

	return out
}

// Subdivision is the full result of a successful subdivide call: the lots plus
// the terrain and method that produced them.
type Subdivision struct {
	TerrainID int64
	Method    string
	Lots      LotCollection
}

// Snapshot is the client state carried between process runs.
type Snapshot struct {
	Terrain     TerrainIdentity
	Subdivision *Subdivision
}
