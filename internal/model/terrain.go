package model

// ProjectContext identifies the project new terrains are filed under.
// It is set once per process; a zero ProjectID means no project is configured.
type ProjectContext struct {
	ProjectID int64
}

// Valid reports whether a project id is present.
func (p ProjectContext) Valid() bool {
	return p.ProjectID > 0
}

// TerrainIdentity is the client's view of the active terrain.
// ID is zero for a locally drafted terrain that has never been saved.
type TerrainIdentity struct {
	ID       int64
	Name     string
	Geometry Geometry
}

// Saved reports whether the terrain has a backend id.
func (t TerrainIdentity) Saved() bool {
	return t.ID != 0
}

// IsZero reports whether the identity is in its cleared state.
func (t TerrainIdentity) IsZero() bool {
	return t.ID == 0 && t.Name == "" && t.Geometry.IsZero()
}

// TerrainRecord is a terrain as stored by the backend.
type TerrainRecord struct {
	ID        int64
	ProjectID int64
	Name      string
	Geometry  Geometry
}

// Identity converts the record into the client identity.
func (r TerrainRecord) Identity() TerrainIdentity {
	return TerrainIdentity{
		ID:       r.ID,
		Name:     r.Name,
		Geometry: r.Geometry,
	}
}
