package domain

import (
	"log/slog"

	m "github.com/mouse-blink/parcel/internal/model"
)

// ChangeKind tells subscribers why the active geometry changed.
type ChangeKind int

// Available ChangeKind values.
const (
	ChangeDraw ChangeKind = iota
	ChangeEdit
	ChangeLoad
	ChangeClear
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeDraw:
		return "draw"
	case ChangeEdit:
		return "edit"
	case ChangeLoad:
		return "load"
	case ChangeClear:
		return "clear"
	default:
		return "unknown"
	}
}

// GeometryChange is delivered to subscribers after every replacement.
type GeometryChange struct {
	Kind     ChangeKind
	Geometry m.Geometry
}

// GeometryStore owns the single active geometry. Every change replaces it
// wholesale and is announced to subscribers in registration order.
type GeometryStore struct {
	current     m.Geometry
	subscribers []func(GeometryChange)
	logger      *slog.Logger
}

// NewGeometryStore creates an empty store.
func NewGeometryStore(logger *slog.Logger) *GeometryStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &GeometryStore{logger: logger}
}

// Subscribe registers fn for every future change.
func (s *GeometryStore) Subscribe(fn func(GeometryChange)) {
	s.subscribers = append(s.subscribers, fn)
}

// SetFromDraw replaces the active geometry with a newly drawn polygon.
func (s *GeometryStore) SetFromDraw(g m.Geometry) error {
	return s.replace(ChangeDraw, g)
}

// SetFromEdit replaces the active geometry with an edited version of it.
func (s *GeometryStore) SetFromEdit(g m.Geometry) error {
	if s.current.IsZero() {
		return invalid(FieldGeometry, "nothing to edit")
	}

	return s.replace(ChangeEdit, g)
}

// SetFromLoad replaces the active geometry with one fetched from the backend.
func (s *GeometryStore) SetFromLoad(g m.Geometry) error {
	return s.replace(ChangeLoad, g)
}

// Clear drops the active geometry.
func (s *GeometryStore) Clear() {
	s.current = m.Geometry{}
	s.publish(GeometryChange{Kind: ChangeClear})
}

// Current returns the active geometry and whether one is set.
func (s *GeometryStore) Current() (m.Geometry, bool) {
	return s.current, !s.current.IsZero()
}

func (s *GeometryStore) replace(kind ChangeKind, g m.Geometry) error {
	if g.IsZero() {
		return invalid(FieldGeometry, "geometry is empty")
	}

	s.current = g
	s.publish(GeometryChange{Kind: kind, Geometry: g})

	return nil
}

func (s *GeometryStore) publish(change GeometryChange) {
	s.logger.Debug("geometry changed", "kind", change.Kind.String(), "type", change.Geometry.Type())

	for _, fn := range s.subscribers {
		fn(change)
	}
}

// restore sets the geometry without notifying subscribers.
func (s *GeometryStore) restore(g m.Geometry) {
	s.current = g
}
