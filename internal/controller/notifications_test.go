package controller

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mouse-blink/parcel/internal/adapter"
	"github.com/mouse-blink/parcel/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFailureNotification(t *testing.T) {
	tests := []struct {
		name      string
		act       action
		err       error
		wantLevel Level
		wantTitle string
		wantMsg   string
	}{
		{
			name:      "busy",
			act:       actionSave,
			err:       domain.ErrBusy,
			wantLevel: LevelWarning,
			wantTitle: "Operación en curso",
		},
		{
			name:      "geometry missing on subdivide",
			act:       actionSubdivide,
			err:       &domain.ValidationError{Field: domain.FieldGeometry},
			wantLevel: LevelWarning,
			wantTitle: "Geometría faltante",
		},
		{
			name:      "backend message wins",
			act:       actionLoad,
			err:       &domain.BackendError{Op: domain.OpLoad, Err: &adapter.APIError{StatusCode: 500, Message: "Error interno"}},
			wantLevel: LevelError,
			wantTitle: "Error al cargar",
			wantMsg:   "Error interno",
		},
		{
			name:      "generic fallback",
			act:       actionSave,
			err:       &domain.BackendError{Op: domain.OpSave, Err: errors.New("connection refused")},
			wantLevel: LevelError,
			wantTitle: "Error al guardar",
			wantMsg:   "Error de red o servidor al guardar el polígono.",
		},
		{
			name:      "terrain vanished",
			act:       actionSubdivide,
			err:       &domain.BackendError{Op: domain.OpSubdivide, Err: fmt.Errorf("x: %w", adapter.ErrNotFound)},
			wantLevel: LevelError,
			wantTitle: "Error en subdivisión",
			wantMsg:   "El terreno ya no existe en el servidor.",
		},
		{
			name:      "plain error",
			act:       actionExport,
			err:       errors.New("disk full"),
			wantLevel: LevelError,
			wantTitle: "Error al exportar",
			wantMsg:   "disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := failureNotification(tt.act, tt.err)
			assert.Equal(t, tt.wantLevel, n.Level)
			assert.Equal(t, tt.wantTitle, n.Title)

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, n.Message)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "success", LevelSuccess.String())
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "unknown", Level(99).String())
}
