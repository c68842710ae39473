package controller

import (
	"errors"
	"fmt"

	"github.com/mouse-blink/parcel/internal/adapter"
	"github.com/mouse-blink/parcel/internal/domain"
)

// action names the user action a notification reports on.
type action int

const (
	actionDraw action = iota
	actionEdit
	actionSave
	actionLoad
	actionSubdivide
	actionExport
	actionSaveLots
)

type failureText struct {
	title    string
	fallback string
}

var failures = map[action]failureText{
	actionDraw:      {"Geometría inválida", "No se pudo leer el polígono dibujado."},
	actionEdit:      {"Geometría inválida", "No se pudo leer el polígono editado."},
	actionSave:      {"Error al guardar", "Error de red o servidor al guardar el polígono."},
	actionLoad:      {"Error al cargar", "Error de red o servidor al cargar el polígono."},
	actionSubdivide: {"Error en subdivisión", "Ocurrió un error al intentar subdividir el terreno."},
	actionExport:    {"Error al exportar", "No se pudo escribir el archivo de lotes."},
	actionSaveLots:  {"Error al guardar lotes", "Error de red o servidor al guardar los lotes."},
}

func configNotification() Notification {
	return Notification{
		Level:   LevelError,
		Title:   "Error de Configuración",
		Message: "No se pudo cargar el ID del proyecto. Configure project_id e intente de nuevo.",
	}
}

func notFoundNotification(id int64) Notification {
	return Notification{
		Level:   LevelError,
		Title:   "Terreno no encontrado",
		Message: fmt.Sprintf("Terreno %d no encontrado. Verifique el ID.", id),
	}
}

// failureNotification maps an operation error to the single notification
// shown for it.
func failureNotification(act action, err error) Notification {
	var (
		configErr  *domain.ConfigError
		invalidErr *domain.ValidationError
		backendErr *domain.BackendError
	)

	switch {
	case errors.As(err, &configErr):
		return Notification{
			Level:   LevelError,
			Title:   "Error de Proyecto",
			Message: "No se pudo obtener el ID del proyecto. Configure project_id o contacte al soporte.",
		}
	case errors.As(err, &invalidErr):
		return validationNotification(act, invalidErr)
	case errors.Is(err, domain.ErrBusy):
		return Notification{
			Level:   LevelWarning,
			Title:   "Operación en curso",
			Message: "Espere a que termine la operación anterior.",
		}
	case errors.As(err, &backendErr):
		return backendNotification(act, backendErr)
	}

	text := failures[act]

	return Notification{Level: LevelError, Title: text.title, Message: messageOr(err.Error(), text.fallback)}
}

func validationNotification(act action, err *domain.ValidationError) Notification {
	n := Notification{Level: LevelWarning}

	switch err.Field {
	case domain.FieldGeometry:
		if act == actionSubdivide {
			n.Title, n.Message = "Geometría faltante", "No se pudo obtener la geometría del polígono para subdividir."
		} else {
			n.Title, n.Message = "Polígono faltante", "Por favor, dibuje un polígono primero."
		}
	case domain.FieldName:
		n.Title, n.Message = "Nombre requerido", "Por favor, ingrese un nombre para el terreno."
	case domain.FieldID:
		n.Title, n.Message = "ID faltante", "Por favor, ingrese un ID de terreno válido."
	case domain.FieldTerrain:
		n.Title, n.Message = "Terreno faltante", "Por favor, guarde o cargue un terreno primero."
	case domain.FieldLotCount:
		n.Title, n.Message = "Número inválido", "Por favor, ingrese un número válido de lotes (mayor que 0)."
	case domain.FieldMethod:
		n.Title, n.Message = "Método faltante", "Por favor, indique un método de subdivisión."
	case domain.FieldLots:
		verb := "exportar"
		if act == actionSaveLots {
			verb = "guardar"
		}

		n.Title, n.Message = "No hay lotes", fmt.Sprintf("No hay lotes para %s. Realice una subdivisión primero.", verb)
	default:
		n.Title, n.Message = "Dato inválido", err.Error()
	}

	return n
}

func backendNotification(act action, err *domain.BackendError) Notification {
	text := failures[act]
	n := Notification{Level: LevelError, Title: text.title}

	switch {
	case err.TimedOut():
		n.Message = "El servidor no respondió a tiempo. Intente de nuevo."
	case errors.Is(err, domain.ErrNoLots):
		n.Message = "No se generaron lotes válidos."
	case errors.Is(err, adapter.ErrNotFound) && act == actionSubdivide:
		n.Message = "El terreno ya no existe en el servidor."
	default:
		n.Message = messageOr(err.Message(), text.fallback)
	}

	return n
}

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}

	return msg
}
