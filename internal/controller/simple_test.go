package controller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func sampleLots() LotsView {
	return LotsView{
		Headline:    "2 lotes generados por line",
		Method:      "line",
		TerrainID:   42,
		Count:       2,
		TotalArea:   300,
		AverageArea: 150,
		Rows: []LotRow{
			{Number: 1, Area: 100, Percent: 33.333},
			{Number: 2, Area: 200, Percent: 66.667},
		},
	}
}

func TestSimpleUI_DisplayLots_PrintsTable(t *testing.T) {
	cmd, out, _ := newTestCmd()

	require.NoError(t, NewSimpleUI(cmd).DisplayLots(sampleLots()))

	output := out.String()
	for _, want := range []string{
		"2 lotes generados por line",
		"Lote",
		"Área (m²)",
		"100.00",
		"200.00",
		"33.3",
		"66.7",
		"Total 2",
		"300.00",
		"Área promedio: 150.00 m² por lote",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayLots_Empty(t *testing.T) {
	cmd, out, _ := newTestCmd()

	require.NoError(t, NewSimpleUI(cmd).DisplayLots(LotsView{Headline: noLotsHeadline}))
	assert.Equal(t, "No se han generado lotes aún.\n", out.String())
}

func TestSimpleUI_DisplayStatus(t *testing.T) {
	cmd, out, _ := newTestCmd()

	require.NoError(t, NewSimpleUI(cmd).DisplayStatus(StatusView{
		Kind:         StatusActive,
		IDLabel:      "42",
		Name:         "Lote A",
		GeometryType: "Polygon",
		Area:         1234.5,
		ProjectID:    7,
	}))

	output := out.String()
	assert.Contains(t, output, "Estado: Terreno cargado")
	assert.Contains(t, output, "ID del terreno: 42")
	assert.Contains(t, output, "Nombre: Lote A")
	assert.Contains(t, output, "Polygon, 1234.50 m²")
	assert.Contains(t, output, "Proyecto: 7")
}

func TestSimpleUI_Notify(t *testing.T) {
	cmd, out, errOut := newTestCmd()
	ui := NewSimpleUI(cmd)

	ui.Notify(Notification{Level: LevelSuccess, Title: "Guardado exitoso", Message: "Terreno guardado con ID: 42"})
	ui.Notify(Notification{Level: LevelError, Title: "Error al cargar", Message: "boom"})

	assert.Equal(t, "[success] Guardado exitoso: Terreno guardado con ID: 42\n", out.String())
	assert.Equal(t, "[error] Error al cargar: boom\n", errOut.String())
}
