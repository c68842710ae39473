package controller

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using the cobra command's writers.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Notify prints one line; warnings and errors go to stderr.
func (s *SimpleUI) Notify(n Notification) {
	w := s.cmd.OutOrStdout()
	if n.Level == LevelWarning || n.Level == LevelError {
		w = s.cmd.ErrOrStderr()
	}

	_, _ = fmt.Fprintf(w, "[%s] %s: %s\n", n.Level, n.Title, n.Message)
}

// DisplayStatus prints the status indicators.
func (s *SimpleUI) DisplayStatus(status StatusView) error {
	s.printf("Estado: %s\n", status.Kind.Text())
	s.printf("ID del terreno: %s\n", status.IDLabel)

	if status.Name != "" {
		s.printf("Nombre: %s\n", status.Name)
	}

	if status.Kind != StatusInactive {
		s.printf("Geometría: %s, %.2f m²\n", status.GeometryType, status.Area)
	}

	if status.ProjectID > 0 {
		s.printf("Proyecto: %d\n", status.ProjectID)
	}

	return nil
}

// DisplayLots prints the headline and, when there are lots, a table.
func (s *SimpleUI) DisplayLots(lots LotsView) error {
	s.printf("%s\n", lots.Headline)

	if lots.Empty() {
		return nil
	}

	var tableBuffer bytes.Buffer

	writeLotTable(&tableBuffer, lots)
	s.printf("\n%s", tableBuffer.String())
	s.printf("Área total: %.2f m²\n", lots.TotalArea)
	s.printf("Área promedio: %.2f m² por lote\n", lots.AverageArea)

	return nil
}

func writeLotTable(w io.Writer, lots LotsView) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Lote", "Área (m²)", "%"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, row := range lots.Rows {
		table.Append([]string{
			fmt.Sprintf("%d", row.Number),
			fmt.Sprintf("%.2f", row.Area),
			fmt.Sprintf("%.1f", row.Percent),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", lots.Count),
		fmt.Sprintf("%.2f", lots.TotalArea),
		"100.0",
	})

	table.Render()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
