package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)

	levelStyles = map[Level]lipgloss.Style{
		LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}

	statusStyles = map[StatusKind]lipgloss.Style{
		StatusActive:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		StatusUnsavedNew: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		StatusInactive:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}

	levelIcons = map[Level]string{
		LevelSuccess: "✔",
		LevelInfo:    "ℹ",
		LevelWarning: "⚠",
		LevelError:   "✖",
	}
)

// TUI implements UI with lipgloss styling and a Bubble Tea pager for long
// lot tables. Warnings and errors go to errOutput.
type TUI struct {
	output    io.Writer
	errOutput io.Writer
}

// NewTUI creates a new TUI. A nil errOutput falls back to output.
func NewTUI(output, errOutput io.Writer) *TUI {
	if errOutput == nil {
		errOutput = output
	}

	return &TUI{output: output, errOutput: errOutput}
}

// Notify prints a styled notification line.
func (t *TUI) Notify(n Notification) {
	w := t.output
	if n.Level == LevelWarning || n.Level == LevelError {
		w = t.errOutput
	}

	style := levelStyles[n.Level]
	line := fmt.Sprintf("%s %s %s\n",
		style.Render(levelIcons[n.Level]),
		style.Render(n.Title),
		n.Message,
	)
	_, _ = fmt.Fprint(w, line)
}

// DisplayStatus renders the status panel.
func (t *TUI) DisplayStatus(status StatusView) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Terreno"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "● %s\n", statusStyles[status.Kind].Render(status.Kind.Text()))
	fmt.Fprintf(&b, "ID: %s\n", status.IDLabel)

	if status.Name != "" {
		fmt.Fprintf(&b, "Nombre: %s\n", status.Name)
	}

	if status.Kind != StatusInactive {
		fmt.Fprintf(&b, "Área: %.2f m² (%s)\n", status.Area, status.GeometryType)
	}

	if status.ProjectID > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Proyecto %d", status.ProjectID)))
	} else {
		b.WriteString(mutedStyle.Render("Proyecto sin configurar"))
	}

	_, err := fmt.Fprintln(t.output, panelStyle.Render(b.String()))

	return err
}

// DisplayLots renders the lot table. Tables taller than the terminal are
// shown in a scrollable pager.
func (t *TUI) DisplayLots(lots LotsView) error {
	model := newLotsModel(lots)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	model.resize()

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// reservedLines is the space taken by headline, table header, totals and help.
const reservedLines = 8

// lotsModel is the Bubble Tea model paging through the lot table.
type lotsModel struct {
	view     LotsView
	table    table.Model
	width    int
	height   int
	quitting bool
}

func newLotsModel(view LotsView) lotsModel {
	rows := make([]table.Row, 0, len(view.Rows))
	for _, row := range view.Rows {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", row.Number),
			fmt.Sprintf("%.2f", row.Area),
			fmt.Sprintf("%.1f", row.Percent),
		})
	}

	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "Lote", Width: 6},
			{Title: "Área (m²)", Width: 14},
			{Title: "%", Width: 7},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("6"))
	tbl.SetStyles(styles)

	return lotsModel{view: view, table: tbl}
}

func (lm lotsModel) needsPagination() bool {
	if lm.height == 0 || lm.view.Empty() {
		return false
	}

	return len(lm.view.Rows) > lm.height-reservedLines
}

func (lm *lotsModel) resize() {
	available := lm.height - reservedLines
	if available < 1 {
		available = 1
	}

	lm.table.SetHeight(available)
	lm.table.Focus()
}

func (lm lotsModel) Init() tea.Cmd {
	return nil
}

func (lm lotsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		lm.width = msg.Width
		lm.height = msg.Height
		lm.resize()

		return lm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			lm.quitting = true
			return lm, tea.Quit
		}
	}

	var cmd tea.Cmd

	lm.table, cmd = lm.table.Update(msg)

	return lm, cmd
}

func (lm lotsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(lm.view.Headline))
	b.WriteString("\n")

	if lm.view.Empty() {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(lm.table.View())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Área total: %.2f m²\n", lm.view.TotalArea)
	fmt.Fprintf(&b, "Área promedio: %.2f m² por lote\n", lm.view.AverageArea)

	if lm.table.Focused() {
		b.WriteString(mutedStyle.Render("↑/k: arriba | ↓/j: abajo | q: salir"))
		b.WriteString("\n")
	}

	return b.String()
}
