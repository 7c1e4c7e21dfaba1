// Package terminal renders schedule state for the command line.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"deepworktimer/internal/core/model"
	"deepworktimer/internal/core/schedule"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorMuted  = lipgloss.Color("#666666")
	colorSubtle = lipgloss.Color("#414868")
	colorFg     = lipgloss.Color("#C0CAF5")
)

// Renderer styles output for one writer's color profile.
type Renderer struct {
	renderer *lipgloss.Renderer
}

// New creates a renderer for w. Colors are dropped when w is not a terminal.
func New(w io.Writer) *Renderer {
	return &Renderer{renderer: lipgloss.NewRenderer(w)}
}

// Status renders the snapshot as a bordered panel.
func (r *Renderer) Status(snapshot schedule.Snapshot) string {
	phaseColor := lipgloss.Color(snapshot.Color())

	title := r.renderer.NewStyle().Bold(true).Foreground(phaseColor).Render(snapshot.CurrentName())
	remaining := r.renderer.NewStyle().Bold(true).Foreground(colorFg).Render(snapshot.RemainingText())
	clock := r.renderer.NewStyle().Foreground(colorMuted).Render(snapshot.ClockText())
	next := r.renderer.NewStyle().Foreground(colorMuted).
		Render(fmt.Sprintf("Next: %s at %s", snapshot.NextName(), snapshot.NextStart()))

	header := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", remaining)
	body := lipgloss.JoinVertical(lipgloss.Left, clock, header, next, snapshot.Info())

	return r.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(phaseColor).
		Padding(0, 2).
		Render(body)
}

// Schedule renders one row per phase. The row at current, if any, is marked.
func (r *Renderer) Schedule(phases model.Schedule, current int) string {
	if len(phases) == 0 {
		return r.renderer.NewStyle().Foreground(colorMuted).Render("No phases scheduled")
	}

	nameWidth := 0
	for _, phase := range phases {
		if len(phase.Name) > nameWidth {
			nameWidth = len(phase.Name)
		}
	}

	rows := make([]string, 0, len(phases))
	for i, phase := range phases {
		marker := "  "
		if i == current {
			marker = "> "
		}
		dot := r.renderer.NewStyle().Foreground(lipgloss.Color(phase.Category.Color())).Render("●")
		name := r.renderer.NewStyle().Width(nameWidth).Render(phase.Name)
		category := r.renderer.NewStyle().Foreground(colorMuted).Render(string(phase.Category))
		row := fmt.Sprintf("%s%s-%s %s %s %s", marker, phase.Start, phase.End, dot, name, category)
		if i == current {
			row = r.renderer.NewStyle().Bold(true).Render(row)
		}
		rows = append(rows, row)
	}

	return r.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSubtle).
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))
}
