// Package report formats configuration and frame statistics for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/olivierh59500/backdrop/internal/config"
	"github.com/olivierh59500/backdrop/internal/engine"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4E03C"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#86868B")).Width(22)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#002FFF")).
			Padding(0, 1)
)

func row(key string, value any) string {
	return keyStyle.Render(key) + valueStyle.Render(fmt.Sprint(value))
}

// Config renders the effective configuration as a bordered table.
func Config(cfg *config.Config) string {
	rows := []string{
		titleStyle.Render("backdrop"),
		row("grid size", cfg.GridSize),
		row("particles", cfg.ParticleCount),
		row("connection distance", cfg.ConnectionDistance),
		row("particle speed", cfg.ParticleSpeed),
		row("max line opacity", cfg.MaxLineOpacity),
		row("colors", strings.Join([]string{cfg.Colors.Accent1, cfg.Colors.Accent2, cfg.Colors.Background}, " ")),
		row("flow strength", cfg.Flow.Strength),
		row("reveal threshold", cfg.Reveal.Threshold),
		row("cards", len(cfg.Cards)),
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Summary holds aggregate connection counts over a run.
type Summary struct {
	Frames   int
	MinEdges int
	MaxEdges int
	AvgEdges float64
}

func Summarize(stats []engine.Stats) Summary {
	var s Summary
	if len(stats) == 0 {
		return s
	}
	s.Frames = len(stats)
	s.MinEdges = stats[0].Edges
	total := 0
	for _, st := range stats {
		s.MinEdges = min(s.MinEdges, st.Edges)
		s.MaxEdges = max(s.MaxEdges, st.Edges)
		total += st.Edges
	}
	s.AvgEdges = float64(total) / float64(len(stats))
	return s
}

// Frames plots the number of connections drawn per frame, followed by a summary.
func Frames(stats []engine.Stats, width, height int) string {
	if len(stats) == 0 {
		return "no frames recorded\n"
	}
	series := make([]float64, len(stats))
	for i, st := range stats {
		series[i] = float64(st.Edges)
	}
	plot := asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption("connections per frame"),
	)

	s := Summarize(stats)
	summary := lipgloss.JoinVertical(lipgloss.Left,
		row("frames", s.Frames),
		row("particles", stats[0].Particles),
		row("grid lines", stats[len(stats)-1].GridLines),
		row("edges min/avg/max", fmt.Sprintf("%d / %.1f / %d", s.MinEdges, s.AvgEdges, s.MaxEdges)),
	)
	return plot + "\n\n" + boxStyle.Render(summary) + "\n"
}
