// ABOUTME: Progress bar widgets with score-aware coloring
// ABOUTME: Used for trust scores and tutor evaluation scores

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ScoreBarConfig holds configuration for a score bar
type ScoreBarConfig struct {
	Width         int
	WarnThreshold float64 // Scores below this render amber
	CritThreshold float64 // Scores below this render red
	OKColor       lipgloss.Color
	WarnColor     lipgloss.Color
	CritColor     lipgloss.Color
	EmptyColor    lipgloss.Color
}

// DefaultScoreBarConfig returns defaults tuned for 0-100 trust scores
func DefaultScoreBarConfig() ScoreBarConfig {
	return ScoreBarConfig{
		Width:         20,
		WarnThreshold: 70,
		CritThreshold: 40,
		OKColor:       lipgloss.Color("#10B981"), // Green
		WarnColor:     lipgloss.Color("#F59E0B"), // Amber
		CritColor:     lipgloss.Color("#EF4444"), // Red
		EmptyColor:    lipgloss.Color("#374151"), // Dark gray
	}
}

// ScoreBar renders a 0-100 score as a colored bar. Higher is better,
// so low scores get the alarm colors.
func ScoreBar(score float64, config ScoreBarConfig) string {
	if config.Width <= 0 {
		config.Width = 20
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	filled := int(score / 100.0 * float64(config.Width))
	if filled > config.Width {
		filled = config.Width
	}

	color := config.OKColor
	if score < config.WarnThreshold {
		color = config.WarnColor
	}
	if score < config.CritThreshold {
		color = config.CritColor
	}

	var bar strings.Builder
	bar.WriteString("[")
	bar.WriteString(lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)))
	bar.WriteString(lipgloss.NewStyle().Foreground(config.EmptyColor).Render(strings.Repeat("░", config.Width-filled)))
	bar.WriteString("]")
	return bar.String()
}

// ScoreBarWithLabel renders a score bar followed by the numeric value
func ScoreBarWithLabel(score float64, config ScoreBarConfig) string {
	bar := ScoreBar(score, config)

	color := config.OKColor
	if score < config.WarnThreshold {
		color = config.WarnColor
	}
	if score < config.CritThreshold {
		color = config.CritColor
	}

	label := lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%3.0f", score))
	return fmt.Sprintf("%s %s", bar, label)
}

// CompactBar renders a minimal bar for tight spaces
func CompactBar(score float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		width = 10
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	filled := int(score / 100.0 * float64(width))
	empty := width - filled

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("▓", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")).Render(strings.Repeat("░", empty))
}
