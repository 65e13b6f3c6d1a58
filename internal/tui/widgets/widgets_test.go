// ABOUTME: Tests for badge, score bar, and metric block widgets
// ABOUTME: Checks status mapping, threshold coloring, and layout sizing

package widgets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillserve/marketplace-cli/internal/tui/icons"
)

func TestVerificationBadgeLabels(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"approved", "APPROVED"},
		{"rejected", "REJECTED"},
		{"pending", "PENDING"},
		{"unknown", "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Contains(t, VerificationBadge(tt.status), tt.want)
		})
	}
}

func TestBookingBadgeLabels(t *testing.T) {
	assert.Contains(t, BookingBadge("pending"), "PENDING")
	assert.Contains(t, BookingBadge("accepted"), "ACCEPTED")
	assert.Contains(t, BookingBadge("completed"), "COMPLETED")
	assert.Contains(t, BookingBadge("cancelled"), "CANCELLED")
}

func TestTrustLevelThresholds(t *testing.T) {
	tests := []struct {
		score     float64
		wantLabel string
		wantLevel StatusLevel
	}{
		{100, "Trusted", StatusOK},
		{70, "Trusted", StatusOK},
		{69.9, "Building trust", StatusWarning},
		{40, "Building trust", StatusWarning},
		{39.9, "Low trust", StatusCritical},
		{0, "Low trust", StatusCritical},
	}

	for _, tt := range tests {
		label, level := TrustLevel(tt.score)
		assert.Equal(t, tt.wantLabel, label, "score %.1f", tt.score)
		assert.Equal(t, tt.wantLevel, level, "score %.1f", tt.score)
	}
}

func TestScoreBarFillProportion(t *testing.T) {
	config := DefaultScoreBarConfig()
	config.Width = 10

	full := ScoreBar(100, config)
	assert.Equal(t, 10, strings.Count(full, "█"))
	assert.Equal(t, 0, strings.Count(full, "░"))

	half := ScoreBar(50, config)
	assert.Equal(t, 5, strings.Count(half, "█"))
	assert.Equal(t, 5, strings.Count(half, "░"))

	empty := ScoreBar(0, config)
	assert.Equal(t, 0, strings.Count(empty, "█"))
	assert.Equal(t, 10, strings.Count(empty, "░"))
}

func TestScoreBarClampsOutOfRange(t *testing.T) {
	config := DefaultScoreBarConfig()
	config.Width = 10

	assert.Equal(t, 10, strings.Count(ScoreBar(150, config), "█"))
	assert.Equal(t, 0, strings.Count(ScoreBar(-20, config), "█"))
}

func TestScoreBarWithLabelShowsValue(t *testing.T) {
	out := ScoreBarWithLabel(82, DefaultScoreBarConfig())
	assert.Contains(t, out, "82")
}

func TestCompactBarWidth(t *testing.T) {
	out := CompactBar(50, 8, BadgeOKBg)
	assert.Equal(t, 4, strings.Count(out, "▓"))
	assert.Equal(t, 4, strings.Count(out, "░"))
}

func TestMetricBlockContainsParts(t *testing.T) {
	config := DefaultMetricBlockConfig()
	config.Width = 30
	out := MetricBlock(icons.Star, "Rating", "4.6 / 5", "from customer ratings", config)

	assert.Contains(t, out, "Rating")
	assert.Contains(t, out, "4.6 / 5")
	assert.Contains(t, out, "from customer ratings")
}

func TestScoreBlockRendersScore(t *testing.T) {
	config := DefaultMetricBlockConfig()
	out := ScoreBlock(icons.Tutor, "Skill", 81, "demo lesson score", config)

	assert.Contains(t, out, "Skill")
	assert.Contains(t, out, "81")
}

func TestTruncateLongText(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
	assert.Equal(t, "long te...", truncate("long text overflows", 10))
}
