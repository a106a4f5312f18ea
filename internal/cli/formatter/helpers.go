package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatClock renders a mission clock as m:ss, or h:mm:ss past an hour.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second) / time.Second)
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatSeconds renders a best time stored as float seconds.
func FormatSeconds(sec float64) string {
	return FormatClock(time.Duration(sec * float64(time.Second)))
}

// SavedAgo renders a save timestamp relative to now, e.g. "3 hours ago".
func SavedAgo(at *time.Time, now time.Time) string {
	if at == nil {
		return Dim("never")
	}
	return humanize.RelTime(*at, now, "ago", "from now")
}

// FormatScore renders a campaign score with thousands separators.
func FormatScore(score int) string {
	return humanize.Comma(int64(score))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if id == "" {
		return StyleDim.Render("--")
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// SignalLabel turns a snake_case signal name into a title.
func SignalLabel(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
