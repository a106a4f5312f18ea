package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name  string
		frac  float64
		width int
		want  string
	}{
		{"empty", 0, 4, "[░░░░]   0%"},
		{"half", 0.5, 4, "[██░░]  50%"},
		{"full", 1, 4, "[████] 100%"},
		{"over clamps", 1.7, 4, "[████] 100%"},
		{"negative clamps", -0.2, 4, "[░░░░]   0%"},
		{"tiny width clamps to 2", 0.5, 1, "[█░]  50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderProgress(tt.frac, tt.width)))
		})
	}
}

func TestRenderGauge_MarksThresholds(t *testing.T) {
	got := stripANSI(RenderGauge(0.5, 10, 0.25, 0.75))
	assert.Equal(t, "[██│██░░│░░] 0.500", got)

	// A mark at 1.0 lands on the last cell.
	got = stripANSI(RenderGauge(0, 4, 1))
	assert.Equal(t, "[░░░│] 0.000", got)
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := RenderTable(
		[]string{"A", "NAME"},
		[][]string{{StyleRed.Render("100"), "x"}, {"7", Bold("longer")}},
	)
	lines := strings.Split(strings.TrimRight(stripANSI(out), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "A    NAME", lines[0])
	assert.Equal(t, "───  ──────", lines[1])
	assert.Equal(t, "100  x", lines[2])
	assert.Equal(t, "7    longer", lines[3])
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:00", FormatClock(0))
	assert.Equal(t, "0:00", FormatClock(-time.Minute))
	assert.Equal(t, "4:00", FormatClock(240*time.Second))
	assert.Equal(t, "2:05", FormatClock(125400*time.Millisecond))
	assert.Equal(t, "1:00:01", FormatClock(time.Hour+time.Second))
	assert.Equal(t, "2:10", FormatSeconds(130))
}

func TestSavedAgo(t *testing.T) {
	now := time.Date(2019, 10, 17, 18, 15, 0, 0, time.UTC)
	at := now.Add(-3 * time.Hour)
	assert.Equal(t, "3 hours ago", SavedAgo(&at, now))
	assert.Equal(t, "never", stripANSI(SavedAgo(nil, now)))
}

func TestHeaderAndLabels(t *testing.T) {
	assert.Equal(t, "BRIEFING\n────────", stripANSI(Header("Briefing")))
	assert.Equal(t, "Tres Rios", SignalLabel("tres_rios"))
	assert.Equal(t, "Elite", stripANSI(DifficultyBadge("elite")))
	assert.Equal(t, "--", stripANSI(DifficultyBadge("")))
	assert.Equal(t, "0123abcd", stripANSI(TruncID("0123abcd-ffff")))
	assert.Equal(t, 1, lipgloss.Height(PhaseIndicator("initial_raid")))
}
