package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/culiacan/internal/contract"
)

const (
	signalBarWidth = 20
	gaugeWidth     = 40
)

// FormatSignals renders one bar per pressure signal followed by the
// stability gauge with both phase thresholds marked.
func FormatSignals(st contract.SessionStatus) string {
	var b strings.Builder
	for _, sv := range st.Signals {
		fmt.Fprintf(&b, "  %-20s %s %s\n",
			SignalLabel(string(sv.Signal)),
			RenderProgress(sv.Value, signalBarWidth),
			Dim(fmt.Sprintf("w=%.2f", sv.Weight)))
	}
	marks := []float64{}
	if !st.CampaignComplete {
		marks = append(marks, st.NegotiationThreshold, st.ResolutionThreshold)
	}
	fmt.Fprintf(&b, "  %-20s %s\n", "Stability", RenderGauge(st.Stability, gaugeWidth, marks...))
	return b.String()
}

// FormatHUD renders the in-mission heads-up display.
func FormatHUD(st contract.SessionStatus) string {
	if st.CampaignComplete {
		var b strings.Builder
		b.WriteString(StyleGreen.Render("Campaign complete. Ovidio walks free.") + "\n")
		b.WriteString(Dim("final score "+FormatScore(st.TotalScore)) + "\n\n")
		b.WriteString(FormatSignals(st))
		return RenderBox("Culiacán, 17 October 2019", b.String())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n",
		Bold(fmt.Sprintf("%d/%d %s", st.MissionIndex+1, st.MissionCount, st.MissionName)),
		Dim(st.Timestamp+" · "+SignalLabel(st.Neighborhood)),
		DifficultyBadge(st.Difficulty))

	clock := "clock " + FormatClock(st.Elapsed)
	if st.ConflictRemaining != nil {
		clock += StyleYellow.Render("  negotiation forced in " + FormatClock(*st.ConflictRemaining))
	}
	fmt.Fprintf(&b, "%s  %s  %s\n\n", PhaseIndicator(st.Phase), clock, Dim("score "+FormatScore(st.TotalScore)))

	b.WriteString(FormatSignals(st))
	b.WriteString("\n")
	for _, o := range st.Objectives {
		mark := Dim("○")
		if o.Done {
			mark = StyleGreen.Render("✔")
		}
		fmt.Fprintf(&b, "  %s %s\n", mark, objectiveText(o.Kind, o.Target, o.Amount))
	}
	return RenderBox("Culiacán, 17 October 2019", b.String())
}

// FormatSignal renders one emitted session signal as a log line.
func FormatSignal(s contract.Signal) string {
	at := Dim("[" + FormatClock(s.At) + "]")
	switch s.Kind {
	case contract.SignalPhaseChanged:
		return fmt.Sprintf("%s %s → %s %s", at, s.From.Label(), PhaseStyle(s.To).Render(s.To.Label()), Dim("("+s.Reason+")"))
	case contract.SignalMissionComplete:
		return fmt.Sprintf("%s %s", at, StyleGreen.Render(s.Message))
	case contract.SignalCampaignComplete:
		return fmt.Sprintf("%s %s", at, StyleGreen.Bold(true).Render(s.Message))
	case contract.SignalInputClamped:
		return fmt.Sprintf("%s %s", at, StyleYellow.Render("clamped: "+s.Message))
	default:
		return fmt.Sprintf("%s %s %s", at, s.Kind, s.Message)
	}
}
