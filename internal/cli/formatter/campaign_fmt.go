package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/culiacan/internal/contract"
	"github.com/alexanderramin/culiacan/internal/domain"
)

const slotProgressBarWidth = 10

// FormatSlots renders the save-slot listing.
func FormatSlots(views []contract.SlotView, now time.Time) string {
	headers := []string{"SLOT", "CAMPAIGN", "DIFFICULTY", "MISSION", "PROGRESS", "SCORE", "SAVED"}
	rows := make([][]string, 0, len(views))
	used := 0
	for _, v := range views {
		num := Bold(fmt.Sprintf("%d", v.Number))
		switch {
		case v.Empty:
			rows = append(rows, []string{num, Dim("empty"), "", "", "", "", ""})
		case v.Corrupt:
			rows = append(rows, []string{num, StyleRed.Render("corrupt save"), "", "", "", "", ""})
		default:
			used++
			rows = append(rows, []string{
				num,
				TruncID(v.CampaignID),
				DifficultyBadge(v.Difficulty),
				StyleFg.Render(v.MissionName),
				RenderProgress(v.CompletionPct/100, slotProgressBarWidth),
				FormatScore(v.TotalScore),
				SavedAgo(v.SavedAt, now),
			})
		}
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d of %d slots in use", used, len(views))))
	return RenderBox("Save Slots", b.String())
}

// FormatCampaign renders a campaign's mission ladder and the pressure the
// next mission starts from.
func FormatCampaign(st contract.SessionStatus, p *domain.CampaignProgress) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n", Bold("Campaign"), TruncID(st.CampaignID), DifficultyBadge(st.Difficulty))
	fmt.Fprintf(&b, "%s %s\n\n", RenderProgress(st.CompletionPct/100, 20),
		Dim(fmt.Sprintf("%d/%d missions · score %s", p.CompletedCount(), st.MissionCount, FormatScore(st.TotalScore))))

	b.WriteString(Header("Missions") + "\n")
	for _, m := range domain.Missions() {
		b.WriteString(missionLine(m, p) + "\n")
	}

	if !st.CampaignComplete {
		b.WriteString("\n" + Header("Starting pressure") + "\n")
		b.WriteString(FormatSignals(st))
	}
	return RenderBox("Campaign", b.String())
}

func missionLine(m domain.Mission, p *domain.CampaignProgress) string {
	label := fmt.Sprintf("%2d. %-26s %s", m.Index+1, m.Name, m.TimestampLabel)
	switch {
	case m.Index < p.UnlockedIndex:
		line := StyleGreen.Render("✔ " + label)
		if best, ok := p.BestTime(m.ID); ok {
			line += Dim("  best " + FormatSeconds(best))
		}
		return line
	case m.Index == p.UnlockedIndex:
		return StyleHeader.Render("▶ " + label)
	default:
		return Dim("· " + label)
	}
}

// FormatMissions lists the missions a campaign has unlocked.
func FormatMissions(p *domain.CampaignProgress) string {
	headers := []string{"#", "MISSION", "ID", "TIME", "BEST"}
	var rows [][]string
	for _, m := range p.UnlockedMissions() {
		best := Dim("--")
		if sec, ok := p.BestTime(m.ID); ok {
			best = FormatSeconds(sec)
		}
		name := StyleFg.Render(m.Name)
		if m.Index == p.UnlockedIndex {
			name = StyleHeader.Render(m.Name)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.Index+1), name, Dim(string(m.ID)), m.TimestampLabel, best,
		})
	}
	return RenderTable(headers, rows)
}

// FormatBriefing renders the pre-mission briefing.
func FormatBriefing(m domain.Mission, d domain.DifficultyLevel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(m.Name), Dim(fmt.Sprintf("%s · %s", m.TimestampLabel, SignalLabel(m.Neighborhood))))
	b.WriteString(StyleFg.Render(m.Description) + "\n\n")

	b.WriteString(Header("Initial raid") + "\n")
	for _, o := range m.InitialObjectives {
		b.WriteString("  " + objectiveText(o.Kind, o.Target, o.Amount) + "\n")
	}
	b.WriteString("\n" + Header("Negotiation") + "\n")
	for _, o := range m.NegotiationObjectives {
		b.WriteString("  " + objectiveText(o.Kind, o.Target, o.Amount) + "\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Negotiation opens at stability %.2f, or after %s of urban conflict %s.\n",
		m.NegotiationThreshold, FormatClock(m.ScaledConflictTimer(d)), Dim("("+string(d)+")"))
	fmt.Fprintf(&b, "The government capitulates at stability %.2f.", m.ResolutionThreshold)
	return RenderBox(fmt.Sprintf("Mission %d", m.Index+1), b.String())
}

func objectiveText(kind domain.ObjectiveKind, target string, amount int) string {
	switch kind {
	case domain.ObjectiveDefend:
		return "Defend " + target
	case domain.ObjectiveSurvive:
		return "Survive " + FormatClock(time.Duration(amount)*time.Second)
	case domain.ObjectiveEliminate:
		return fmt.Sprintf("Eliminate %d hostiles", amount)
	case domain.ObjectiveControl:
		return "Control " + target
	default:
		return string(kind)
	}
}

// FormatHistory renders a slot's save audit trail, newest first.
func FormatHistory(entries []contract.HistoryView, now time.Time) string {
	headers := []string{"SAVED", "CAMPAIGN", "MISSIONS", "PROGRESS"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		at := e.SavedAt
		rows = append(rows, []string{
			fmt.Sprintf("%s %s", at.Format("2006-01-02 15:04"), Dim("("+SavedAgo(&at, now)+")")),
			TruncID(e.CampaignID),
			fmt.Sprintf("%d/%d", e.UnlockedIndex, domain.MissionCount),
			RenderProgress(e.CompletionPct/100, slotProgressBarWidth),
		})
	}
	return RenderTable(headers, rows)
}
