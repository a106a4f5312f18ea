package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/culiacan/internal/cli/formatter"
	"github.com/alexanderramin/culiacan/internal/contract"
	"github.com/alexanderramin/culiacan/internal/domain"
	"github.com/alexanderramin/culiacan/internal/game"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	eventStep     = 0.05
	playLogLength = 6
)

// frameMsg advances the session clock by one frame.
type frameMsg struct{ elapsed time.Duration }

// autoSaveMsg fires on the auto-save interval.
type autoSaveMsg struct{}

// saveResultMsg reports a background write. outcomes is the outcome count of
// the snapshot that was written.
type saveResultMsg struct {
	at       time.Time
	outcomes int
	auto     bool
	err      error
}

func tickFrame(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg { return frameMsg{elapsed: every} })
}

func tickAutoSave(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(time.Time) tea.Msg { return autoSaveMsg{} })
}

// playModel is the bubbletea model behind `culiacan play`. It owns the
// session; the session is only touched from Update, and frames pause while
// a save is in flight. Saves write a snapshot taken in Update and the
// session is marked saved when the result comes back.
type playModel struct {
	app  *App
	slot int
	sess *game.Session

	keys     playKeyMap
	help     help.Model
	interval time.Duration
	schedule func(time.Duration) tea.Cmd

	autoSave         time.Duration
	scheduleAutoSave func(time.Duration) tea.Cmd

	log     []string
	notice  string
	warning string

	savedOutcomes int
	saving        bool
	confirmQuit   bool
	quitting      bool
}

func newPlayModel(app *App, slot int, sess *game.Session) playModel {
	interval := app.Config.TickInterval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return playModel{
		app:              app,
		slot:             slot,
		sess:             sess,
		keys:             defaultPlayKeys(),
		help:             help.New(),
		interval:         interval,
		schedule:         tickFrame,
		autoSave:         app.Config.AutoSaveInterval,
		scheduleAutoSave: tickAutoSave,
		savedOutcomes:    len(sess.Progress().Outcomes),
	}
}

func (m playModel) Init() tea.Cmd {
	return tea.Batch(m.schedule(m.interval), m.nextAutoSave())
}

func (m playModel) nextAutoSave() tea.Cmd {
	if m.autoSave <= 0 {
		return nil
	}
	return m.scheduleAutoSave(m.autoSave)
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		if m.quitting {
			return m, nil
		}
		if !m.saving {
			m.record(m.sess.Tick(msg.elapsed))
		}
		return m, m.schedule(m.interval)

	case autoSaveMsg:
		if m.quitting {
			return m, nil
		}
		if m.saving || !m.dirty() || m.sess.CampaignComplete() {
			return m, m.nextAutoSave()
		}
		m.saving = true
		m.notice = "auto-saving..."
		return m, tea.Batch(m.saveCmd(true), m.nextAutoSave())

	case saveResultMsg:
		m.saving = false
		prefix := "save"
		if msg.auto {
			prefix = "auto-save"
		}
		if msg.err != nil {
			m.warning = prefix + " failed: " + slotError(m.slot, msg.err).Error()
			return m, nil
		}
		m.sess.MarkSaved(msg.at)
		m.savedOutcomes = msg.outcomes
		m.warning = ""
		m.notice = fmt.Sprintf("%sd to slot %d", prefix, m.slot)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.dirty() && !m.confirmQuit && msg.String() != "ctrl+c" {
			m.confirmQuit = true
			m.warning = "unsaved progress: press q again to quit, s to save"
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	m.confirmQuit = false
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if m.saving {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Casualty):
		m.apply(domain.PressureEvent{Kind: domain.EventCivilianCasualties, Count: 1})
	case key.Matches(msg, m.keys.Economic):
		m.apply(domain.PressureEvent{Kind: domain.EventEconomicDisruption, Delta: eventStep})
	case key.Matches(msg, m.keys.Media):
		m.apply(domain.PressureEvent{Kind: domain.EventMediaEngagement, Delta: eventStep})
	case key.Matches(msg, m.keys.Elite):
		m.apply(domain.PressureEvent{Kind: domain.EventElitePressure, Delta: eventStep})
	case key.Matches(msg, m.keys.MoraleUp):
		m.apply(domain.PressureEvent{Kind: domain.EventMorale, Delta: eventStep})
	case key.Matches(msg, m.keys.MoraleDn):
		m.apply(domain.PressureEvent{Kind: domain.EventMorale, Delta: -eventStep})
	case key.Matches(msg, m.keys.Objective):
		if id, ok := m.sess.CompleteNextObjective(); ok {
			m.notice = "objective complete: " + id
		} else {
			m.notice = "no objective pending in this phase"
		}
	case key.Matches(msg, m.keys.Abandon):
		m.record(m.sess.AbandonMission())
		m.notice = "mission restarted"
	case key.Matches(msg, m.keys.Save):
		m.saving = true
		m.notice = "saving..."
		return m, m.saveCmd(false)
	}
	return m, nil
}

func (m *playModel) apply(e domain.PressureEvent) {
	m.record(m.sess.ApplyEvent(e))
}

func (m *playModel) record(sigs []contract.Signal) {
	for _, s := range sigs {
		m.log = append(m.log, formatter.FormatSignal(s))
	}
	if len(m.log) > playLogLength {
		m.log = m.log[len(m.log)-playLogLength:]
	}
}

// saveCmd snapshots the progress now and writes the snapshot off the event
// loop. The Cmd never touches the session.
func (m playModel) saveCmd(auto bool) tea.Cmd {
	svc, slot, progress := m.app.Campaign, m.slot, m.sess.Progress()
	return func() tea.Msg {
		at, err := svc.SaveProgress(context.Background(), slot, progress)
		return saveResultMsg{at: at, outcomes: len(progress.Outcomes), auto: auto, err: err}
	}
}

// dirty reports whether mission outcomes were recorded since the last save.
// Progress inside a mission is not persisted.
func (m playModel) dirty() bool {
	return len(m.sess.Progress().Outcomes) != m.savedOutcomes
}

func (m playModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(formatter.FormatHUD(m.sess.Status()))
	b.WriteString("\n")
	for _, line := range m.log {
		b.WriteString(line + "\n")
	}
	if m.warning != "" {
		b.WriteString(formatter.StyleRed.Render(m.warning) + "\n")
	} else if m.notice != "" {
		b.WriteString(formatter.Dim(m.notice) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}
