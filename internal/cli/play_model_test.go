package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/culiacan/internal/domain"
	"github.com/alexanderramin/culiacan/internal/game"
	"github.com/alexanderramin/culiacan/internal/service"
	"github.com/alexanderramin/culiacan/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playFirstMission completes the first mission of a session.
func playFirstMission(s *game.Session) {
	s.CompleteNextObjective()
	for _, k := range []domain.EventKind{domain.EventEconomicDisruption, domain.EventMediaEngagement, domain.EventElitePressure} {
		s.ApplyEvent(domain.PressureEvent{Kind: k, Delta: 1})
	}
	s.ApplyEvent(domain.PressureEvent{Kind: domain.EventMorale, Delta: -1})
	s.Tick(time.Second)
}

// failingSaves wraps a CampaignService and fails every save.
type failingSaves struct {
	service.CampaignService
	err error
}

func (f failingSaves) Save(context.Context, int, *game.Session) error { return f.err }

func (f failingSaves) SaveProgress(context.Context, int, *domain.CampaignProgress) (time.Time, error) {
	return time.Time{}, f.err
}

// newPlayDriver starts a play view on slot with frames delivered by hand.
func newPlayDriver(t *testing.T, app *App, slot int) *teatest.Driver {
	t.Helper()
	sess, err := app.Campaign.Load(context.Background(), slot)
	require.NoError(t, err)

	m := newPlayModel(app, slot, sess)
	m.schedule = func(time.Duration) tea.Cmd { return nil }
	m.scheduleAutoSave = func(time.Duration) tea.Cmd { return nil }
	d := teatest.New(t, m, teatest.WithSize(120, 50), teatest.WithCmdTimeout(2*time.Second))
	d.DrainInit()
	return d
}

func frame(d *teatest.Driver) {
	d.Send(frameMsg{elapsed: time.Second})
}

// escalate drives every pressure signal up and morale to zero from the keyboard.
func escalate(d *teatest.Driver) {
	for _, r := range "eml" {
		d.PressTimes(r, 20)
	}
	d.PressTimes('-', 20)
}

func TestPlay_FramesAdvanceTheMission(t *testing.T) {
	app, _ := testApp(t)
	_, err := app.Campaign.NewCampaign(context.Background(), 0, domain.DifficultyVeteran)
	require.NoError(t, err)
	d := newPlayDriver(t, app, 0)

	view := stripANSI(d.View())
	assert.Contains(t, view, "1/13 Initial Raid")
	assert.Contains(t, view, "● INITIAL RAID")
	assert.Contains(t, view, "q quit")

	frame(d)
	assert.Contains(t, stripANSI(d.View()), "clock 0:01")

	d.PressKey('o')
	assert.Contains(t, stripANSI(d.View()), "objective complete: defend-safehouse")
	frame(d)
	view = stripANSI(d.View())
	assert.Contains(t, view, "Initial Raid → Urban Conflict (objectives)")
	assert.Contains(t, view, "negotiation forced in 5:00")
}

func TestPlay_CompleteMissionSaveAndQuit(t *testing.T) {
	app, _ := testApp(t)
	ctx := context.Background()
	_, err := app.Campaign.NewCampaign(ctx, 0, domain.DifficultyVeteran)
	require.NoError(t, err)
	d := newPlayDriver(t, app, 0)

	d.PressKey('o')
	frame(d)
	escalate(d)
	frame(d)

	view := stripANSI(d.View())
	assert.Contains(t, view, "Initial Raid complete")
	assert.Contains(t, view, "2/13 Urban Warfare")

	d.PressKey('q')
	require.False(t, d.Quitting, "unsaved progress asks first")
	assert.Contains(t, stripANSI(d.View()), "unsaved progress")

	d.PressKey('s')
	assert.Contains(t, stripANSI(d.View()), "saved to slot 0")
	sess, err := app.Campaign.Load(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.Progress().UnlockedIndex)

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestPlay_FailedSaveWarnsAndPlayContinues(t *testing.T) {
	app, _ := testApp(t)
	_, err := app.Campaign.NewCampaign(context.Background(), 4, domain.DifficultyVeteran)
	require.NoError(t, err)
	d := newPlayDriver(t, app, 4)
	app.Campaign = failingSaves{CampaignService: app.Campaign, err: errors.New("disk full")}

	d.PressKey('s')
	view := stripANSI(d.View())
	assert.Contains(t, view, "save failed: disk full")
	assert.False(t, d.Quitting)

	frame(d)
	frame(d)
	assert.Contains(t, stripANSI(d.View()), "clock 0:02")
}

func TestPlay_AbandonRestartsMission(t *testing.T) {
	app, _ := testApp(t)
	_, err := app.Campaign.NewCampaign(context.Background(), 2, domain.DifficultyVeteran)
	require.NoError(t, err)
	d := newPlayDriver(t, app, 2)

	d.PressKey('o')
	frame(d)
	d.PressKey('r')

	view := stripANSI(d.View())
	assert.Contains(t, view, "mission restarted")
	assert.Contains(t, view, "● INITIAL RAID")
	assert.Contains(t, view, "clock 0:00")

	// An abandoned attempt is a recorded outcome, so quitting asks first.
	d.PressKey('q')
	assert.False(t, d.Quitting)
	d.PressCtrlC()
	assert.True(t, d.Quitting)
}

func TestPlay_CleanQuitAndHelpToggle(t *testing.T) {
	app, _ := testApp(t)
	_, err := app.Campaign.NewCampaign(context.Background(), 1, domain.DifficultyVeteran)
	require.NoError(t, err)
	d := newPlayDriver(t, app, 1)

	assert.NotContains(t, stripANSI(d.View()), "abandon mission")
	d.PressKey('?')
	assert.Contains(t, stripANSI(d.View()), "abandon mission")

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestPlayCmd_RunsProgramAndReportsUnsaved(t *testing.T) {
	app, _ := testApp(t)
	_, err := app.Campaign.NewCampaign(context.Background(), 3, domain.DifficultyVeteran)
	require.NoError(t, err)

	app.RunProgram = func(m tea.Model) (tea.Model, error) {
		pm := m.(playModel)
		pm.record(pm.sess.AbandonMission())
		return pm, nil
	}
	out, err := executeCmd(t, app, "play", "--slot", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Left slot 3 with unsaved progress.")

	_, err = executeCmd(t, app, "play", "--slot", "9")
	assert.ErrorContains(t, err, "slot empty")
}

func TestPlay_AutoSaveWritesOnlyUnsavedOutcomes(t *testing.T) {
	app, _ := testApp(t)
	ctx := context.Background()
	_, err := app.Campaign.NewCampaign(ctx, 0, domain.DifficultyVeteran)
	require.NoError(t, err)
	d := newPlayDriver(t, app, 0)

	d.Send(autoSaveMsg{})
	hist, err := app.Campaign.SlotHistory(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, hist, 1, "nothing new to write")
	assert.NotContains(t, stripANSI(d.View()), "auto-saved")

	d.PressKey('o')
	frame(d)
	escalate(d)
	frame(d)
	d.Send(autoSaveMsg{})

	assert.Contains(t, stripANSI(d.View()), "auto-saved to slot 0")
	hist, err = app.Campaign.SlotHistory(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, hist, 2)
	sess, err := app.Campaign.Load(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.Progress().UnlockedIndex)

	d.PressKey('q')
	assert.True(t, d.Quitting, "auto-save cleared the unsaved flag")
}

func TestPlay_AutoSaveFailureWarns(t *testing.T) {
	app, _ := testApp(t)
	_, err := app.Campaign.NewCampaign(context.Background(), 5, domain.DifficultyVeteran)
	require.NoError(t, err)
	d := newPlayDriver(t, app, 5)
	d.PressKey('r')
	app.Campaign = failingSaves{CampaignService: app.Campaign, err: errors.New("disk full")}

	d.Send(autoSaveMsg{})
	assert.Contains(t, stripANSI(d.View()), "auto-save failed: disk full")
	frame(d)
	assert.Contains(t, stripANSI(d.View()), "clock 0:01", "play continues")
}

func TestPlay_SaveMarksSessionOnlyInUpdate(t *testing.T) {
	app, _ := testApp(t)
	ctx := context.Background()
	_, err := app.Campaign.NewCampaign(ctx, 6, domain.DifficultyVeteran)
	require.NoError(t, err)
	sess, err := app.Campaign.Load(ctx, 6)
	require.NoError(t, err)
	before := *sess.Status().LastSaved

	m := newPlayModel(app, 6, sess)
	playFirstMission(m.sess)
	msg := m.saveCmd(false)()
	res, ok := msg.(saveResultMsg)
	require.True(t, ok)
	require.NoError(t, res.err)
	assert.Equal(t, 1, res.outcomes)
	assert.Equal(t, before, *m.sess.Status().LastSaved, "the write leaves the session alone")

	next, _ := m.Update(msg)
	pm := next.(playModel)
	require.NotNil(t, pm.sess.Status().LastSaved)
	assert.Equal(t, res.at, *pm.sess.Status().LastSaved)
	assert.False(t, pm.dirty())
}

func TestPlay_InitSchedulesAutoSave(t *testing.T) {
	app, _ := testApp(t)
	sess, err := app.Campaign.NewCampaign(context.Background(), 7, domain.DifficultyVeteran)
	require.NoError(t, err)

	var scheduled []time.Duration
	m := newPlayModel(app, 7, sess)
	m.schedule = func(time.Duration) tea.Cmd { return nil }
	m.scheduleAutoSave = func(every time.Duration) tea.Cmd {
		scheduled = append(scheduled, every)
		return nil
	}
	m.Init()
	assert.Equal(t, []time.Duration{time.Minute}, scheduled)

	m.autoSave = 0
	m.Init()
	assert.Len(t, scheduled, 1, "zero interval disables auto-save")
}
