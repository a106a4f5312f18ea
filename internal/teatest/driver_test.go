package teatest

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type bumpMsg struct{}

// counter counts key presses and bumps. "b" schedules a bump, "t" a bump
// behind a timer that never fires in time, "x" quits.
type counter struct {
	presses, bumps int
	width          int
	init           tea.Cmd
	quitSeen       bool
}

func (c counter) Init() tea.Cmd { return c.init }

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case bumpMsg:
		c.bumps++
	case tea.QuitMsg:
		c.quitSeen = true
	case tea.KeyMsg:
		c.presses++
		switch msg.String() {
		case "b":
			return c, tea.Batch(bump, bump)
		case "t":
			return c, tea.Tick(time.Hour, func(time.Time) tea.Msg { return bumpMsg{} })
		case "x", "ctrl+c":
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c counter) View() string { return fmt.Sprintf("%d/%d", c.presses, c.bumps) }

func bump() tea.Msg { return bumpMsg{} }

func TestDriver_RunsBatchedCmdsInline(t *testing.T) {
	d := New(t, counter{init: bump}, WithSize(80, 24))
	d.DrainInit()
	assert.Equal(t, 80, d.Model.(counter).width)
	assert.Equal(t, "0/1", d.View())

	d.Press("ab")
	assert.Equal(t, "2/3", d.View())
}

func TestDriver_AbandonsBlockingCmds(t *testing.T) {
	d := New(t, counter{}, WithCmdTimeout(5*time.Millisecond))
	d.PressTimes('t', 2)
	assert.Equal(t, 2, d.Abandoned)
	assert.Equal(t, "2/0", d.View())
}

func TestDriver_IgnoresInputAfterQuit(t *testing.T) {
	d := New(t, counter{})
	d.PressKey('x')
	assert.True(t, d.Quitting)
	assert.True(t, d.Model.(counter).quitSeen)

	d.PressKey('a')
	d.PressCtrlC()
	assert.Equal(t, "1/0", d.View())
}
