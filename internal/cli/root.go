package cli

import (
	"time"

	"github.com/alexanderramin/culiacan/internal/config"
	"github.com/alexanderramin/culiacan/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds what CLI commands need: the campaign service, the resolved
// configuration and the terminal hooks.
type App struct {
	Campaign service.CampaignService
	Config   config.Config

	// IsInteractive reports whether stdin is a terminal. Nil means it is not.
	IsInteractive func() bool

	// Confirm asks a yes/no question. Nil uses a huh form.
	Confirm func(title, description string) (bool, error)

	// RunProgram runs a bubbletea model to completion. Nil uses tea.NewProgram
	// on the alternate screen.
	RunProgram func(m tea.Model) (tea.Model, error)

	// Now is the wall clock for relative timestamps. Nil uses time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) runProgram(m tea.Model) (tea.Model, error) {
	if a.RunProgram != nil {
		return a.RunProgram(m)
	}
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

// NewRootCmd creates the top-level "culiacan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "culiacan",
		Short: "Culiacán, 17 October 2019: a campaign of political pressure",
		Long: "Play the thirteen missions of the Culiacán campaign. Pressure built in\n" +
			"one mission carries into the next; progress lives in ten save slots.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newNewCmd(app),
		newSlotsCmd(app),
		newShowCmd(app),
		newMissionsCmd(app),
		newHistoryCmd(app),
		newDeleteCmd(app),
		newBriefingCmd(app),
		newSimulateCmd(app),
		newPlayCmd(app),
	)

	return root
}
