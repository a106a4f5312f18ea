package cli

import "github.com/charmbracelet/bubbles/key"

type playKeyMap struct {
	Casualty  key.Binding
	Economic  key.Binding
	Media     key.Binding
	Elite     key.Binding
	MoraleUp  key.Binding
	MoraleDn  key.Binding
	Objective key.Binding
	Abandon   key.Binding
	Save      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultPlayKeys() playKeyMap {
	return playKeyMap{
		Casualty:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "casualties")),
		Economic:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "economy")),
		Media:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "media")),
		Elite:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "elites")),
		MoraleUp:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "morale up")),
		MoraleDn:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "morale down")),
		Objective: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "objective")),
		Abandon:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "abandon mission")),
		Save:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k playKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Objective, k.Save, k.Help, k.Quit}
}

func (k playKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Casualty, k.Economic, k.Media, k.Elite},
		{k.MoraleUp, k.MoraleDn, k.Objective, k.Abandon},
		{k.Save, k.Help, k.Quit},
	}
}
