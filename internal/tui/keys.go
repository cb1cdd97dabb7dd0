package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings handled by the model itself. Navigation and
// filtering are left to the list and viewport.
type keyMap struct {
	Preview key.Binding
	Open    key.Binding
	Reload  key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Preview: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "preview"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// listHelp returns the bindings shown in the list help bar.
func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Preview, k.Open, k.Reload}
}
