package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/kikaportals/internal/portal"
)

type keyMap struct {
	ForceQuit key.Binding
	Quit      key.Binding
	Dismiss   key.Binding
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Search    key.Binding
	Back      key.Binding

	// form mode
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding

	// menu
	Home           key.Binding
	Jobs           key.Binding
	MyApplications key.Binding
	Login          key.Binding
	Register       key.Binding
	Logout         key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Dismiss:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),

		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),

		Home:           key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		Jobs:           key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "jobs")),
		MyApplications: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "my applications")),
		Login:          key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "login")),
		Register:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "register")),
		Logout:         key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "logout")),
	}
}

// forItem is the binding that triggers a menu entry.
func (k keyMap) forItem(item portal.MenuItem) key.Binding {
	if item.Action == portal.ActionLogout {
		return k.Logout
	}
	switch item.Target {
	case portal.ViewJobs:
		return k.Jobs
	case portal.ViewMyApplications:
		return k.MyApplications
	case portal.ViewLogin:
		return k.Login
	case portal.ViewRegister:
		return k.Register
	default:
		return k.Home
	}
}
