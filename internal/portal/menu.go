package portal

// Action is what a menu entry does when chosen.
type Action int

const (
	ActionNavigate Action = iota
	ActionLogout
)

// MenuItem is one entry of the navigation bar.
type MenuItem struct {
	Label  string
	Action Action
	Target View
}

// Menu lists the navigation entries offered for a session. My Applications
// and Logout only appear once logged in; Login and Register only before.
func Menu(sess Session) []MenuItem {
	items := []MenuItem{
		{Label: "Home", Action: ActionNavigate, Target: ViewHome},
		{Label: "Jobs", Action: ActionNavigate, Target: ViewJobs},
	}
	if sess.LoggedIn {
		return append(items,
			MenuItem{Label: "My Applications", Action: ActionNavigate, Target: ViewMyApplications},
			MenuItem{Label: "Logout", Action: ActionLogout},
		)
	}
	return append(items,
		MenuItem{Label: "Login", Action: ActionNavigate, Target: ViewLogin},
		MenuItem{Label: "Register", Action: ActionNavigate, Target: ViewRegister},
	)
}

// Apply runs the item against s.
func (m MenuItem) Apply(s State) State {
	if m.Action == ActionLogout {
		return s.Logout()
	}
	return s.Navigate(m.Target)
}
