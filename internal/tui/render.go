package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/kikaportals/internal/portal"
)

func (a *App) View() string {
	s := a.ctrl.State()
	parts := []string{a.renderMenu(s)}
	if !s.Notice.Empty() {
		parts = append(parts, noticeStyle.Render(s.Notice.Text)+" "+mutedStyle.Render("[x] dismiss"))
	}
	if a.picking {
		parts = append(parts, titleStyle.Render("Choose your resume"), a.picker.View(), mutedStyle.Render("[enter] select  [esc] cancel"))
	} else if body := a.renderBody(s); body != "" {
		parts = append(parts, body)
	}
	if a.status != "" {
		parts = append(parts, statusErrStyle.Render(a.status))
	}
	parts = append(parts, a.renderHelp(s), a.renderFooter())
	return strings.Join(parts, "\n\n")
}

func (a *App) renderBody(s portal.State) string {
	switch s.View {
	case portal.ViewJobs:
		return a.renderJobs()
	case portal.ViewApply:
		return a.renderApply(s)
	case portal.ViewMyApplications:
		return a.renderApplications()
	case portal.ViewLogin:
		return a.renderLogin(s)
	case portal.ViewRegister:
		return a.renderRegister(s)
	default:
		return a.renderHome()
	}
}

func (a *App) renderMenu(s portal.State) string {
	brand := a.cfg.UI.Brand
	if brand == "" {
		brand = "kikaportals"
	}
	items := []string{brandStyle.Render(brand)}
	for _, item := range a.ctrl.Menu() {
		label := fmt.Sprintf("[%s] %s", a.keys.forItem(item).Help().Key, item.Label)
		if item.Action == portal.ActionNavigate && item.Target == s.View {
			items = append(items, menuActiveStyle.Render(label))
			continue
		}
		items = append(items, menuInactiveStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (a *App) renderHome() string {
	hero := strings.Join([]string{
		accentStyle.Render(portal.HomeHeadline),
		portal.HomeLead,
		"",
		buttonFocusStyle.Render(portal.HomeAction),
	}, "\n")
	return heroStyle.Render(hero)
}

func (a *App) renderJobs() string {
	lines := []string{titleStyle.Render(portal.JobsTitle)}
	if a.searching || a.search.Value() != "" {
		lines = append(lines, a.search.View())
	}
	if len(a.visible) == 0 {
		lines = append(lines, mutedStyle.Render("No jobs match."))
		return strings.Join(lines, "\n")
	}
	for i, j := range a.visible {
		card := strings.Join([]string{
			accentStyle.Render(a.truncate(j.Position)),
			mutedStyle.Render(a.truncate(j.Company)),
			a.truncate(j.Location),
			a.truncate(j.SalaryRange),
		}, "\n")
		style := cardStyle
		if i == a.jobCursor {
			style = selectedCardStyle
			card += "\n" + buttonFocusStyle.Render("Apply Now")
		}
		lines = append(lines, style.Render(card))
	}
	return strings.Join(lines, "\n")
}

// renderApply draws nothing until a job has been selected.
func (a *App) renderApply(s portal.State) string {
	if !s.CanRenderApply() || a.form == nil {
		return ""
	}
	job := s.SelectedJob
	lines := []string{
		titleStyle.Render("Apply for: " + job.Position),
		mutedStyle.Render(job.Company),
		"",
		a.form.view(s.ApplicationForm.Resume, s.ApplicationForm.Hints()),
	}
	if a.receipt != "" {
		lines = append(lines, "", mutedStyle.Render("Receipt: "+a.receipt))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderApplications() string {
	lines := []string{titleStyle.Render(portal.ApplicationsTitle)}
	if len(a.applications) == 0 {
		lines = append(lines, portal.NoApplicationsYet)
		return strings.Join(lines, "\n")
	}
	lines = append(lines, a.appTable.View())
	if i := a.appTable.Cursor(); i >= 0 && i < len(a.applications) {
		st := a.applications[i].Status
		lines = append(lines, "Status: "+badgeStyle(st.Tone()).Render(string(st)))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderLogin(s portal.State) string {
	if a.form == nil {
		return ""
	}
	return strings.Join([]string{
		titleStyle.Render("Login"),
		a.form.view(nil, nil),
		"",
		portal.LoginToRegisterText + " " + keyStyle.Render("[r]") + " Register",
	}, "\n")
}

func (a *App) renderRegister(s portal.State) string {
	if a.form == nil {
		return ""
	}
	return strings.Join([]string{
		titleStyle.Render("Register"),
		a.form.view(nil, s.RegisterForm.Hints()),
		"",
		portal.RegisterToLoginText + " " + keyStyle.Render("[l]") + " Login",
	}, "\n")
}

func (a *App) renderHelp(s portal.State) string {
	var bindings []key.Binding
	switch {
	case a.picking:
		return ""
	case a.searching:
		bindings = []key.Binding{a.keys.Enter, a.keys.Back}
	case a.form != nil && a.form.active:
		bindings = []key.Binding{a.keys.Next, a.keys.Prev, a.keys.Submit, a.keys.Back}
	default:
		bindings = []key.Binding{a.keys.Up, a.keys.Down, a.keys.Enter}
		if s.View == portal.ViewJobs {
			bindings = append(bindings, a.keys.Search)
		}
		if !s.Notice.Empty() {
			bindings = append(bindings, a.keys.Dismiss)
		}
		bindings = append(bindings, a.keys.Quit)
	}
	out := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, keyStyle.Render("["+h.Key+"]")+" "+mutedStyle.Render(h.Desc))
	}
	return strings.Join(out, "  ")
}

func (a *App) renderFooter() string {
	lines := []string{
		"Useful Links: " + strings.Join(portal.FooterLinks, " · "),
		"Follow Us: " + strings.Join(portal.SocialLinks, " · "),
		portal.Copyright,
	}
	return footerStyle.Render(strings.Join(lines, "\n"))
}

func (a *App) truncate(s string) string {
	if a.width <= 8 {
		return s
	}
	return ansi.Truncate(s, a.width-8, "…")
}
