package tui

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/kikaportals/internal/config"
	"github.com/jask/kikaportals/internal/database/repository"
	"github.com/jask/kikaportals/internal/portal"
	"github.com/jask/kikaportals/internal/service"
)

// JobSearcher returns catalog postings for a query; "" means all.
type JobSearcher interface {
	Search(ctx context.Context, query string) ([]repository.JobPosting, error)
}

type ApplicationLister interface {
	List(ctx context.Context) ([]repository.Application, error)
}

// Catalog is the read-only data the views render.
type Catalog struct {
	Jobs         JobSearcher
	Applications ApplicationLister
}

// App renders the portal controller and feeds it user input.
type App struct {
	ctx     context.Context
	cfg     config.Config
	catalog Catalog
	ctrl    *portal.Controller
	log     zerolog.Logger
	keys    keyMap

	jobs         []repository.JobPosting
	visible      []repository.JobPosting
	jobCursor    int
	applications []repository.Application
	appTable     table.Model

	search    textinput.Model
	searching bool

	form     *form
	formView portal.View
	picker   filepicker.Model
	picking  bool

	status  string
	receipt string
	width   int
	height  int
}

func New(ctx context.Context, cfg config.Config, catalog Catalog, ctrl *portal.Controller, log zerolog.Logger) *App {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "position, company or city"
	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		catalog:  catalog,
		ctrl:     ctrl,
		log:      log,
		keys:     defaultKeys(),
		search:   search,
		formView: -1,
		appTable: newApplicationsTable(nil),
	}
	a.sync()
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadJobs(), a.loadApplications())
}

func (a *App) loadJobs() tea.Cmd {
	return func() tea.Msg {
		jobs, err := a.catalog.Jobs.Search(a.ctx, "")
		if err != nil {
			return errMsg{err}
		}
		return jobsMsg(jobs)
	}
}

func (a *App) loadApplications() tea.Cmd {
	return func() tea.Msg {
		if a.catalog.Applications == nil {
			return applicationsMsg(nil)
		}
		apps, err := a.catalog.Applications.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return applicationsMsg(apps)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		if !a.picking {
			return a, nil
		}
		var cmd tea.Cmd
		a.picker, cmd = a.picker.Update(m)
		return a, cmd
	case jobsMsg:
		a.jobs = []repository.JobPosting(m)
		a.refilter()
		return a, nil
	case applicationsMsg:
		a.applications = []repository.Application(m)
		a.appTable = newApplicationsTable(a.applications)
		return a, nil
	case errMsg:
		a.status = "error: " + m.Error()
		a.log.Error().Err(m.error).Msg("catalog load")
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		switch {
		case a.picking:
			return a.handlePickerKey(m)
		case a.searching:
			return a.handleSearchKey(m)
		case a.form != nil && a.form.active:
			return a.handleFormKey(m)
		}
		return a.handleKey(m)
	}
	if a.picking {
		var cmd tea.Cmd
		a.picker, cmd = a.picker.Update(msg)
		return a, cmd
	}
	if a.form != nil && a.form.active {
		return a, a.form.update(msg)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := a.ctrl.State().View
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Dismiss):
		a.ctrl.DismissNotice()
		return a, nil
	case key.Matches(m, a.keys.Up), key.Matches(m, a.keys.Down):
		if view == portal.ViewMyApplications {
			var cmd tea.Cmd
			a.appTable, cmd = a.appTable.Update(m)
			return a, cmd
		}
		if key.Matches(m, a.keys.Up) {
			a.moveJobCursor(-1)
		} else {
			a.moveJobCursor(1)
		}
		return a, nil
	case key.Matches(m, a.keys.Search):
		if view == portal.ViewJobs {
			a.searching = true
			return a, a.search.Focus()
		}
		return a, nil
	case key.Matches(m, a.keys.Enter):
		return a, a.activate()
	}
	for _, item := range a.ctrl.Menu() {
		if key.Matches(m, a.keys.forItem(item)) {
			a.ctrl.Choose(item)
			return a, a.sync()
		}
	}
	return a, nil
}

// activate is enter outside a form: the primary action of the view.
func (a *App) activate() tea.Cmd {
	s := a.ctrl.State()
	switch s.View {
	case portal.ViewHome:
		a.ctrl.Navigate(portal.ViewJobs)
		return a.sync()
	case portal.ViewJobs:
		if len(a.visible) == 0 {
			return nil
		}
		a.ctrl.SelectJobAndApply(a.visible[a.jobCursor])
		return a.sync()
	}
	if a.form != nil {
		return a.form.activate()
	}
	return nil
}

func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Back):
		a.form.blur()
		return a, nil
	case key.Matches(m, a.keys.Submit):
		return a, a.submit()
	case key.Matches(m, a.keys.Next):
		return a, a.form.move(1)
	case key.Matches(m, a.keys.Prev):
		return a, a.form.move(-1)
	case key.Matches(m, a.keys.Enter):
		switch {
		case a.form.onResume():
			return a, a.openPicker()
		case a.form.onSubmit():
			return a, a.submit()
		default:
			return a, a.form.move(1)
		}
	}
	cmd := a.form.update(m)
	a.pushEdits()
	return a, cmd
}

// pushEdits mirrors the inputs into the controller's form record.
func (a *App) pushEdits() {
	switch a.form.kind {
	case loginForm:
		a.ctrl.EditLogin(a.form.login())
	case registerForm:
		a.ctrl.EditRegister(a.form.register())
	case applicationForm:
		a.ctrl.EditApplication(a.form.application(a.ctrl.State().ApplicationForm.Resume))
	}
}

func (a *App) submit() tea.Cmd {
	a.receipt = ""
	switch a.form.kind {
	case loginForm:
		_ = a.ctrl.Login(a.form.login())
	case registerForm:
		_ = a.ctrl.Register(a.form.register())
	case applicationForm:
		receipt, err := a.ctrl.SubmitApplication(a.form.application(a.ctrl.State().ApplicationForm.Resume))
		if err == nil {
			a.receipt = receipt
		}
	}
	return a.sync()
}

// sync rebuilds the per-view widgets after the controller changed view.
func (a *App) sync() tea.Cmd {
	s := a.ctrl.State()
	if s.View == a.formView {
		return nil
	}
	a.formView = s.View
	a.form = nil
	a.picking = false
	a.searching = false
	a.search.Blur()
	a.receipt = ""
	switch s.View {
	case portal.ViewLogin:
		a.form = newLoginForm(s.LoginForm)
	case portal.ViewRegister:
		a.form = newRegisterForm(s.RegisterForm)
	case portal.ViewApply:
		if s.SelectedJob != nil {
			a.form = newApplicationForm(s.ApplicationForm)
		}
	}
	if a.form != nil {
		return a.form.activate()
	}
	return nil
}

func (a *App) openPicker() tea.Cmd {
	fp := filepicker.New()
	fp.AllowedTypes = portal.ResumeExtensions
	if dir := strings.TrimSpace(a.cfg.UI.ResumeDir); dir != "" {
		fp.CurrentDirectory = dir
	}
	if a.height > 0 {
		fp, _ = fp.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	a.picker = fp
	a.picking = true
	return a.picker.Init()
}

func (a *App) handlePickerKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(m, a.keys.Back) {
		a.picking = false
		return a, nil
	}
	var cmd tea.Cmd
	a.picker, cmd = a.picker.Update(m)
	if ok, path := a.picker.DidSelectFile(m); ok {
		a.setResume(path)
		return a, nil
	}
	if ok, path := a.picker.DidSelectDisabledFile(m); ok {
		a.status = filepath.Base(path) + " is not a " + strings.Join(portal.ResumeExtensions, "/") + " file"
	}
	return a, cmd
}

// setResume records the picked file. Only the reference travels on.
func (a *App) setResume(path string) {
	a.picking = false
	a.status = ""
	if a.form == nil || a.form.kind != applicationForm {
		return
	}
	a.ctrl.EditApplication(a.form.application(portal.NewFileRef(path)))
	a.log.Debug().Str("resume", filepath.Base(path)).Msg("resume chosen")
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(m, a.keys.Back) {
		a.search.SetValue("")
		a.refilter()
	}
	if key.Matches(m, a.keys.Back) || key.Matches(m, a.keys.Enter) {
		a.searching = false
		a.search.Blur()
		return a, nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	a.refilter()
	return a, cmd
}

func (a *App) refilter() {
	a.visible = service.Filter(a.jobs, a.search.Value())
	if a.jobCursor >= len(a.visible) {
		a.jobCursor = 0
	}
}

func (a *App) moveJobCursor(delta int) {
	if a.ctrl.State().View != portal.ViewJobs || len(a.visible) == 0 {
		return
	}
	next := a.jobCursor + delta
	if next < 0 || next >= len(a.visible) {
		return
	}
	a.jobCursor = next
}

func newApplicationsTable(apps []repository.Application) table.Model {
	cols := []table.Column{
		{Title: "Position", Width: 24},
		{Title: "Company", Width: 32},
		{Title: "Applied Date", Width: 12},
		{Title: "Status", Width: 20},
	}
	rows := make([]table.Row, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, table.Row{app.Position, app.Company, app.AppliedDate, string(app.Status)})
	}
	height := len(rows) + 1
	if height > 10 {
		height = 10
	}
	return table.New(table.WithColumns(cols), table.WithRows(rows), table.WithFocused(true), table.WithHeight(height))
}

// messages
type jobsMsg []repository.JobPosting

type applicationsMsg []repository.Application

type errMsg struct{ error }
