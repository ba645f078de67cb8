package portal

import "github.com/jask/kikaportals/internal/database/repository"

// Session tracks whether the user went through the login form.
type Session struct {
	LoggedIn bool
}

// State is the whole portal state for one user.
type State struct {
	View        View
	Session     Session
	SelectedJob *repository.JobPosting
	Notice      Notice

	LoginForm       LoginForm
	RegisterForm    RegisterForm
	ApplicationForm ApplicationForm
}

// NewState is the startup state: home view, logged out.
func NewState() State {
	return State{View: ViewHome}
}

// Navigate switches the active view and clears the notice. Forms belong to
// their view, so leaving a view drops them.
func (s State) Navigate(v View) State {
	if v != s.View {
		s = s.resetForms()
	}
	s.View = v
	s.Notice = Notice{}
	return s
}

// Login accepts any non-empty email and password.
func (s State) Login(f LoginForm) (State, error) {
	if err := f.Validate(); err != nil {
		s.LoginForm = f
		s.Notice = Notice{Text: NoticeMissingFields}
		return s, err
	}
	s = s.Navigate(ViewJobs)
	s.Session.LoggedIn = true
	s.Notice = Notice{Text: NoticeLoginSuccess}
	return s, nil
}

// Register sends the user on to the login view once every field is filled.
func (s State) Register(f RegisterForm) (State, error) {
	if err := f.Validate(); err != nil {
		s.RegisterForm = f
		s.Notice = Notice{Text: NoticeMissingFields}
		return s, err
	}
	s = s.Navigate(ViewLogin)
	s.Notice = Notice{Text: NoticeRegisterSuccess}
	return s, nil
}

// SelectJobAndApply opens the apply view for job. A form filled in for a
// different job is dropped.
func (s State) SelectJobAndApply(job repository.JobPosting) State {
	if s.SelectedJob != nil && s.SelectedJob.ID != job.ID {
		s.ApplicationForm = ApplicationForm{}
	}
	s = s.Navigate(ViewApply)
	s.SelectedJob = &job
	return s
}

// SubmitApplication only sets the notice; the view stays and nothing is kept
// beyond the form itself.
func (s State) SubmitApplication(f ApplicationForm) (State, error) {
	s.ApplicationForm = f
	if err := f.Validate(); err != nil {
		s.Notice = Notice{Text: NoticeMissingFields}
		return s, err
	}
	s.Notice = Notice{Text: NoticeApplicationSuccess}
	return s, nil
}

func (s State) Logout() State {
	s = s.Navigate(ViewHome)
	s.Session.LoggedIn = false
	return s.resetForms()
}

func (s State) DismissNotice() State {
	s.Notice = Notice{}
	return s
}

func (s State) EditLogin(f LoginForm) State {
	s.LoginForm = f
	return s
}

func (s State) EditRegister(f RegisterForm) State {
	s.RegisterForm = f
	return s
}

func (s State) EditApplication(f ApplicationForm) State {
	s.ApplicationForm = f
	return s
}

// CanRenderApply is false when no job was selected; the apply view is then
// blank.
func (s State) CanRenderApply() bool {
	return s.View == ViewApply && s.SelectedJob != nil
}

func (s State) resetForms() State {
	s.LoginForm = LoginForm{}
	s.RegisterForm = RegisterForm{}
	s.ApplicationForm = ApplicationForm{}
	return s
}
