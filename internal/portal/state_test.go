package portal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/kikaportals/internal/database/repository"
)

var frontend = repository.JobPosting{
	ID:          1,
	Position:    "Frontend Developer",
	Company:     "Technologies- Krithika & Co",
	Location:    "New York, NY",
	SalaryRange: "$80k",
}

func completeApplication() ApplicationForm {
	return ApplicationForm{
		FirstName: "Krithika",
		LastName:  "Ravi",
		Email:     "krithika@example.com",
		Phone:     "9876543210",
		Resume:    NewFileRef("/home/k/resume.pdf"),
	}
}

func TestNewState(t *testing.T) {
	s := NewState()
	require.Equal(t, ViewHome, s.View)
	require.False(t, s.Session.LoggedIn)
	require.Nil(t, s.SelectedJob)
	require.True(t, s.Notice.Empty())
}

func TestNavigateSetsViewAndClearsNotice(t *testing.T) {
	for _, v := range Views() {
		t.Run(v.String(), func(t *testing.T) {
			s := NewState()
			s.Notice = Notice{Text: "stale"}
			got := s.Navigate(v)
			require.Equal(t, v, got.View)
			require.True(t, got.Notice.Empty())
		})
	}
}

func TestNavigateLeavesReceiverUntouched(t *testing.T) {
	s := NewState()
	s.Notice = Notice{Text: "keep"}
	_ = s.Navigate(ViewJobs)
	require.Equal(t, ViewHome, s.View)
	require.Equal(t, "keep", s.Notice.Text)
}

func TestNavigateDropsFormsOfPreviousView(t *testing.T) {
	s := NewState().Navigate(ViewLogin).EditLogin(LoginForm{Email: "a@b.com"})

	same := s.Navigate(ViewLogin)
	require.Equal(t, "a@b.com", same.LoginForm.Email)

	other := s.Navigate(ViewJobs)
	require.Equal(t, LoginForm{}, other.LoginForm)
}

func TestLoginEmptyFields(t *testing.T) {
	s := NewState().Navigate(ViewLogin)
	got, err := s.Login(LoginForm{})
	require.ErrorIs(t, err, ErrMissingFields)
	require.Equal(t, NoticeMissingFields, got.Notice.Text)
	require.False(t, got.Session.LoggedIn)
	require.Equal(t, ViewLogin, got.View)

	var mf *MissingFieldsError
	require.True(t, errors.As(err, &mf))
	require.Equal(t, []string{FieldEmail, FieldPassword}, mf.Fields)
}

func TestLoginOneFieldMissing(t *testing.T) {
	s := NewState().Navigate(ViewLogin)
	got, err := s.Login(LoginForm{Email: "a@b.com"})
	require.ErrorIs(t, err, ErrMissingFields)
	require.False(t, got.Session.LoggedIn)
	require.Equal(t, "a@b.com", got.LoginForm.Email)
}

func TestLoginSuccess(t *testing.T) {
	s := NewState().Navigate(ViewLogin)
	got, err := s.Login(LoginForm{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	require.True(t, got.Session.LoggedIn)
	require.Equal(t, ViewJobs, got.View)
	require.Equal(t, NoticeLoginSuccess, got.Notice.Text)
	require.Equal(t, LoginForm{}, got.LoginForm)
}

func TestRegister(t *testing.T) {
	full := RegisterForm{FirstName: "Krithika", LastName: "Ravi", Email: "k@example.com", Phone: "9876543210", Password: "pw"}

	cases := []struct {
		name   string
		mutate func(*RegisterForm)
	}{
		{"first name", func(f *RegisterForm) { f.FirstName = "" }},
		{"last name", func(f *RegisterForm) { f.LastName = "" }},
		{"email", func(f *RegisterForm) { f.Email = "" }},
		{"phone", func(f *RegisterForm) { f.Phone = "" }},
		{"password", func(f *RegisterForm) { f.Password = "" }},
	}
	for _, tc := range cases {
		t.Run("missing "+tc.name, func(t *testing.T) {
			form := full
			tc.mutate(&form)
			s := NewState().Navigate(ViewRegister)
			got, err := s.Register(form)
			require.ErrorIs(t, err, ErrMissingFields)
			require.Equal(t, NoticeMissingFields, got.Notice.Text)
			require.Equal(t, ViewRegister, got.View)
		})
	}

	t.Run("complete", func(t *testing.T) {
		got, err := NewState().Navigate(ViewRegister).Register(full)
		require.NoError(t, err)
		require.Equal(t, ViewLogin, got.View)
		require.Equal(t, NoticeRegisterSuccess, got.Notice.Text)
		require.False(t, got.Session.LoggedIn)
	})
}

func TestSelectJobAndApply(t *testing.T) {
	got := NewState().Navigate(ViewJobs).SelectJobAndApply(frontend)
	require.Equal(t, ViewApply, got.View)
	require.NotNil(t, got.SelectedJob)
	require.Equal(t, frontend, *got.SelectedJob)
	require.True(t, got.CanRenderApply())
}

func TestApplyWithoutSelectionRendersNothing(t *testing.T) {
	got := NewState().Navigate(ViewApply)
	require.Equal(t, ViewApply, got.View)
	require.False(t, got.CanRenderApply())
}

func TestApplyReachableWithEarlierSelection(t *testing.T) {
	s := NewState().SelectJobAndApply(frontend).Navigate(ViewHome).Navigate(ViewApply)
	require.True(t, s.CanRenderApply())
}

func TestSubmitApplication(t *testing.T) {
	s := NewState().SelectJobAndApply(frontend)

	got, err := s.SubmitApplication(completeApplication())
	require.NoError(t, err)
	require.Equal(t, NoticeApplicationSuccess, got.Notice.Text)
	require.Equal(t, ViewApply, got.View)

	noResume := completeApplication()
	noResume.Resume = nil
	got, err = s.SubmitApplication(noResume)
	require.ErrorIs(t, err, ErrMissingFields)
	require.Equal(t, NoticeMissingFields, got.Notice.Text)
	require.Equal(t, ViewApply, got.View)

	emptyPath := completeApplication()
	emptyPath.Resume = &FileRef{}
	_, err = s.SubmitApplication(emptyPath)
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestLogoutAfterLogin(t *testing.T) {
	s, err := NewState().Navigate(ViewLogin).Login(LoginForm{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)
	s = s.EditApplication(completeApplication())

	got := s.Logout()
	require.False(t, got.Session.LoggedIn)
	require.Equal(t, ViewHome, got.View)
	require.Equal(t, ApplicationForm{}, got.ApplicationForm)
}

func TestMyApplicationsNotGuarded(t *testing.T) {
	got := NewState().Navigate(ViewMyApplications)
	require.Equal(t, ViewMyApplications, got.View)
	require.False(t, got.Session.LoggedIn)
}

func TestDismissNotice(t *testing.T) {
	s, _ := NewState().Login(LoginForm{})
	require.False(t, s.Notice.Empty())
	got := s.DismissNotice()
	require.True(t, got.Notice.Empty())
	require.Equal(t, s.View, got.View)
}

func TestSelectOtherJobDropsApplication(t *testing.T) {
	designer := repository.JobPosting{ID: 2, Position: "UX Designer", Company: "TCS"}
	s := NewState().SelectJobAndApply(frontend).EditApplication(completeApplication())

	same := s.SelectJobAndApply(frontend)
	require.Equal(t, completeApplication(), same.ApplicationForm)

	other := s.SelectJobAndApply(designer)
	require.Equal(t, ViewApply, other.View)
	require.Equal(t, 2, other.SelectedJob.ID)
	require.Equal(t, ApplicationForm{}, other.ApplicationForm)
}

func TestResumeCountsByPath(t *testing.T) {
	f := completeApplication()
	f.Resume = &FileRef{Name: "cv.pdf"}
	var mf *MissingFieldsError
	require.ErrorAs(t, f.Validate(), &mf)
	require.Equal(t, []string{FieldResume}, mf.Fields)
}

func TestLoginKeepsTypedFormOnFailure(t *testing.T) {
	typed := LoginForm{Email: "a@b.com"}
	got, err := NewState().Navigate(ViewLogin).Login(typed)
	require.ErrorIs(t, err, ErrMissingFields)
	require.Equal(t, typed, got.LoginForm)

	reg := RegisterForm{FirstName: "Asha"}
	got, err = NewState().Navigate(ViewRegister).Register(reg)
	require.ErrorIs(t, err, ErrMissingFields)
	require.Equal(t, reg, got.RegisterForm)
}
