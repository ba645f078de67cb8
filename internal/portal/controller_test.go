package portal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) (*Controller, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	c := NewController(zerolog.New(&buf).Level(zerolog.DebugLevel))
	n := 0
	c.newID = func() string {
		n++
		return "id-" + strings.Repeat("x", n)
	}
	return c, &buf
}

func TestControllerLoginLogout(t *testing.T) {
	c, buf := newTestController(t)
	c.Navigate(ViewLogin)

	err := c.Login(LoginForm{})
	require.ErrorIs(t, err, ErrMissingFields)
	require.Empty(t, c.SessionID())
	require.Contains(t, buf.String(), `"missing":["email","password"]`)

	require.NoError(t, c.Login(LoginForm{Email: "a@b.com", Password: "x"}))
	require.Equal(t, "id-x", c.SessionID())
	require.Equal(t, ViewJobs, c.State().View)
	require.Equal(t, NoticeLoginSuccess, c.State().Notice.Text)

	c.Logout()
	require.Empty(t, c.SessionID())
	require.False(t, c.State().Session.LoggedIn)
	require.Equal(t, ViewHome, c.State().View)
	require.Contains(t, buf.String(), `"message":"logout"`)
}

func TestControllerSubmitApplication(t *testing.T) {
	c, buf := newTestController(t)
	c.SelectJobAndApply(frontend)

	receipt, err := c.SubmitApplication(ApplicationForm{FirstName: "Kiki"})
	require.ErrorIs(t, err, ErrMissingFields)
	require.Empty(t, receipt)

	receipt, err = c.SubmitApplication(completeApplication())
	require.NoError(t, err)
	require.Equal(t, "id-x", receipt)
	require.Equal(t, NoticeApplicationSuccess, c.State().Notice.Text)
	require.Contains(t, buf.String(), `"resume":"resume.pdf"`)
	require.Contains(t, buf.String(), `"job":1`)
}

func TestControllerRegister(t *testing.T) {
	c, _ := newTestController(t)
	c.Navigate(ViewRegister)
	require.ErrorIs(t, c.Register(RegisterForm{FirstName: "A"}), ErrMissingFields)
	require.Equal(t, ViewRegister, c.State().View)

	require.NoError(t, c.Register(RegisterForm{FirstName: "A", LastName: "B", Email: "c", Phone: "d", Password: "e"}))
	require.Equal(t, ViewLogin, c.State().View)
	require.Equal(t, NoticeRegisterSuccess, c.State().Notice.Text)
}

func TestControllerChooseMenu(t *testing.T) {
	c, _ := newTestController(t)
	for _, item := range c.Menu() {
		if item.Label == "Register" {
			c.Choose(item)
		}
	}
	require.Equal(t, ViewRegister, c.State().View)

	require.NoError(t, c.Login(LoginForm{Email: "a", Password: "b"}))
	menu := c.Menu()
	c.Choose(menu[len(menu)-1])
	require.False(t, c.State().Session.LoggedIn)
}

func TestControllerEditAndDismiss(t *testing.T) {
	c, _ := newTestController(t)
	c.Navigate(ViewLogin)
	c.EditLogin(LoginForm{Email: "typed"})
	require.Equal(t, "typed", c.State().LoginForm.Email)

	c.Navigate(ViewRegister)
	c.EditRegister(RegisterForm{FirstName: "A"})
	require.Equal(t, "A", c.State().RegisterForm.FirstName)
	require.Empty(t, c.State().LoginForm.Email)

	_ = c.Register(RegisterForm{})
	c.DismissNotice()
	require.True(t, c.State().Notice.Empty())

	c.SelectJobAndApply(frontend)
	c.EditApplication(ApplicationForm{Phone: "9"})
	require.Equal(t, "9", c.State().ApplicationForm.Phone)
}

func TestNewControllerMintsUUIDs(t *testing.T) {
	c := NewController(zerolog.Nop())
	require.NoError(t, c.Login(LoginForm{Email: "a", Password: "b"}))
	require.Len(t, c.SessionID(), 36)
}
