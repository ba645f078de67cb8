package portal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func labels(items []MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Label)
	}
	return out
}

func TestMenuLoggedOut(t *testing.T) {
	require.Equal(t, []string{"Home", "Jobs", "Login", "Register"}, labels(Menu(Session{})))
}

func TestMenuLoggedIn(t *testing.T) {
	items := Menu(Session{LoggedIn: true})
	require.Equal(t, []string{"Home", "Jobs", "My Applications", "Logout"}, labels(items))
	require.Equal(t, ActionLogout, items[3].Action)
}

func TestMenuItemApply(t *testing.T) {
	s, err := NewState().Login(LoginForm{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)

	items := Menu(s.Session)
	mine := items[2].Apply(s)
	require.Equal(t, ViewMyApplications, mine.View)

	out := items[3].Apply(mine)
	require.False(t, out.Session.LoggedIn)
	require.Equal(t, ViewHome, out.View)
}
