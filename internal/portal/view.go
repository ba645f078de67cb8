package portal

import (
	"fmt"
	"strings"
)

// View is the page currently displayed.
type View int

const (
	ViewHome View = iota
	ViewJobs
	ViewApply
	ViewMyApplications
	ViewLogin
	ViewRegister
)

var viewNames = [...]string{
	ViewHome:           "home",
	ViewJobs:           "jobs",
	ViewApply:          "apply",
	ViewMyApplications: "my-applications",
	ViewLogin:          "login",
	ViewRegister:       "register",
}

// Views lists every view in declaration order.
func Views() []View {
	return []View{ViewHome, ViewJobs, ViewApply, ViewMyApplications, ViewLogin, ViewRegister}
}

func (v View) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return fmt.Sprintf("view(%d)", int(v))
	}
	return viewNames[v]
}

func (v View) Valid() bool {
	return v >= ViewHome && v <= ViewRegister
}

// ParseView maps a view name such as "my-applications" to its View.
func ParseView(s string) (View, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range viewNames {
		if n == name {
			return View(i), nil
		}
	}
	return ViewHome, fmt.Errorf("%w: %q", ErrUnknownView, s)
}
