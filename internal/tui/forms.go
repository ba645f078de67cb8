package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/kikaportals/internal/portal"
)

type formKind int

const (
	loginForm formKind = iota
	registerForm
	applicationForm
)

type formField struct {
	Key   string
	Label string
	Value string
	Mask  bool
}

// form is a column of text inputs, an optional resume slot and a submit
// button. focus walks over all of them.
type form struct {
	kind        formKind
	submitLabel string
	keys        []string
	inputs      []textinput.Model
	focus       int
	active      bool
}

func newForm(kind formKind, submitLabel string, fields []formField) *form {
	f := &form{kind: kind, submitLabel: submitLabel}
	for _, fd := range fields {
		inp := textinput.New()
		inp.Prompt = fd.Label + ": "
		inp.SetValue(fd.Value)
		if fd.Mask {
			inp.EchoMode = textinput.EchoPassword
			inp.EchoCharacter = '•'
		}
		f.keys = append(f.keys, fd.Key)
		f.inputs = append(f.inputs, inp)
	}
	return f
}

func newLoginForm(v portal.LoginForm) *form {
	return newForm(loginForm, "Login", []formField{
		{Key: portal.FieldEmail, Label: "Email", Value: v.Email},
		{Key: portal.FieldPassword, Label: "Password", Value: v.Password, Mask: true},
	})
}

func newRegisterForm(v portal.RegisterForm) *form {
	return newForm(registerForm, "Register", []formField{
		{Key: portal.FieldFirstName, Label: "First Name", Value: v.FirstName},
		{Key: portal.FieldLastName, Label: "Last Name", Value: v.LastName},
		{Key: portal.FieldEmail, Label: "Email", Value: v.Email},
		{Key: portal.FieldPhone, Label: "Phone", Value: v.Phone},
		{Key: portal.FieldPassword, Label: "Password", Value: v.Password, Mask: true},
	})
}

func newApplicationForm(v portal.ApplicationForm) *form {
	return newForm(applicationForm, "Submit Application", []formField{
		{Key: portal.FieldFirstName, Label: "First Name", Value: v.FirstName},
		{Key: portal.FieldLastName, Label: "Last Name", Value: v.LastName},
		{Key: portal.FieldEmail, Label: "Email", Value: v.Email},
		{Key: portal.FieldPhone, Label: "Phone", Value: v.Phone},
	})
}

func (f *form) hasResume() bool { return f.kind == applicationForm }

func (f *form) slots() int {
	n := len(f.inputs) + 1
	if f.hasResume() {
		n++
	}
	return n
}

func (f *form) onResume() bool { return f.hasResume() && f.focus == len(f.inputs) }

func (f *form) onSubmit() bool { return f.focus == f.slots()-1 }

func (f *form) move(delta int) tea.Cmd {
	n := f.slots()
	f.focus = ((f.focus+delta)%n + n) % n
	return f.focusCmd()
}

func (f *form) focusCmd() tea.Cmd {
	var cmd tea.Cmd
	for i := range f.inputs {
		if f.active && i == f.focus {
			cmd = f.inputs[i].Focus()
			continue
		}
		f.inputs[i].Blur()
	}
	return cmd
}

func (f *form) activate() tea.Cmd {
	f.active = true
	return f.focusCmd()
}

func (f *form) blur() {
	f.active = false
	f.focusCmd()
}

// update forwards msg to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if f.focus >= len(f.inputs) {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) value(key string) string {
	for i, k := range f.keys {
		if k == key {
			return f.inputs[i].Value()
		}
	}
	return ""
}

func (f *form) login() portal.LoginForm {
	return portal.LoginForm{
		Email:    f.value(portal.FieldEmail),
		Password: f.value(portal.FieldPassword),
	}
}

func (f *form) register() portal.RegisterForm {
	return portal.RegisterForm{
		FirstName: f.value(portal.FieldFirstName),
		LastName:  f.value(portal.FieldLastName),
		Email:     f.value(portal.FieldEmail),
		Phone:     f.value(portal.FieldPhone),
		Password:  f.value(portal.FieldPassword),
	}
}

func (f *form) application(resume *portal.FileRef) portal.ApplicationForm {
	return portal.ApplicationForm{
		FirstName: f.value(portal.FieldFirstName),
		LastName:  f.value(portal.FieldLastName),
		Email:     f.value(portal.FieldEmail),
		Phone:     f.value(portal.FieldPhone),
		Resume:    resume,
	}
}

func (f *form) view(resume *portal.FileRef, hints []portal.Hint) string {
	byField := map[string][]string{}
	for _, h := range hints {
		byField[h.Field] = append(byField[h.Field], h.Message)
	}
	var lines []string
	for i, inp := range f.inputs {
		lines = append(lines, inp.View())
		for _, msg := range byField[f.keys[i]] {
			lines = append(lines, hintStyle.Render("  ! "+msg))
		}
	}
	if f.hasResume() {
		name := mutedStyle.Render("(no file chosen)")
		if resume != nil && resume.Name != "" {
			name = resume.Name
		}
		marker := "  "
		if f.active && f.onResume() {
			marker = "▶ "
		}
		lines = append(lines, marker+"Resume: "+name+mutedStyle.Render("  [enter] choose .pdf/.doc/.docx"))
		for _, msg := range byField[portal.FieldResume] {
			lines = append(lines, hintStyle.Render("  ! "+msg))
		}
	}
	button := buttonStyle
	if f.active && f.onSubmit() {
		button = buttonFocusStyle
	}
	lines = append(lines, "", button.Render(f.submitLabel))
	return strings.Join(lines, "\n")
}
