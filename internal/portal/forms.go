package portal

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// Field keys shared by the forms and the presentation layer.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldPassword  = "password"
	FieldResume    = "resume"
)

// ResumeExtensions are the file types offered for a resume.
var ResumeExtensions = []string{".pdf", ".doc", ".docx"}

// FileRef identifies a file picked by the user. Its content is never read.
// Path is what makes a resume count as chosen; Name is for display.
type FileRef struct {
	Name string
	Path string
}

func NewFileRef(path string) *FileRef {
	return &FileRef{Name: filepath.Base(path), Path: path}
}

type LoginForm struct {
	Email    string
	Password string
}

type RegisterForm struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

type ApplicationForm struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Resume    *FileRef
}

func (f LoginForm) Validate() error {
	return required("login", []field{
		{FieldEmail, f.Email},
		{FieldPassword, f.Password},
	})
}

func (f RegisterForm) Validate() error {
	return required("register", []field{
		{FieldFirstName, f.FirstName},
		{FieldLastName, f.LastName},
		{FieldEmail, f.Email},
		{FieldPhone, f.Phone},
		{FieldPassword, f.Password},
	})
}

func (f ApplicationForm) Validate() error {
	resume := ""
	if f.Resume != nil {
		resume = f.Resume.Path
	}
	return required("application", []field{
		{FieldFirstName, f.FirstName},
		{FieldLastName, f.LastName},
		{FieldEmail, f.Email},
		{FieldPhone, f.Phone},
		{FieldResume, resume},
	})
}

type field struct {
	key   string
	value string
}

func required(form string, fields []field) error {
	var missing []string
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingFieldsError{Form: form, Fields: missing}
}

// Hint is an advisory format remark about a filled field. Hints never block
// a submission.
type Hint struct {
	Field   string
	Message string
}

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z]{2,}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(9|8)[0-9]{9}$`)
)

func (f RegisterForm) Hints() []Hint {
	return contactHints(f.FirstName, f.LastName, f.Email, f.Phone)
}

func (f ApplicationForm) Hints() []Hint {
	hints := contactHints(f.FirstName, f.LastName, f.Email, f.Phone)
	if f.Resume != nil && f.Resume.Path != "" && !AllowedResume(f.Resume.Path) {
		hints = append(hints, Hint{Field: FieldResume, Message: "use a " + strings.Join(ResumeExtensions, ", ") + " file"})
	}
	return hints
}

// AllowedResume reports whether path has one of ResumeExtensions.
func AllowedResume(path string) bool {
	return slices.Contains(ResumeExtensions, strings.ToLower(filepath.Ext(path)))
}

func contactHints(first, last, email, phone string) []Hint {
	var hints []Hint
	if first != "" && !namePattern.MatchString(first) {
		hints = append(hints, Hint{Field: FieldFirstName, Message: "letters only, at least 2"})
	}
	if last != "" && !namePattern.MatchString(last) {
		hints = append(hints, Hint{Field: FieldLastName, Message: "letters only, at least 2"})
	}
	if email != "" && !emailPattern.MatchString(email) {
		hints = append(hints, Hint{Field: FieldEmail, Message: "expected name@domain.tld"})
	}
	if phone != "" && !phonePattern.MatchString(phone) {
		hints = append(hints, Hint{Field: FieldPhone, Message: "10 digits starting with 9 or 8"})
	}
	return hints
}
