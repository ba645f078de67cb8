package portal

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jask/kikaportals/internal/database/repository"
)

// Controller owns the portal state of one user and applies transitions to
// it. It is driven by a single event loop and is not safe for concurrent use.
type Controller struct {
	state     State
	log       zerolog.Logger
	sessionID string
	newID     func() string
}

func NewController(log zerolog.Logger) *Controller {
	return &Controller{state: NewState(), log: log, newID: uuid.NewString}
}

func (c *Controller) State() State { return c.state }

// SessionID identifies the current login; empty while logged out.
func (c *Controller) SessionID() string { return c.sessionID }

func (c *Controller) Menu() []MenuItem { return Menu(c.state.Session) }

func (c *Controller) Choose(item MenuItem) {
	if item.Action == ActionLogout {
		c.Logout()
		return
	}
	c.Navigate(item.Target)
}

func (c *Controller) Navigate(v View) {
	from := c.state.View
	c.state = c.state.Navigate(v)
	c.log.Debug().Stringer("from", from).Stringer("to", v).Msg("navigate")
}

func (c *Controller) Login(f LoginForm) error {
	next, err := c.state.Login(f)
	c.state = next
	if err != nil {
		c.warnMissing(err)
		return err
	}
	c.sessionID = c.newID()
	c.log.Info().Str("session", c.sessionID).Msg("login")
	return nil
}

func (c *Controller) Register(f RegisterForm) error {
	next, err := c.state.Register(f)
	c.state = next
	if err != nil {
		c.warnMissing(err)
		return err
	}
	c.log.Info().Msg("register")
	return nil
}

func (c *Controller) SelectJobAndApply(job repository.JobPosting) {
	c.state = c.state.SelectJobAndApply(job)
	c.log.Debug().Int("job", job.ID).Str("position", job.Position).Msg("select job")
}

// SubmitApplication returns a receipt id for an accepted submission. The
// application itself is not stored.
func (c *Controller) SubmitApplication(f ApplicationForm) (string, error) {
	next, err := c.state.SubmitApplication(f)
	c.state = next
	if err != nil {
		c.warnMissing(err)
		return "", err
	}
	receipt := c.newID()
	ev := c.log.Info().Str("receipt", receipt).Str("resume", resumeName(f.Resume))
	if job := c.state.SelectedJob; job != nil {
		ev = ev.Int("job", job.ID)
	}
	ev.Msg("application submitted")
	return receipt, nil
}

func (c *Controller) Logout() {
	c.log.Info().Str("session", c.sessionID).Msg("logout")
	c.state = c.state.Logout()
	c.sessionID = ""
}

func (c *Controller) DismissNotice() {
	c.state = c.state.DismissNotice()
}

func (c *Controller) EditLogin(f LoginForm) { c.state = c.state.EditLogin(f) }

func (c *Controller) EditRegister(f RegisterForm) { c.state = c.state.EditRegister(f) }

func (c *Controller) EditApplication(f ApplicationForm) { c.state = c.state.EditApplication(f) }

func (c *Controller) warnMissing(err error) {
	var mf *MissingFieldsError
	if errors.As(err, &mf) {
		c.log.Warn().Str("form", mf.Form).Strs("missing", mf.Fields).Msg("rejected form")
		return
	}
	c.log.Warn().Err(err).Msg("rejected form")
}

func resumeName(ref *FileRef) string {
	if ref == nil {
		return ""
	}
	return ref.Name
}
