package portal

const (
	NoticeLoginSuccess       = "Login successful!"
	NoticeRegisterSuccess    = "Registration successful! you can log in now."
	NoticeApplicationSuccess = "Application submitted successfully!"
	NoticeMissingFields      = "fill in all fields!"
)

// Notice is a transient message shown above the active view.
type Notice struct {
	Text string
}

func (n Notice) Empty() bool { return n.Text == "" }
