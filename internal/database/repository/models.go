package repository

// JobPosting is one entry of the read-only job catalog.
type JobPosting struct {
	ID          int    `toml:"id"`
	Position    string `toml:"position"`
	Company     string `toml:"company"`
	Location    string `toml:"location"`
	SalaryRange string `toml:"salary_range"`
}

// Application is a past application shown on the my-applications view.
type Application struct {
	ID          int               `toml:"id"`
	Position    string            `toml:"position"`
	Company     string            `toml:"company"`
	AppliedDate string            `toml:"applied_date"`
	Status      ApplicationStatus `toml:"status"`
}

// ApplicationStatus is the label stored for an application. Labels other than
// the known ones are kept verbatim and classify as StatusOther.
type ApplicationStatus string

const (
	StatusUnderReview        ApplicationStatus = "Under Review"
	StatusInterviewScheduled ApplicationStatus = "Interview Scheduled"
	StatusRejected           ApplicationStatus = "Rejected"
	StatusOther              ApplicationStatus = "Other"
)

// Kind folds unknown labels into StatusOther.
func (s ApplicationStatus) Kind() ApplicationStatus {
	switch s {
	case StatusUnderReview, StatusInterviewScheduled, StatusRejected:
		return s
	default:
		return StatusOther
	}
}

// Tone is the badge colour class of a status.
type Tone string

const (
	ToneWarning   Tone = "warning"
	ToneSuccess   Tone = "success"
	ToneDanger    Tone = "danger"
	ToneSecondary Tone = "secondary"
)

func (s ApplicationStatus) Tone() Tone {
	switch s.Kind() {
	case StatusUnderReview:
		return ToneWarning
	case StatusInterviewScheduled:
		return ToneSuccess
	case StatusRejected:
		return ToneDanger
	default:
		return ToneSecondary
	}
}
