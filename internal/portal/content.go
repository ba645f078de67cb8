package portal

// Static copy of the portal pages.
const (
	HomeHeadline = "Find Your Dream Job!"
	HomeLead     = "Start your career journey with the best companies."
	HomeAction   = "Browse Jobs"

	JobsTitle           = "Available Jobs"
	ApplicationsTitle   = "My Applications"
	NoApplicationsYet   = "No applications submitted yet."
	LoginToRegisterText = "Don't have an account?"
	RegisterToLoginText = "Already have an account?"

	Copyright = "© 2025 Kikaportals, All Rights Reserved."
)

var (
	FooterLinks = []string{"Careers", "FAQs", "Contact Us", "Privacy Policy"}
	SocialLinks = []string{"Facebook", "LinkedIn", "Instagram", "Youtube"}
)
