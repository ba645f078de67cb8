// Package portal holds the job portal's view controller: which view is active,
// the session flag, the selected job, the form records and the notice line.
//
// State is a value. Every transition returns a new State and leaves the
// receiver as it was; Controller owns the current State for one user.
package portal
