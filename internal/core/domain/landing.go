package domain

// LandingState identifies which of the landing renderings applies.
type LandingState int

const (
	// LandingLoading is shown until both fetches settle.
	LandingLoading LandingState = iota
	// LandingError is shown when either fetch failed.
	LandingError
	// LandingReady is shown when both lists are available.
	LandingReady
)

// String returns the string representation of the landing state.
func (s LandingState) String() string {
	switch s {
	case LandingLoading:
		return "loading"
	case LandingError:
		return "error"
	case LandingReady:
		return "ready"
	default:
		return "unknown"
	}
}

// LandingView is the aggregated landing page content.
type LandingView struct {
	State LandingState

	// Documents are the most recent documents (LandingReady only).
	Documents []DocumentSummary

	// Posts are the most recent blog posts (LandingReady only).
	Posts []BlogPost

	// Categories are the static category links.
	Categories []string

	// Err is the first error encountered (LandingError only).
	Err error

	// Cancelled is set when the load was cancelled before it settled.
	// A cancelled view must not be applied.
	Cancelled bool
}

// ErrorMessage returns the error text, or "" when there is none.
func (v LandingView) ErrorMessage() string {
	if v.Err == nil {
		return ""
	}
	return v.Err.Error()
}
