// Package ui holds the status banner state shared by the console pages.
package ui

// State enumerates the banner's possible conditions.
type State int

const (
	Hidden State = iota
	Success
	Error
)

// Banner is an explicit banner state value. Constructors build a whole
// new state, so a transition always replaces the previous style class
// instead of accumulating onto it.
type Banner struct {
	state   State
	message string
}

func HiddenBanner() Banner { return Banner{} }

func SuccessBanner(message string) Banner {
	return Banner{state: Success, message: message}
}

func ErrorBanner(message string) Banner {
	return Banner{state: Error, message: message}
}

func (b Banner) State() State    { return b.state }
func (b Banner) Message() string { return b.message }

// Dismiss hides the banner. No other state is touched.
func (b Banner) Dismiss() Banner { return Banner{} }

// View is what a page template needs to draw the banner.
type View struct {
	Visible bool
	Class   string
	Message string
}

// Render maps a banner state to its presentation. Pure: the same state
// always yields the same view, and exactly one style class is emitted.
func Render(b Banner) View {
	switch b.state {
	case Success:
		return View{Visible: true, Class: "alert-success", Message: b.message}
	case Error:
		return View{Visible: true, Class: "alert-danger", Message: b.message}
	default:
		return View{}
	}
}
