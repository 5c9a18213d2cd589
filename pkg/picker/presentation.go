package picker

// Presentation is the display state of a picker's options list.
type Presentation int

const (
	// Closed means only the current selection is shown.
	Closed Presentation = iota
	// Open means the options list is showing.
	Open
)

func (p Presentation) String() string {
	if p == Open {
		return "open"
	}
	return "closed"
}

type presenter struct {
	state Presentation
}

// Open shows the options list.
func (p *presenter) Open() {
	p.state = Open
}

// Dismiss hides the options list.
func (p *presenter) Dismiss() {
	p.state = Closed
}

// IsOpen reports whether the options list is showing.
func (p *presenter) IsOpen() bool {
	return p.state == Open
}

// Presentation returns the current display state.
func (p *presenter) Presentation() Presentation {
	return p.state
}
