package sweep

type Status int8

const (
	StatusNone Status = iota
	StatusFlagged
	StatusOpened
)

// Status implements [fmt.Stringer]
func (s Status) String() string {
	switch s {
	case StatusFlagged:
		return "flagged"
	case StatusOpened:
		return "opened"
	default:
		return "none"
	}
}
