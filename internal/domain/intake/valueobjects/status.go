package valueobjects

import "fmt"

// Status is the staff-managed workflow label of an intake.
type Status string

const (
	StatusNew      Status = "new"
	StatusInReview Status = "in_review"
	StatusResolved Status = "resolved"
)

var validStatuses = map[Status]bool{
	StatusNew:      true,
	StatusInReview: true,
	StatusResolved: true,
}

func AllStatuses() []Status {
	return []Status{StatusNew, StatusInReview, StatusResolved}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// CanTransitionTo reports whether the status may be replaced by next.
// Statuses are labels rather than a guarded workflow: any valid status may
// follow any other, including itself.
func (s Status) CanTransitionTo(next Status) bool {
	return s.IsValid() && next.IsValid()
}

func (s Status) IsNew() bool {
	return s == StatusNew
}

func (s Status) IsInReview() bool {
	return s == StatusInReview
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return st, nil
}
