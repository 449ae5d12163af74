package valueobjects

import "fmt"

const (
	MinUrgency = 1
	MaxUrgency = 5
)

// Urgency is the client-declared urgency of an intake, 1 (lowest) to 5.
type Urgency int

func (u Urgency) Int() int {
	return int(u)
}

func (u Urgency) IsValid() bool {
	return u >= MinUrgency && u <= MaxUrgency
}

func NewUrgency(v int) (Urgency, error) {
	u := Urgency(v)
	if !u.IsValid() {
		return 0, fmt.Errorf("invalid urgency: %d (must be between %d and %d)", v, MinUrgency, MaxUrgency)
	}
	return u, nil
}
