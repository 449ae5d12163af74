package intake

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "intake/internal/domain/intake/valueobjects"
)

const (
	MaxNameLength          = 100
	MinDescriptionLength   = 10
	MaxDescriptionLength   = 5000
	MaxInternalNotesLength = 5000
)

// Intake is a single submitted support request.
type Intake struct {
	id            uint
	name          string
	email         string
	description   string
	urgency       vo.Urgency
	category      vo.Category
	status        vo.Status
	internalNotes string
	createdAt     time.Time
	updatedAt     time.Time
}

// NewIntake creates a fresh intake in status new. Text fields are expected to
// be sanitized already; the category comes from the classifier.
func NewIntake(
	name string,
	email string,
	description string,
	urgency vo.Urgency,
	category vo.Category,
	now time.Time,
) (*Intake, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, fmt.Errorf("name exceeds maximum length of %d characters", MaxNameLength)
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	if !urgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency: %d", urgency)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}

	now = now.UTC().Truncate(time.Millisecond)

	return &Intake{
		name:        name,
		email:       email,
		description: description,
		urgency:     urgency,
		category:    category,
		status:      vo.StatusNew,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructIntake rebuilds an intake from storage.
func ReconstructIntake(
	id uint,
	name string,
	email string,
	description string,
	urgency vo.Urgency,
	category vo.Category,
	status vo.Status,
	internalNotes string,
	createdAt, updatedAt time.Time,
) (*Intake, error) {
	if id == 0 {
		return nil, fmt.Errorf("intake ID cannot be zero")
	}
	if !urgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency: %d", urgency)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if updatedAt.Before(createdAt) {
		return nil, fmt.Errorf("updated_at precedes created_at")
	}

	return &Intake{
		id:            id,
		name:          name,
		email:         email,
		description:   description,
		urgency:       urgency,
		category:      category,
		status:        status,
		internalNotes: internalNotes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (i *Intake) ID() uint {
	return i.id
}

func (i *Intake) Name() string {
	return i.name
}

func (i *Intake) Email() string {
	return i.email
}

func (i *Intake) Description() string {
	return i.description
}

func (i *Intake) Urgency() vo.Urgency {
	return i.urgency
}

func (i *Intake) Category() vo.Category {
	return i.category
}

func (i *Intake) Status() vo.Status {
	return i.status
}

func (i *Intake) InternalNotes() string {
	return i.internalNotes
}

func (i *Intake) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Intake) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Intake) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("intake ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("intake ID cannot be zero")
	}
	i.id = id
	return nil
}

// ChangeStatus sets a new workflow label. Any valid status is accepted from
// any other.
func (i *Intake) ChangeStatus(newStatus vo.Status, now time.Time) error {
	if !i.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	i.status = newStatus
	i.touch(now)
	return nil
}

// UpdateInternalNotes replaces the staff notes. An empty string clears them.
func (i *Intake) UpdateInternalNotes(notes string, now time.Time) error {
	if utf8.RuneCountInString(notes) > MaxInternalNotesLength {
		return fmt.Errorf("internal notes exceed maximum length of %d characters", MaxInternalNotesLength)
	}

	i.internalNotes = notes
	i.touch(now)
	return nil
}

// touch advances updatedAt. Storage keeps millisecond precision, so every
// mutation moves the timestamp forward by at least one millisecond.
func (i *Intake) touch(now time.Time) {
	now = now.UTC().Truncate(time.Millisecond)
	if !now.After(i.updatedAt) {
		now = i.updatedAt.Add(time.Millisecond)
	}
	i.updatedAt = now
}
