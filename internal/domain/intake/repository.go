package intake

import (
	"context"

	vo "intake/internal/domain/intake/valueobjects"
)

// Repository persists intakes. GetByID and Update report a missing record
// with ErrIntakeNotFound.
type Repository interface {
	Create(ctx context.Context, intake *Intake) error
	GetByID(ctx context.Context, id uint) (*Intake, error)
	Update(ctx context.Context, intake *Intake) error
	List(ctx context.Context, filter Filter) ([]*Intake, int64, error)
	Stats(ctx context.Context) (*Stats, error)
}

// Filter narrows a listing. Nil fields do not filter.
type Filter struct {
	Status   *vo.Status
	Category *vo.Category
	Sort     Sort
}

// Stats aggregates intake counts. Every status and category is present, with
// zero when nothing matches.
type Stats struct {
	ByStatus   map[vo.Status]int64
	ByCategory map[vo.Category]int64
	Total      int64
}

// NewStats returns Stats with every bucket initialized to zero.
func NewStats() *Stats {
	s := &Stats{
		ByStatus:   make(map[vo.Status]int64),
		ByCategory: make(map[vo.Category]int64),
	}
	for _, status := range vo.AllStatuses() {
		s.ByStatus[status] = 0
	}
	for _, category := range vo.AllCategories() {
		s.ByCategory[category] = 0
	}
	return s
}
