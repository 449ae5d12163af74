package intake

import (
	"fmt"
	"strings"
)

const (
	SortFieldID        = "id"
	SortFieldName      = "name"
	SortFieldEmail     = "email"
	SortFieldUrgency   = "urgency"
	SortFieldCategory  = "category"
	SortFieldStatus    = "status"
	SortFieldCreatedAt = "created_at"
	SortFieldUpdatedAt = "updated_at"
)

var sortableFields = map[string]bool{
	SortFieldID:        true,
	SortFieldName:      true,
	SortFieldEmail:     true,
	SortFieldUrgency:   true,
	SortFieldCategory:  true,
	SortFieldStatus:    true,
	SortFieldCreatedAt: true,
	SortFieldUpdatedAt: true,
}

// Sort orders a listing by one record field.
type Sort struct {
	Field string
	Desc  bool
}

// DefaultSort lists newest first.
func DefaultSort() Sort {
	return Sort{Field: SortFieldCreatedAt, Desc: true}
}

// ParseSort reads "field" or "-field". An empty expression yields the default.
func ParseSort(expr string) (Sort, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return DefaultSort(), nil
	}

	s := Sort{Field: expr}
	if strings.HasPrefix(expr, "-") {
		s = Sort{Field: strings.TrimPrefix(expr, "-"), Desc: true}
	}

	if !sortableFields[s.Field] {
		return Sort{}, fmt.Errorf("invalid sort field: %s", s.Field)
	}
	return s, nil
}

func (s Sort) String() string {
	if s.Desc {
		return "-" + s.Field
	}
	return s.Field
}

func SortableFields() []string {
	return []string{
		SortFieldID,
		SortFieldName,
		SortFieldEmail,
		SortFieldUrgency,
		SortFieldCategory,
		SortFieldStatus,
		SortFieldCreatedAt,
		SortFieldUpdatedAt,
	}
}
