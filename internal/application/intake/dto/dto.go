package dto

import (
	"time"

	"intake/internal/domain/intake"
	vo "intake/internal/domain/intake/valueobjects"
	"intake/internal/shared/mapper"
)

// IntakeDTO is the client-facing shape of an intake record.
type IntakeDTO struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Description   string    `json:"description"`
	Urgency       int       `json:"urgency"`
	Category      string    `json:"category"`
	Status        string    `json:"status"`
	InternalNotes string    `json:"internal_notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// InternalNotesHTML is the rendered Markdown of InternalNotes, set only on
	// single-record reads.
	InternalNotesHTML string `json:"internal_notes_html,omitempty"`
}

type StatsDTO struct {
	ByStatus   map[string]int64 `json:"by_status"`
	ByCategory map[string]int64 `json:"by_category"`
	Total      int64            `json:"total"`
}

func ToIntakeDTO(in *intake.Intake) *IntakeDTO {
	if in == nil {
		return nil
	}

	return &IntakeDTO{
		ID:            in.ID(),
		Name:          in.Name(),
		Email:         in.Email(),
		Description:   in.Description(),
		Urgency:       in.Urgency().Int(),
		Category:      in.Category().String(),
		Status:        in.Status().String(),
		InternalNotes: in.InternalNotes(),
		CreatedAt:     in.CreatedAt(),
		UpdatedAt:     in.UpdatedAt(),
	}
}

func ToIntakeDTOList(list []*intake.Intake) []*IntakeDTO {
	return mapper.MapSlice(list, ToIntakeDTO)
}

func ToStatsDTO(stats *intake.Stats) *StatsDTO {
	out := &StatsDTO{
		ByStatus:   make(map[string]int64, len(vo.AllStatuses())),
		ByCategory: make(map[string]int64, len(vo.AllCategories())),
	}
	for _, status := range vo.AllStatuses() {
		out.ByStatus[status.String()] = stats.ByStatus[status]
	}
	for _, category := range vo.AllCategories() {
		out.ByCategory[category.String()] = stats.ByCategory[category]
	}
	out.Total = stats.Total
	return out
}
