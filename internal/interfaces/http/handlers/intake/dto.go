package intake

import (
	"intake/internal/application/intake/usecases"
)

// CreateIntakeRequest is the public submission. Fields not listed here are
// ignored.
type CreateIntakeRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"Jane Doe"`
	Email       string `json:"email" binding:"required,email,max=254" example:"jane@example.com"`
	Description string `json:"description" binding:"required,min=10,max=5000" example:"I was charged twice on my last invoice"`
	Urgency     int    `json:"urgency" binding:"required,gte=1,lte=5" example:"3"`
}

func (r *CreateIntakeRequest) ToCommand() usecases.CreateIntakeCommand {
	return usecases.CreateIntakeCommand{
		Name:        r.Name,
		Email:       r.Email,
		Description: r.Description,
		Urgency:     r.Urgency,
	}
}

// UpdateIntakeRequest is a partial staff update. Unknown fields are rejected.
type UpdateIntakeRequest struct {
	Status        *string `json:"status,omitempty" binding:"omitempty,oneof=new in_review resolved" example:"in_review"`
	InternalNotes *string `json:"internal_notes,omitempty" binding:"omitempty,max=5000" example:"Called the client back"`
}

func (r *UpdateIntakeRequest) ToCommand(id uint, updatedBy string) usecases.UpdateIntakeCommand {
	return usecases.UpdateIntakeCommand{
		ID:            id,
		Status:        r.Status,
		InternalNotes: r.InternalNotes,
		UpdatedBy:     updatedBy,
	}
}

type ListIntakesRequest struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Sort     string `form:"sort"`
}

func (r *ListIntakesRequest) ToQuery() usecases.ListIntakesQuery {
	return usecases.ListIntakesQuery{
		Status:   r.Status,
		Category: r.Category,
		Sort:     r.Sort,
	}
}
