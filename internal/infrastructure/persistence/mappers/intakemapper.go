package mappers

import (
	"fmt"
	"time"

	"intake/internal/domain/intake"
	vo "intake/internal/domain/intake/valueobjects"
	"intake/internal/infrastructure/persistence/models"
)

// IntakeMapper converts between intake entities and persistence models.
type IntakeMapper interface {
	ToModel(in *intake.Intake) *models.IntakeModel
	ToDomain(model *models.IntakeModel) (*intake.Intake, error)
	ToDomainList(list []*models.IntakeModel) ([]*intake.Intake, error)
}

type intakeMapper struct{}

func NewIntakeMapper() IntakeMapper {
	return &intakeMapper{}
}

func (m *intakeMapper) ToModel(in *intake.Intake) *models.IntakeModel {
	if in == nil {
		return nil
	}

	return &models.IntakeModel{
		ID:            in.ID(),
		Name:          in.Name(),
		Email:         in.Email(),
		Description:   in.Description(),
		Urgency:       in.Urgency().Int(),
		Category:      in.Category().String(),
		Status:        in.Status().String(),
		InternalNotes: in.InternalNotes(),
		CreatedAt:     in.CreatedAt().UnixMilli(),
		UpdatedAt:     in.UpdatedAt().UnixMilli(),
	}
}

func (m *intakeMapper) ToDomain(model *models.IntakeModel) (*intake.Intake, error) {
	if model == nil {
		return nil, nil
	}

	urgency, err := vo.NewUrgency(model.Urgency)
	if err != nil {
		return nil, fmt.Errorf("intake %d: %w", model.ID, err)
	}
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("intake %d: %w", model.ID, err)
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("intake %d: %w", model.ID, err)
	}

	in, err := intake.ReconstructIntake(
		model.ID,
		model.Name,
		model.Email,
		model.Description,
		urgency,
		category,
		status,
		model.InternalNotes,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct intake %d: %w", model.ID, err)
	}
	return in, nil
}

func (m *intakeMapper) ToDomainList(list []*models.IntakeModel) ([]*intake.Intake, error) {
	out := make([]*intake.Intake, 0, len(list))
	for _, model := range list {
		in, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}
