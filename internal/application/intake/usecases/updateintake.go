package usecases

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"intake/internal/application/intake/dto"
	"intake/internal/domain/intake"
	vo "intake/internal/domain/intake/valueobjects"
	"intake/internal/shared/errors"
	"intake/internal/shared/logger"
)

// UpdateIntakeCommand changes the staff-managed fields. Nil means unchanged;
// an empty InternalNotes clears the notes.
type UpdateIntakeCommand struct {
	ID            uint
	Status        *string
	InternalNotes *string
	UpdatedBy     string
}

type UpdateIntakeUseCase struct {
	repo      intake.Repository
	txManager TransactionRunner
	sanitizer Sanitizer
	logger    logger.Interface
	now       func() time.Time
}

func NewUpdateIntakeUseCase(
	repo intake.Repository,
	txManager TransactionRunner,
	sanitizer Sanitizer,
	logger logger.Interface,
) *UpdateIntakeUseCase {
	return &UpdateIntakeUseCase{
		repo:      repo,
		txManager: txManager,
		sanitizer: sanitizer,
		logger:    logger,
		now:       time.Now,
	}
}

func (uc *UpdateIntakeUseCase) Execute(ctx context.Context, cmd UpdateIntakeCommand) (*dto.IntakeDTO, error) {
	status, notes, err := uc.validate(cmd)
	if err != nil {
		return nil, err
	}

	var updated *intake.Intake
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		in, err := uc.repo.GetByID(txCtx, cmd.ID)
		if err != nil {
			return err
		}

		now := uc.now()
		if status != nil {
			if err := in.ChangeStatus(*status, now); err != nil {
				return errors.NewFieldValidationError("status", err.Error())
			}
		}
		if notes != nil {
			if err := in.UpdateInternalNotes(*notes, now); err != nil {
				return errors.NewFieldValidationError("internal_notes", err.Error())
			}
		}

		if err := uc.repo.Update(txCtx, in); err != nil {
			return err
		}
		updated = in
		return nil
	})
	if err != nil {
		return nil, mapRepositoryError(uc.logger, err, "failed to update intake", "Failed to update intake", cmd.ID)
	}

	uc.logger.Infow("intake updated",
		"intake_id", updated.ID(),
		"status", updated.Status(),
		"notes_changed", notes != nil,
		"updated_by", cmd.UpdatedBy,
	)

	return dto.ToIntakeDTO(updated), nil
}

func (uc *UpdateIntakeUseCase) validate(cmd UpdateIntakeCommand) (*vo.Status, *string, error) {
	if cmd.ID == 0 {
		return nil, nil, errors.NewFieldValidationError("id", "id must be a positive integer")
	}
	if cmd.Status == nil && cmd.InternalNotes == nil {
		return nil, nil, errors.NewValidationError("At least one of status or internal_notes is required").
			WithFields(
				errors.FieldError{Field: "status", Message: "at least one of status or internal_notes is required"},
				errors.FieldError{Field: "internal_notes", Message: "at least one of status or internal_notes is required"},
			)
	}

	var status *vo.Status
	if cmd.Status != nil {
		s, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return nil, nil, errors.NewFieldValidationError("status", err.Error())
		}
		status = &s
	}

	var notes *string
	if cmd.InternalNotes != nil {
		sanitized := uc.sanitizer.Text(*cmd.InternalNotes)
		if utf8.RuneCountInString(sanitized) > intake.MaxInternalNotesLength {
			return nil, nil, errors.NewFieldValidationError("internal_notes",
				fmt.Sprintf("internal_notes must be at most %d characters long", intake.MaxInternalNotesLength))
		}
		notes = &sanitized
	}

	return status, notes, nil
}
