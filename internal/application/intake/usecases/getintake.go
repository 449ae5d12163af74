package usecases

import (
	"context"
	stderrors "errors"

	"intake/internal/application/intake/dto"
	"intake/internal/domain/intake"
	"intake/internal/shared/errors"
	"intake/internal/shared/logger"
)

type GetIntakeQuery struct {
	ID uint
}

type GetIntakeUseCase struct {
	repo     intake.Repository
	renderer NotesRenderer
	logger   logger.Interface
}

func NewGetIntakeUseCase(repo intake.Repository, renderer NotesRenderer, logger logger.Interface) *GetIntakeUseCase {
	return &GetIntakeUseCase{
		repo:     repo,
		renderer: renderer,
		logger:   logger,
	}
}

func (uc *GetIntakeUseCase) Execute(ctx context.Context, query GetIntakeQuery) (*dto.IntakeDTO, error) {
	in, err := uc.repo.GetByID(ctx, query.ID)
	if err != nil {
		return nil, mapRepositoryError(uc.logger, err, "failed to get intake", "Failed to load intake", query.ID)
	}

	result := dto.ToIntakeDTO(in)

	notesHTML, err := uc.renderer.Render(in.InternalNotes())
	if err != nil {
		// the raw notes are still returned
		uc.logger.Warnw("failed to render internal notes", "intake_id", in.ID(), "error", err)
	} else {
		result.InternalNotesHTML = notesHTML
	}

	return result, nil
}

// mapRepositoryError turns a missing record into NotFound and anything else
// into an internal error carrying userMsg, logging the latter with logMsg.
func mapRepositoryError(log logger.Interface, err error, logMsg, userMsg string, id uint) error {
	if stderrors.Is(err, intake.ErrIntakeNotFound) {
		return errors.NewNotFoundError("Intake not found")
	}
	if errors.IsAppError(err) {
		return err
	}
	log.Errorw(logMsg, "intake_id", id, "error", err)
	return errors.NewInternalError(userMsg, err.Error())
}
