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
	"intake/internal/shared/utils/logutil"
)

const descriptionPreviewLength = 60

type CreateIntakeCommand struct {
	Name        string
	Email       string
	Description string
	Urgency     int
}

type CreateIntakeUseCase struct {
	repo       intake.Repository
	classifier Classifier
	sanitizer  Sanitizer
	logger     logger.Interface
	now        func() time.Time
}

func NewCreateIntakeUseCase(
	repo intake.Repository,
	classifier Classifier,
	sanitizer Sanitizer,
	logger logger.Interface,
) *CreateIntakeUseCase {
	return &CreateIntakeUseCase{
		repo:       repo,
		classifier: classifier,
		sanitizer:  sanitizer,
		logger:     logger,
		now:        time.Now,
	}
}

// Execute sanitizes the submission, classifies the description and stores a
// new intake in status new.
func (uc *CreateIntakeUseCase) Execute(ctx context.Context, cmd CreateIntakeCommand) (*dto.IntakeDTO, error) {
	name := uc.sanitizer.Text(cmd.Name)
	email := uc.sanitizer.Text(cmd.Email)
	description := uc.sanitizer.Text(cmd.Description)

	urgency, err := uc.validate(name, email, description, cmd.Urgency)
	if err != nil {
		uc.logger.Warnw("invalid intake submission", "error", err)
		return nil, err
	}

	classification := uc.classifier.Explain(description)
	uc.logger.Debugw("intake classified",
		"category", classification.Category,
		"scores", classification.Scores,
		"description", logutil.Truncate(description, descriptionPreviewLength),
	)

	in, err := intake.NewIntake(name, email, description, urgency, classification.Category, uc.now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, in); err != nil {
		uc.logger.Errorw("failed to create intake", "error", err)
		return nil, errors.NewInternalError("Failed to create intake", err.Error())
	}

	uc.logger.Infow("intake created",
		"intake_id", in.ID(),
		"category", in.Category(),
		"urgency", in.Urgency(),
	)

	return dto.ToIntakeDTO(in), nil
}

// validate re-checks the bounds on sanitized values, which can be shorter
// than what the request validator saw.
func (uc *CreateIntakeUseCase) validate(name, email, description string, urgency int) (vo.Urgency, error) {
	var fields []errors.FieldError

	if name == "" {
		fields = append(fields, errors.FieldError{Field: "name", Message: "name is required"})
	} else if utf8.RuneCountInString(name) > intake.MaxNameLength {
		fields = append(fields, errors.FieldError{
			Field:   "name",
			Message: fmt.Sprintf("name must be at most %d characters long", intake.MaxNameLength),
		})
	}

	if email == "" {
		fields = append(fields, errors.FieldError{Field: "email", Message: "email is required"})
	}

	switch n := utf8.RuneCountInString(description); {
	case n < intake.MinDescriptionLength:
		fields = append(fields, errors.FieldError{
			Field:   "description",
			Message: fmt.Sprintf("description must be at least %d characters long", intake.MinDescriptionLength),
		})
	case n > intake.MaxDescriptionLength:
		fields = append(fields, errors.FieldError{
			Field:   "description",
			Message: fmt.Sprintf("description must be at most %d characters long", intake.MaxDescriptionLength),
		})
	}

	u, err := vo.NewUrgency(urgency)
	if err != nil {
		fields = append(fields, errors.FieldError{
			Field:   "urgency",
			Message: fmt.Sprintf("urgency must be between %d and %d", vo.MinUrgency, vo.MaxUrgency),
		})
	}

	if len(fields) > 0 {
		return 0, errors.NewValidationError("Validation failed").WithFields(fields...)
	}
	return u, nil
}
