package usecases

import (
	"context"

	"intake/internal/application/intake/dto"
	"intake/internal/domain/intake"
	vo "intake/internal/domain/intake/valueobjects"
	"intake/internal/shared/errors"
	"intake/internal/shared/logger"
)

// ListIntakesQuery carries the raw query parameters. Empty strings mean no
// filter and the default sort.
type ListIntakesQuery struct {
	Status   string
	Category string
	Sort     string
}

type ListIntakesResult struct {
	Items []*dto.IntakeDTO
	Total int64
}

type ListIntakesUseCase struct {
	repo   intake.Repository
	logger logger.Interface
}

func NewListIntakesUseCase(repo intake.Repository, logger logger.Interface) *ListIntakesUseCase {
	return &ListIntakesUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListIntakesUseCase) Execute(ctx context.Context, query ListIntakesQuery) (*ListIntakesResult, error) {
	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}

	list, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list intakes", "error", err)
		return nil, errors.NewInternalError("Failed to list intakes", err.Error())
	}

	return &ListIntakesResult{
		Items: dto.ToIntakeDTOList(list),
		Total: total,
	}, nil
}

func buildFilter(query ListIntakesQuery) (intake.Filter, error) {
	var fields []errors.FieldError
	filter := intake.Filter{}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			fields = append(fields, errors.FieldError{Field: "status", Message: err.Error()})
		} else {
			filter.Status = &status
		}
	}

	if query.Category != "" {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			fields = append(fields, errors.FieldError{Field: "category", Message: err.Error()})
		} else {
			filter.Category = &category
		}
	}

	sort, err := intake.ParseSort(query.Sort)
	if err != nil {
		fields = append(fields, errors.FieldError{Field: "sort", Message: err.Error()})
	}
	filter.Sort = sort

	if len(fields) > 0 {
		return intake.Filter{}, errors.NewValidationError("Invalid query parameters").WithFields(fields...)
	}
	return filter, nil
}
