package usecases

import (
	"context"

	"intake/internal/application/intake/dto"
	"intake/internal/domain/intake"
	"intake/internal/shared/errors"
	"intake/internal/shared/logger"
)

type GetIntakeStatsUseCase struct {
	repo   intake.Repository
	logger logger.Interface
}

func NewGetIntakeStatsUseCase(repo intake.Repository, logger logger.Interface) *GetIntakeStatsUseCase {
	return &GetIntakeStatsUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute reports counts by status and by category. Every status and
// category appears, including those with no intakes.
func (uc *GetIntakeStatsUseCase) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get intake stats", "error", err)
		return nil, errors.NewInternalError("Failed to get intake statistics", err.Error())
	}
	return dto.ToStatsDTO(stats), nil
}
