package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intake/internal/domain/intake"
	vo "intake/internal/domain/intake/valueobjects"
	"intake/internal/shared/errors"
	"intake/internal/shared/logger"
)

func TestListIntakesUseCase_Execute_BuildsFilter(t *testing.T) {
	tests := []struct {
		name         string
		query        ListIntakesQuery
		wantStatus   *vo.Status
		wantCategory *vo.Category
		wantSort     intake.Sort
	}{
		{
			name:     "no parameters",
			query:    ListIntakesQuery{},
			wantSort: intake.DefaultSort(),
		},
		{
			name:       "status filter ascending urgency",
			query:      ListIntakesQuery{Status: "resolved", Sort: "urgency"},
			wantStatus: statusPtr(vo.StatusResolved),
			wantSort:   intake.Sort{Field: intake.SortFieldUrgency},
		},
		{
			name:         "both filters descending name",
			query:        ListIntakesQuery{Status: "new", Category: "billing", Sort: "-name"},
			wantStatus:   statusPtr(vo.StatusNew),
			wantCategory: categoryPtr(vo.CategoryBilling),
			wantSort:     intake.Sort{Field: intake.SortFieldName, Desc: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got intake.Filter
			repo := &mockIntakeRepository{
				ListFunc: func(ctx context.Context, filter intake.Filter) ([]*intake.Intake, int64, error) {
					got = filter
					return nil, 0, nil
				},
			}

			result, err := NewListIntakesUseCase(repo, logger.NewNopLogger()).Execute(context.Background(), tt.query)

			require.NoError(t, err)
			assert.NotNil(t, result.Items)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantSort, got.Sort)
		})
	}
}

func TestListIntakesUseCase_Execute_ReturnsTotal(t *testing.T) {
	repo := &mockIntakeRepository{
		ListFunc: func(ctx context.Context, filter intake.Filter) ([]*intake.Intake, int64, error) {
			return []*intake.Intake{
				existingIntake(1, vo.StatusNew, vo.CategoryBilling),
				existingIntake(2, vo.StatusNew, vo.CategoryBilling),
			}, 2, nil
		},
	}

	result, err := NewListIntakesUseCase(repo, logger.NewNopLogger()).Execute(context.Background(),
		ListIntakesQuery{Category: "billing"})

	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	require.Len(t, result.Items, 2)
	assert.Equal(t, uint(1), result.Items[0].ID)
	assert.Equal(t, uint(2), result.Items[1].ID)
}

func TestListIntakesUseCase_Execute_InvalidParameters(t *testing.T) {
	called := false
	repo := &mockIntakeRepository{
		ListFunc: func(ctx context.Context, filter intake.Filter) ([]*intake.Intake, int64, error) {
			called = true
			return nil, 0, nil
		},
	}

	_, err := NewListIntakesUseCase(repo, logger.NewNopLogger()).Execute(context.Background(),
		ListIntakesQuery{Status: "closed", Category: "sales", Sort: "-password"})

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	require.Len(t, appErr.Fields, 3)
	assert.Equal(t, "status", appErr.Fields[0].Field)
	assert.Equal(t, "category", appErr.Fields[1].Field)
	assert.Equal(t, "sort", appErr.Fields[2].Field)
	assert.False(t, called)
}

func statusPtr(s vo.Status) *vo.Status       { return &s }
func categoryPtr(c vo.Category) *vo.Category { return &c }
