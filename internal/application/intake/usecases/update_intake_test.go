package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intake/internal/domain/intake"
	vo "intake/internal/domain/intake/valueobjects"
	"intake/internal/shared/errors"
	"intake/internal/shared/logger"
	"intake/internal/shared/sanitize"
)

func newUpdateUseCase(repo intake.Repository, tx TransactionRunner) *UpdateIntakeUseCase {
	uc := NewUpdateIntakeUseCase(repo, tx, sanitize.New(), logger.NewNopLogger())
	uc.now = func() time.Time { return testTime.Add(time.Hour) }
	return uc
}

func stringPtr(s string) *string { return &s }

func TestUpdateIntakeUseCase_Execute_Success(t *testing.T) {
	tests := []struct {
		name       string
		initial    vo.Status
		command    UpdateIntakeCommand
		wantStatus string
		wantNotes  string
	}{
		{
			name:       "status only",
			command:    UpdateIntakeCommand{ID: 5, Status: stringPtr("in_review")},
			wantStatus: "in_review",
		},
		{
			name:       "notes only",
			command:    UpdateIntakeCommand{ID: 5, InternalNotes: stringPtr("Called the client")},
			wantStatus: "new",
			wantNotes:  "Called the client",
		},
		{
			name:       "both fields with markup stripped",
			command:    UpdateIntakeCommand{ID: 5, Status: stringPtr("resolved"), InternalNotes: stringPtr("<b>done</b>")},
			wantStatus: "resolved",
			wantNotes:  "done",
		},
		{
			name:       "notes at maximum length keep punctuation",
			command:    UpdateIntakeCommand{ID: 5, InternalNotes: stringPtr(punctuatedText)},
			wantStatus: "new",
			wantNotes:  punctuatedText,
		},
		{
			name:       "markdown quote survives",
			command:    UpdateIntakeCommand{ID: 5, InternalNotes: stringPtr("> approved by finance\n\nTom & Jerry")},
			wantStatus: "new",
			wantNotes:  "> approved by finance\n\nTom & Jerry",
		},
		{
			name:       "resolved may go back to new",
			initial:    vo.StatusResolved,
			command:    UpdateIntakeCommand{ID: 5, Status: stringPtr("new")},
			wantStatus: "new",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := tt.initial
			if initial == "" {
				initial = vo.StatusNew
			}
			stored := existingIntake(5, initial, vo.CategoryTechnicalSupport)
			before := existingIntake(5, initial, vo.CategoryTechnicalSupport)

			var saved *intake.Intake
			repo := &mockIntakeRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*intake.Intake, error) {
					return stored, nil
				},
				UpdateFunc: func(ctx context.Context, in *intake.Intake) error {
					saved = in
					return nil
				},
			}
			tx := &passthroughTx{}

			result, err := newUpdateUseCase(repo, tx).Execute(context.Background(), tt.command)

			require.NoError(t, err)
			require.NotNil(t, saved)
			assert.Equal(t, 1, tx.calls)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantNotes, result.InternalNotes)
			assert.True(t, result.UpdatedAt.After(before.UpdatedAt()))

			// fields outside the update whitelist are untouched
			assert.Equal(t, before.Name(), result.Name)
			assert.Equal(t, before.Email(), result.Email)
			assert.Equal(t, before.Description(), result.Description)
			assert.Equal(t, before.Urgency().Int(), result.Urgency)
			assert.Equal(t, before.Category().String(), result.Category)
			assert.Equal(t, before.CreatedAt(), result.CreatedAt)
		})
	}
}

func TestUpdateIntakeUseCase_Execute_NotFound(t *testing.T) {
	created := false
	updated := false
	repo := &mockIntakeRepository{
		CreateFunc: func(ctx context.Context, in *intake.Intake) error {
			created = true
			return nil
		},
		UpdateFunc: func(ctx context.Context, in *intake.Intake) error {
			updated = true
			return nil
		},
	}

	_, err := newUpdateUseCase(repo, &passthroughTx{}).Execute(context.Background(),
		UpdateIntakeCommand{ID: 999, Status: stringPtr("resolved")})

	assert.True(t, errors.IsNotFoundError(err))
	assert.False(t, created)
	assert.False(t, updated)
}

func TestUpdateIntakeUseCase_Execute_RepositoryError(t *testing.T) {
	repo := &mockIntakeRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*intake.Intake, error) {
			return existingIntake(id, vo.StatusNew, vo.CategoryOther), nil
		},
		UpdateFunc: func(ctx context.Context, in *intake.Intake) error {
			return stderrors.New("database is locked")
		},
	}

	_, err := newUpdateUseCase(repo, &passthroughTx{}).Execute(context.Background(),
		UpdateIntakeCommand{ID: 3, Status: stringPtr("resolved")})

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
	assert.Equal(t, "Failed to update intake", appErr.Message)
}

func TestUpdateIntakeUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		command    UpdateIntakeCommand
		wantFields []string
	}{
		{
			name:       "no fields",
			command:    UpdateIntakeCommand{ID: 1},
			wantFields: []string{"status", "internal_notes"},
		},
		{
			name:       "unknown status",
			command:    UpdateIntakeCommand{ID: 1, Status: stringPtr("closed")},
			wantFields: []string{"status"},
		},
		{
			name:       "notes too long",
			command:    UpdateIntakeCommand{ID: 1, InternalNotes: stringPtr(strings.Repeat("n", 5001))},
			wantFields: []string{"internal_notes"},
		},
		{
			name:       "zero id",
			command:    UpdateIntakeCommand{Status: stringPtr("new")},
			wantFields: []string{"id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &passthroughTx{}

			_, err := newUpdateUseCase(&mockIntakeRepository{}, tx).Execute(context.Background(), tt.command)

			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
			var fields []string
			for _, f := range appErr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
			assert.Zero(t, tx.calls)
		})
	}
}

func TestUpdateIntakeUseCase_Execute_ClearsNotes(t *testing.T) {
	stored := existingIntake(2, vo.StatusInReview, vo.CategoryBilling)
	require.NoError(t, stored.UpdateInternalNotes("old note", testTime))

	repo := &mockIntakeRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*intake.Intake, error) {
			return stored, nil
		},
	}

	result, err := newUpdateUseCase(repo, &passthroughTx{}).Execute(context.Background(),
		UpdateIntakeCommand{ID: 2, InternalNotes: stringPtr("")})

	require.NoError(t, err)
	assert.Empty(t, result.InternalNotes)
	assert.Equal(t, "in_review", result.Status)
}
