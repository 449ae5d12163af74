package usecases

import (
	"context"

	"intake/internal/application/intake/dto"
	"intake/internal/domain/intake"
)

type CreateIntakeExecutor interface {
	Execute(ctx context.Context, cmd CreateIntakeCommand) (*dto.IntakeDTO, error)
}

type GetIntakeExecutor interface {
	Execute(ctx context.Context, query GetIntakeQuery) (*dto.IntakeDTO, error)
}

type ListIntakesExecutor interface {
	Execute(ctx context.Context, query ListIntakesQuery) (*ListIntakesResult, error)
}

type UpdateIntakeExecutor interface {
	Execute(ctx context.Context, cmd UpdateIntakeCommand) (*dto.IntakeDTO, error)
}

type GetIntakeStatsExecutor interface {
	Execute(ctx context.Context) (*dto.StatsDTO, error)
}

// Classifier assigns a category to a description.
type Classifier interface {
	Explain(text string) intake.Classification
}

// Sanitizer strips markup from untrusted text.
type Sanitizer interface {
	Text(input string) string
}

// NotesRenderer turns staff notes into HTML.
type NotesRenderer interface {
	Render(source string) (string, error)
}

// TransactionRunner runs fn inside one database transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
