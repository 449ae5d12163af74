package usecases

import (
	"context"
	"time"

	"intake/internal/domain/intake"
	vo "intake/internal/domain/intake/valueobjects"
)

type mockIntakeRepository struct {
	CreateFunc  func(ctx context.Context, in *intake.Intake) error
	GetByIDFunc func(ctx context.Context, id uint) (*intake.Intake, error)
	UpdateFunc  func(ctx context.Context, in *intake.Intake) error
	ListFunc    func(ctx context.Context, filter intake.Filter) ([]*intake.Intake, int64, error)
	StatsFunc   func(ctx context.Context) (*intake.Stats, error)
}

func (m *mockIntakeRepository) Create(ctx context.Context, in *intake.Intake) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return in.SetID(1)
}

func (m *mockIntakeRepository) GetByID(ctx context.Context, id uint) (*intake.Intake, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, intake.ErrIntakeNotFound
}

func (m *mockIntakeRepository) Update(ctx context.Context, in *intake.Intake) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, in)
	}
	return nil
}

func (m *mockIntakeRepository) List(ctx context.Context, filter intake.Filter) ([]*intake.Intake, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockIntakeRepository) Stats(ctx context.Context) (*intake.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return intake.NewStats(), nil
}

// passthroughTx runs fn without a real transaction.
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type mockRenderer struct {
	RenderFunc func(source string) (string, error)
}

func (m *mockRenderer) Render(source string) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(source)
	}
	return "<p>" + source + "</p>", nil
}

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func existingIntake(id uint, status vo.Status, category vo.Category) *intake.Intake {
	in, err := intake.ReconstructIntake(id, "Jane Doe", "jane@example.com", "My invoice is wrong",
		3, category, status, "", testTime, testTime)
	if err != nil {
		panic(err)
	}
	return in
}
