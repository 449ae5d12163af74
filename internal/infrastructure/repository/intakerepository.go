package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"intake/internal/domain/intake"
	vo "intake/internal/domain/intake/valueobjects"
	"intake/internal/infrastructure/persistence/mappers"
	"intake/internal/infrastructure/persistence/models"
	"intake/internal/shared/db"
	"intake/internal/shared/logger"
)

// sortColumns maps sortable fields to columns. Only these names ever reach
// ORDER BY.
var sortColumns = map[string]string{
	intake.SortFieldID:        "id",
	intake.SortFieldName:      "name",
	intake.SortFieldEmail:     "email",
	intake.SortFieldUrgency:   "urgency",
	intake.SortFieldCategory:  "category",
	intake.SortFieldStatus:    "status",
	intake.SortFieldCreatedAt: "created_at",
	intake.SortFieldUpdatedAt: "updated_at",
}

type IntakeRepository struct {
	db     *gorm.DB
	mapper mappers.IntakeMapper
	logger logger.Interface
}

func NewIntakeRepository(gormDB *gorm.DB, log logger.Interface) *IntakeRepository {
	return &IntakeRepository{
		db:     gormDB,
		mapper: mappers.NewIntakeMapper(),
		logger: log,
	}
}

func (r *IntakeRepository) Create(ctx context.Context, in *intake.Intake) error {
	model := r.mapper.ToModel(in)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create intake: %w", err)
	}

	return in.SetID(model.ID)
}

func (r *IntakeRepository) GetByID(ctx context.Context, id uint) (*intake.Intake, error) {
	var model models.IntakeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, intake.ErrIntakeNotFound
		}
		return nil, fmt.Errorf("failed to get intake %d: %w", id, err)
	}

	return r.mapper.ToDomain(&model)
}

// Update writes the staff-editable fields and updated_at. Every other column
// is left untouched.
func (r *IntakeRepository) Update(ctx context.Context, in *intake.Intake) error {
	model := r.mapper.ToModel(in)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.IntakeModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"status":         model.Status,
			"internal_notes": model.InternalNotes,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update intake %d: %w", model.ID, result.Error)
	}

	// updated_at always changes, so zero rows means the id does not exist.
	if result.RowsAffected == 0 {
		return intake.ErrIntakeNotFound
	}
	return nil
}

func (r *IntakeRepository) List(ctx context.Context, filter intake.Filter) ([]*intake.Intake, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.IntakeModel{}).Scopes(
		db.WhereEq("status", statusPtr(filter.Status)),
		db.WhereEq("category", categoryPtr(filter.Category)),
	)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count intakes: %w", err)
	}

	sort := filter.Sort
	column, ok := sortColumns[sort.Field]
	if !ok {
		sort = intake.DefaultSort()
		column = sortColumns[sort.Field]
	}

	var list []*models.IntakeModel
	if err := query.Scopes(db.OrderBy(column, sort.Desc)).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list intakes: %w", err)
	}

	intakes, err := r.mapper.ToDomainList(list)
	if err != nil {
		return nil, 0, err
	}
	return intakes, total, nil
}

type bucketCount struct {
	Bucket string
	Total  int64
}

func (r *IntakeRepository) Stats(ctx context.Context) (*intake.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	stats := intake.NewStats()

	byStatus, err := r.countBy(tx, "status")
	if err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		status, err := vo.NewStatus(row.Bucket)
		if err != nil {
			r.logger.Warnw("skipping unknown status in stats", "status", row.Bucket, "count", row.Total)
			continue
		}
		stats.ByStatus[status] = row.Total
		stats.Total += row.Total
	}

	byCategory, err := r.countBy(tx, "category")
	if err != nil {
		return nil, err
	}
	for _, row := range byCategory {
		category, err := vo.NewCategory(row.Bucket)
		if err != nil {
			r.logger.Warnw("skipping unknown category in stats", "category", row.Bucket, "count", row.Total)
			continue
		}
		stats.ByCategory[category] = row.Total
	}

	return stats, nil
}

func (r *IntakeRepository) countBy(tx *gorm.DB, column string) ([]bucketCount, error) {
	var rows []bucketCount
	err := tx.Model(&models.IntakeModel{}).
		Select(column + " AS bucket, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count intakes by %s: %w", column, err)
	}
	return rows, nil
}

func statusPtr(s *vo.Status) *string {
	if s == nil {
		return nil
	}
	v := s.String()
	return &v
}

func categoryPtr(c *vo.Category) *string {
	if c == nil {
		return nil
	}
	v := c.String()
	return &v
}
