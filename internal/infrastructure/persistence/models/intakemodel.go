package models

import "intake/internal/shared/constants"

// IntakeModel is the intakes table. Timestamps are unix milliseconds written
// by the domain, so gorm's automatic time tracking is disabled.
type IntakeModel struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:100;not null"`
	Email         string `gorm:"size:254;not null"`
	Description   string `gorm:"type:text;not null"`
	Urgency       int    `gorm:"not null"`
	Category      string `gorm:"size:32;not null;index:idx_intakes_category;index:idx_intakes_status_category,priority:2"`
	Status        string `gorm:"size:32;not null;index:idx_intakes_status;index:idx_intakes_status_category,priority:1"`
	InternalNotes string `gorm:"type:text"`
	CreatedAt     int64  `gorm:"autoCreateTime:false;not null;index:idx_intakes_created_at"`
	UpdatedAt     int64  `gorm:"autoUpdateTime:false;not null"`
}

func (IntakeModel) TableName() string {
	return constants.TableIntakes
}
