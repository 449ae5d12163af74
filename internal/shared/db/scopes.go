// Package db provides gorm helpers shared by repositories.
package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderBy sorts by column and then by id in the same direction, so rows with
// equal sort values keep a stable order. The column must come from a
// whitelist; it is not quoted by the caller.
func OrderBy(column string, desc bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})
		if column != "id" {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc})
		}
		return db
	}
}

// WhereEq adds an equality condition only when value is non-nil.
func WhereEq[T any](column string, value *T) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == nil {
			return db
		}
		return db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: *value})
	}
}
