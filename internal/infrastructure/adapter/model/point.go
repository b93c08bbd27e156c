package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Point represents the database model for ledger entries. Rows are insert-only.
type Point struct {
	ID        string            `gorm:"primaryKey;size:36"`
	UserID    string            `gorm:"not null;index;size:64"`
	Amount    decimal.Decimal   `gorm:"type:numeric(30,8);not null"`
	Action    string            `gorm:"not null;size:20"`
	Source    string            `gorm:"not null;size:64;index"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"not null;index"`
}

// TableName specifies the table name for Point
func (Point) TableName() string {
	return "points"
}
