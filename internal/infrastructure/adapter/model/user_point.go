package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserPoint represents the database model for the derived balance aggregate
type UserPoint struct {
	UserID    string          `gorm:"primaryKey;size:64"`
	Balance   decimal.Decimal `gorm:"type:numeric(30,8);not null;index"`
	Level     int             `gorm:"not null;default:1"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName specifies the table name for UserPoint
func (UserPoint) TableName() string {
	return "user_points"
}
