package group

import (
	"time"
)

// IsMasterGroup defaults to false and is never settable from a request.
type Group struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	Name          string    `gorm:"not null"`
	Description   string    `gorm:"type:text"`
	IsMasterGroup bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}
