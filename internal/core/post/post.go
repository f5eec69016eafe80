package post

import (
	"time"
)

// Post is mutable only in Title and Content; ID, UserID and CreatedAt are
// fixed at creation. CreatedAt is the sole sort key for listing.
type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"not null"`
	Content   string    `gorm:"type:text;not null"`
	UserID    int64     `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
