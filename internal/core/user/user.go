package user

import (
	"time"

	"github.com/gofrs/uuid"
)

// SubjectUUID is the identity issued by the token validator at registration.
// It maps one-to-one to the store-assigned ID.
type User struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	SubjectUUID uuid.UUID `gorm:"type:char(36);uniqueIndex;not null"`
	Username    string    `gorm:"uniqueIndex;not null"`
	Name        string    `gorm:"not null"`
	Password    string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}
