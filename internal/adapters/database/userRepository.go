package database

import (
	"context"
	"errors"

	"orgboard/internal/core/errs"
	"orgboard/internal/core/user"

	"gorm.io/gorm"
)

type UserRepositoryDatabase struct {
	db *gorm.DB
}

func NewUserRepositoryDatabase(db *gorm.DB) *UserRepositoryDatabase {
	return &UserRepositoryDatabase{db: db}
}

// Create reports a username collision as errs.ErrUsernameTaken; the unique
// index is the authority, so a concurrent duplicate that slips past the
// service-level pre-check still surfaces as the same kind.
func (repo *UserRepositoryDatabase) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if err := dbFrom(ctx, repo.db).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) FindBySubjectUUID(ctx context.Context, subjectUUID string) (*user.User, error) {
	var u user.User
	if err := dbFrom(ctx, repo.db).First(&u, "subject_uuid = ?", subjectUUID).Error; err != nil {
		return nil, notFoundAsMissingUser(err)
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByID(ctx context.Context, id int64) (*user.User, error) {
	var u user.User
	if err := dbFrom(ctx, repo.db).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFoundAsMissingUser(err)
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	if err := dbFrom(ctx, repo.db).First(&u, "username = ?", username).Error; err != nil {
		return nil, notFoundAsMissingUser(err)
	}
	return &u, nil
}

// notFoundAsMissingUser translates an absent row into the user-not-found
// kind; every other store failure passes through unchanged.
func notFoundAsMissingUser(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}
	return err
}
