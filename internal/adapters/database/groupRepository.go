package database

import (
	"context"
	"errors"

	"orgboard/internal/core/errs"
	"orgboard/internal/core/group"

	"gorm.io/gorm"
)

type GroupRepositoryDatabase struct {
	db *gorm.DB
}

func NewGroupRepositoryDatabase(db *gorm.DB) *GroupRepositoryDatabase {
	return &GroupRepositoryDatabase{db: db}
}

func (repo *GroupRepositoryDatabase) Create(ctx context.Context, g *group.Group) (*group.Group, error) {
	if err := dbFrom(ctx, repo.db).Create(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

// FindByID reports an absent group as errs.ErrGroupNotFound; any other
// store failure passes through unchanged.
func (repo *GroupRepositoryDatabase) FindByID(ctx context.Context, id int64) (*group.Group, error) {
	var g group.Group
	if err := dbFrom(ctx, repo.db).First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrGroupNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (repo *GroupRepositoryDatabase) Update(ctx context.Context, g *group.Group) error {
	return dbFrom(ctx, repo.db).Save(g).Error
}

func (repo *GroupRepositoryDatabase) Delete(ctx context.Context, g *group.Group) error {
	return dbFrom(ctx, repo.db).Delete(g).Error
}

func (repo *GroupRepositoryDatabase) ListAll(ctx context.Context) ([]*group.Group, error) {
	var groups []*group.Group
	if err := dbFrom(ctx, repo.db).Order("id ASC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}
