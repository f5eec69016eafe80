package database

import (
	"context"
	"errors"

	"orgboard/internal/core/errs"
	"orgboard/internal/core/post"
	postPort "orgboard/internal/ports/post"

	"gorm.io/gorm"
)

type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := dbFrom(ctx, repo.db).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// FindByID reports an absent post as errs.ErrPostNotFound; any other store
// failure passes through unchanged.
func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id int64) (*post.Post, error) {
	var p post.Post
	if err := dbFrom(ctx, repo.db).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) error {
	return dbFrom(ctx, repo.db).Save(p).Error
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, p *post.Post) error {
	return dbFrom(ctx, repo.db).Delete(p).Error
}

// ListOrdered scans posts by creation time with total-count metadata. Page
// numbering is zero-based.
func (repo *PostRepositoryDatabase) ListOrdered(ctx context.Context, dir postPort.SortDirection, page, size int) (*postPort.Page, error) {
	db := dbFrom(ctx, repo.db)

	var total int64
	if err := db.Model(&post.Post{}).Count(&total).Error; err != nil {
		return nil, err
	}

	order := "created_at ASC"
	if dir == postPort.SortDesc {
		order = "created_at DESC"
	}

	var posts []*post.Post
	if err := db.Order(order).Offset(page * size).Limit(size).Find(&posts).Error; err != nil {
		return nil, err
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return &postPort.Page{
		Posts:         posts,
		Number:        page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

func (repo *PostRepositoryDatabase) SearchByTitleOrContent(ctx context.Context, keyword string) ([]*post.Post, error) {
	var posts []*post.Post
	pattern := "%" + keyword + "%"
	if err := dbFrom(ctx, repo.db).
		Where("title LIKE ? OR content LIKE ?", pattern, pattern).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
