package postapp

import (
	"context"
	"errors"
	"time"

	"orgboard/internal/core/errs"
	postEntity "orgboard/internal/core/post"
	userEntity "orgboard/internal/core/user"
	authPort "orgboard/internal/ports/auth"
	postPort "orgboard/internal/ports/post"
	"orgboard/internal/ports/storage"
	userPort "orgboard/internal/ports/user"
)

// PostService owns every authorization and ordering decision around posts.
// It holds no state across calls; each operation fetches fresh entities and
// persists or discards them within its own scope.
type PostService struct {
	PostRepository postPort.PostRepository
	UserRepository userPort.UserRepository
	TokenValidator authPort.TokenValidator
	TxManager      storage.TxManager
}

func NewPostService(
	postRepo postPort.PostRepository,
	userRepo userPort.UserRepository,
	validator authPort.TokenValidator,
	txManager storage.TxManager,
) *PostService {
	return &PostService{
		PostRepository: postRepo,
		UserRepository: userRepo,
		TokenValidator: validator,
		TxManager:      txManager,
	}
}

// CreatePost persists a new post owned by the authenticated user. There is
// no result payload; the side effect is the new durable record.
func (s *PostService) CreatePost(ctx context.Context, req postPort.PostRequest, token string) error {
	user, err := s.authenticateUser(ctx, token)
	if err != nil {
		return err
	}
	return s.TxManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.PostRepository.Create(ctx, &postEntity.Post{
			Title:   req.Title,
			Content: req.Content,
			UserID:  user.ID,
		})
		return err
	})
}

// UpdatePost applies title and content from req to an existing post. ID,
// owner and creation timestamp are untouched. Only the owner may update.
func (s *PostService) UpdatePost(ctx context.Context, postID int64, req postPort.PostRequest, token string) error {
	user, err := s.authenticateUser(ctx, token)
	if err != nil {
		return err
	}
	return s.TxManager.Do(ctx, func(ctx context.Context) error {
		post, err := s.PostRepository.FindByID(ctx, postID)
		if err != nil {
			return err
		}
		if err := validateAuthor(user, post); err != nil {
			return err
		}
		post.Title = req.Title
		post.Content = req.Content
		return s.PostRepository.Update(ctx, post)
	})
}

// DeletePost removes a post permanently. Only the owner may delete.
func (s *PostService) DeletePost(ctx context.Context, postID int64, token string) error {
	user, err := s.authenticateUser(ctx, token)
	if err != nil {
		return err
	}
	return s.TxManager.Do(ctx, func(ctx context.Context) error {
		post, err := s.PostRepository.FindByID(ctx, postID)
		if err != nil {
			return err
		}
		if err := validateAuthor(user, post); err != nil {
			return err
		}
		return s.PostRepository.Delete(ctx, post)
	})
}

// GetPost returns one post with its owner's public profile. Any
// authenticated user may view any post.
func (s *PostService) GetPost(ctx context.Context, postID int64, token string) (*postPort.PostDTO, error) {
	if _, err := s.authenticateUser(ctx, token); err != nil {
		return nil, err
	}
	post, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	// Owner ids are only ever set from valid users, so ErrUserNotFound here
	// is a data-consistency fault, not a missing post.
	owner, err := s.UserRepository.FindByID(ctx, post.UserID)
	if err != nil {
		return nil, err
	}
	return postResponse(post, owner), nil
}

// ListPosts returns one page of the ordered scan, owner attached per post.
func (s *PostService) ListPosts(ctx context.Context, sort string, page, size int, token string) (*postPort.PostListDTO, error) {
	if _, err := s.authenticateUser(ctx, token); err != nil {
		return nil, err
	}
	result, err := s.PostRepository.ListOrdered(ctx, postPort.SortDirectionFrom(sort), page, size)
	if err != nil {
		return nil, err
	}
	posts := make([]*postPort.PostDTO, 0, len(result.Posts))
	for _, p := range result.Posts {
		owner, err := s.UserRepository.FindByID(ctx, p.UserID)
		if err != nil {
			return nil, err
		}
		posts = append(posts, postResponse(p, owner))
	}
	return &postPort.PostListDTO{
		Posts:         posts,
		Page:          result.Number,
		Size:          result.Size,
		TotalElements: result.TotalElements,
		TotalPages:    result.TotalPages,
	}, nil
}

// SearchPosts returns every post matching keyword in title or content. The
// searching user's own profile is attached to each hit.
func (s *PostService) SearchPosts(ctx context.Context, keyword, token string) ([]*postPort.PostDTO, error) {
	user, err := s.authenticateUser(ctx, token)
	if err != nil {
		return nil, err
	}
	hits, err := s.PostRepository.SearchByTitleOrContent(ctx, keyword)
	if err != nil {
		return nil, err
	}
	posts := make([]*postPort.PostDTO, 0, len(hits))
	for _, p := range hits {
		posts = append(posts, postResponse(p, user))
	}
	return posts, nil
}

// authenticateUser resolves a credential to a local account. A rejected
// token and a validator-accepted token with no matching account both surface
// as ErrUnauthenticated; any other validator or store failure propagates
// unchanged in kind.
func (s *PostService) authenticateUser(ctx context.Context, token string) (*userEntity.User, error) {
	subjectUUID, err := s.TokenValidator.Validate(ctx, token)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidToken) {
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}
	user, err := s.UserRepository.FindBySubjectUUID(ctx, subjectUUID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func validateAuthor(user *userEntity.User, post *postEntity.Post) error {
	if post.UserID != user.ID {
		return errs.ErrUnauthorized
	}
	return nil
}

func postResponse(p *postEntity.Post, owner *userEntity.User) *postPort.PostDTO {
	return &postPort.PostDTO{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
		User: &userPort.UserDTO{
			ID:       owner.ID,
			Username: owner.Username,
			Name:     owner.Name,
		},
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
