package groupapp

import (
	"context"
	"errors"

	"orgboard/internal/core/errs"
	groupEntity "orgboard/internal/core/group"
	authPort "orgboard/internal/ports/auth"
	groupPort "orgboard/internal/ports/group"
)

// GroupService manages named groups. Groups carry no cross-entity
// invariants; the master-group flag always starts false and no request can
// set it.
type GroupService struct {
	GroupRepository groupPort.GroupRepository
	TokenValidator  authPort.TokenValidator
}

func NewGroupService(repo groupPort.GroupRepository, validator authPort.TokenValidator) *GroupService {
	return &GroupService{
		GroupRepository: repo,
		TokenValidator:  validator,
	}
}

func (s *GroupService) CreateGroup(ctx context.Context, req groupPort.GroupRequest, token string) (*groupPort.GroupDTO, error) {
	if err := s.authenticate(ctx, token); err != nil {
		return nil, err
	}
	g, err := s.GroupRepository.Create(ctx, &groupEntity.Group{
		Name:          req.Name,
		Description:   req.Description,
		IsMasterGroup: false,
	})
	if err != nil {
		return nil, err
	}
	return groupResponse(g), nil
}

// UpdateGroup applies name and description only; the master flag is never
// touched.
func (s *GroupService) UpdateGroup(ctx context.Context, groupID int64, req groupPort.GroupRequest, token string) error {
	if err := s.authenticate(ctx, token); err != nil {
		return err
	}
	g, err := s.GroupRepository.FindByID(ctx, groupID)
	if err != nil {
		return err
	}
	g.Name = req.Name
	g.Description = req.Description
	return s.GroupRepository.Update(ctx, g)
}

func (s *GroupService) GetGroup(ctx context.Context, groupID int64, token string) (*groupPort.GroupDTO, error) {
	if err := s.authenticate(ctx, token); err != nil {
		return nil, err
	}
	g, err := s.GroupRepository.FindByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return groupResponse(g), nil
}

func (s *GroupService) ListGroups(ctx context.Context, token string) ([]*groupPort.GroupDTO, error) {
	if err := s.authenticate(ctx, token); err != nil {
		return nil, err
	}
	groups, err := s.GroupRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*groupPort.GroupDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, groupResponse(g))
	}
	return out, nil
}

func (s *GroupService) DeleteGroup(ctx context.Context, groupID int64, token string) error {
	if err := s.authenticate(ctx, token); err != nil {
		return err
	}
	g, err := s.GroupRepository.FindByID(ctx, groupID)
	if err != nil {
		return err
	}
	return s.GroupRepository.Delete(ctx, g)
}

// authenticate rejects only tokens the validator turned down; a validator
// outage propagates unchanged in kind.
func (s *GroupService) authenticate(ctx context.Context, token string) error {
	if _, err := s.TokenValidator.Validate(ctx, token); err != nil {
		if errors.Is(err, errs.ErrInvalidToken) {
			return errs.ErrUnauthenticated
		}
		return err
	}
	return nil
}

func groupResponse(g *groupEntity.Group) *groupPort.GroupDTO {
	return &groupPort.GroupDTO{
		ID:            g.ID,
		Name:          g.Name,
		Description:   g.Description,
		IsMasterGroup: g.IsMasterGroup,
	}
}
