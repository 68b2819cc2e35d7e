// Package group manages groups and their membership.
package group

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lumeo-app/backend/pkg/domain"
	"github.com/lumeo-app/backend/pkg/dto"
	"github.com/lumeo-app/backend/pkg/repository"
)

// Service manages groups.
type Service struct {
	store  repository.Store
	logger *slog.Logger
}

// NewService builds the group service.
func NewService(store repository.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// VerifyUsername reports whether a username exists, for the member
// picker. An unknown username is a negative answer, not an error.
func (s *Service) VerifyUsername(ctx context.Context, username string) (*dto.UsernameCheck, error) {
	u, err := s.store.Users().FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &dto.UsernameCheck{Username: username}, nil
		}
		return nil, err
	}
	return &dto.UsernameCheck{
		Username: username,
		Exists:   true,
		UserID:   &u.ID,
		Name:     u.Name,
		Surname:  u.Surname,
	}, nil
}

// CreateWithMembers creates a group with the creator plus the members
// resolved by username, all in one transaction. An unresolvable
// username aborts the whole creation.
func (s *Service) CreateWithMembers(ctx context.Context, in *dto.CreateGroup) (*dto.GroupWithMembers, error) {
	creator, err := s.store.Users().Get(ctx, in.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("resolving creator: %w", err)
	}

	members := []*domain.User{creator}
	for _, name := range in.Usernames {
		if name == creator.Username {
			continue
		}
		u, err := s.store.Users().FindByUsername(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("resolving member %q: %w", name, err)
		}
		members = append(members, u)
	}

	g := &domain.Group{Name: in.Name, Description: in.Description, CreatorID: creator.ID}
	err = s.store.Do(ctx, func(tx repository.Store) error {
		if err := tx.Groups().Create(ctx, g); err != nil {
			return err
		}
		for _, m := range members {
			row := &domain.GroupMember{UserID: m.ID, GroupID: g.ID}
			if err := tx.GroupMembers().Create(ctx, row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("group created", "id", g.ID, "members", len(members))
	return &dto.GroupWithMembers{Group: g, Members: memberViews(members)}, nil
}

// GetWithMembers returns a group and its resolved member list.
func (s *Service) GetWithMembers(ctx context.Context, id uint) (*dto.GroupWithMembers, error) {
	g, err := s.store.Groups().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.GroupMembers().ListByGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	var members []*domain.User
	for _, row := range rows {
		if u, err := s.store.Users().Get(ctx, row.UserID); err == nil {
			members = append(members, u)
		}
	}
	return &dto.GroupWithMembers{Group: g, Members: memberViews(members)}, nil
}

// ListForUser returns every group the user belongs to.
func (s *Service) ListForUser(ctx context.Context, userID uint) ([]*domain.Group, error) {
	rows, err := s.store.GroupMembers().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	groups := make([]*domain.Group, 0, len(rows))
	for _, row := range rows {
		g, err := s.store.Groups().Get(ctx, row.GroupID)
		if err != nil {
			continue
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// AddMemberByUsername adds the named user to the group. Adding an
// existing member is a no-op.
func (s *Service) AddMemberByUsername(ctx context.Context, groupID uint, username string) (*dto.GroupMemberView, error) {
	if _, err := s.store.Groups().Get(ctx, groupID); err != nil {
		return nil, err
	}
	u, err := s.store.Users().FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.GroupMembers().ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.UserID == u.ID {
			v := memberViews([]*domain.User{u})[0]
			return &v, nil
		}
	}
	if err := s.store.GroupMembers().Create(ctx, &domain.GroupMember{UserID: u.ID, GroupID: groupID}); err != nil {
		return nil, err
	}
	v := memberViews([]*domain.User{u})[0]
	return &v, nil
}

// RemoveMember removes a user from a group.
func (s *Service) RemoveMember(ctx context.Context, groupID, userID uint) error {
	return s.store.GroupMembers().DeleteByGroupAndUser(ctx, groupID, userID)
}

// Delete removes a group and its membership rows atomically.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, err := s.store.Groups().Get(ctx, id); err != nil {
		return err
	}
	return s.store.Do(ctx, func(tx repository.Store) error {
		rows, err := tx.GroupMembers().ListByGroup(ctx, id)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if err := tx.GroupMembers().DeleteByGroupAndUser(ctx, id, row.UserID); err != nil {
				return err
			}
		}
		return tx.Groups().Delete(ctx, id)
	})
}

func memberViews(users []*domain.User) []dto.GroupMemberView {
	views := make([]dto.GroupMemberView, 0, len(users))
	for _, u := range users {
		views = append(views, dto.GroupMemberView{
			UserID:   u.ID,
			Username: u.Username,
			Name:     u.Name,
			Surname:  u.Surname,
			Email:    u.Email,
		})
	}
	return views
}
