package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/alexanderramin/chessboard/internal/repository"
	"github.com/google/uuid"
)

// Developers and complexes are owned by the surrounding platform. These
// services exist so the CLI can seed and browse them.

type developerService struct {
	developers repository.DeveloperRepo
}

func NewDeveloperService(developers repository.DeveloperRepo) DeveloperService {
	return &developerService{developers: developers}
}

func (s *developerService) Create(ctx context.Context, name string) (*domain.Developer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("developer name is required")
	}
	d := &domain.Developer{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := s.developers.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *developerService) List(ctx context.Context) ([]*domain.Developer, error) {
	return s.developers.List(ctx)
}

type complexService struct {
	complexes  repository.ComplexRepo
	developers repository.DeveloperRepo
}

func NewComplexService(complexes repository.ComplexRepo, developers repository.DeveloperRepo) ComplexService {
	return &complexService{complexes: complexes, developers: developers}
}

func (s *complexService) Create(ctx context.Context, name, developerID string) (*domain.Complex, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("complex name is required")
	}
	now := time.Now().UTC().Truncate(time.Second)
	c := &domain.Complex{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if developerID != "" {
		if _, err := s.developers.GetByID(ctx, developerID); err != nil {
			return nil, fmt.Errorf("developer %s: %w", developerID, err)
		}
		c.DeveloperID = &developerID
	}
	if err := s.complexes.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *complexService) GetByID(ctx context.Context, id string) (*domain.Complex, error) {
	return s.complexes.GetByID(ctx, id)
}

func (s *complexService) List(ctx context.Context, developerID string) ([]*domain.Complex, error) {
	return s.complexes.List(ctx, developerID)
}

type notificationService struct {
	notifications repository.NotificationRepo
}

func NewNotificationService(notifications repository.NotificationRepo) NotificationService {
	return &notificationService{notifications: notifications}
}

func (s *notificationService) ListUnread(ctx context.Context, role domain.Role) ([]*domain.Notification, error) {
	return s.notifications.ListUnread(ctx, role)
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	return s.notifications.MarkRead(ctx, id)
}
