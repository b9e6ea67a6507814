package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/eduka/eduka-api/internal/domain"
	"github.com/eduka/eduka-api/internal/repository"
)

var ErrNotificationNotFound = repository.ErrNotificationNotFound

type NotificationRepository interface {
	FindAll(ctx context.Context) ([]domain.Notification, error)
	Update(ctx context.Context, notification domain.Notification) (domain.Notification, error)
	Create(ctx context.Context, notification domain.Notification) (domain.Notification, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, notifications []domain.Notification) error
}

type NotificationUserReader interface {
	FindByRole(ctx context.Context, role string) ([]domain.User, error)
}

type NotificationService struct {
	repo  NotificationRepository
	users NotificationUserReader
}

func NewNotificationService(repo NotificationRepository, users NotificationUserReader) *NotificationService {
	return &NotificationService{
		repo:  repo,
		users: users,
	}
}

// ListByUser returns the user's notifications, newest first.
func (s *NotificationService) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	notifications, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	mine := make([]domain.Notification, 0, len(notifications))
	for _, n := range notifications {
		if n.UserID == userID {
			mine = append(mine, n)
		}
	}

	sort.Slice(mine, func(i, j int) bool {
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})

	return mine, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	notifications, err := s.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range notifications {
		if !n.Lu {
			count++
		}
	}

	return count, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id string) (domain.Notification, error) {
	notifications, err := s.repo.FindAll(ctx)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	for _, n := range notifications {
		if n.ID == id {
			n.Lu = true

			updated, err := s.repo.Update(ctx, n)
			if err != nil {
				return domain.Notification{}, fmt.Errorf("s.repo.Update -> %w", err)
			}

			return updated, nil
		}
	}

	return domain.Notification{}, ErrNotificationNotFound
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	notifications, err := s.repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	next := make([]domain.Notification, len(notifications))
	for i, n := range notifications {
		if n.UserID == userID {
			n.Lu = true
		}
		next[i] = n
	}

	if err = s.repo.ReplaceAll(ctx, next); err != nil {
		return fmt.Errorf("s.repo.ReplaceAll -> %w", err)
	}

	return nil
}

func (s *NotificationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// Notify creates one notification for one user.
func (s *NotificationService) Notify(ctx context.Context, userID, typ, titre, message string, metadata map[string]string) error {
	_, err := s.repo.Create(ctx, domain.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      typ,
		Titre:     titre,
		Message:   message,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("s.repo.Create -> %w", err)
	}

	return nil
}

// NotifyAdmins fans one notification out to every admin user; incident
// reports and the contact form end up here.
func (s *NotificationService) NotifyAdmins(ctx context.Context, typ, titre, message string, metadata map[string]string) error {
	admins, err := s.users.FindByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("s.users.FindByRole -> %w", err)
	}

	for _, admin := range admins {
		if err = s.Notify(ctx, admin.ID, typ, titre, message, metadata); err != nil {
			return err
		}
	}

	return nil
}
