package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eduka/eduka-api/internal/domain"
	"github.com/eduka/eduka-api/internal/fixtures"
	"github.com/eduka/eduka-api/internal/store"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository struct {
	loader  *fixtures.Loader
	store   *store.Store[domain.Notification]
	latency store.Latency
}

func NewNotificationRepository(loader *fixtures.Loader, latency store.Latency) *NotificationRepository {
	return &NotificationRepository{
		loader:  loader,
		store:   store.New[domain.Notification](),
		latency: latency,
	}
}

func (r *NotificationRepository) Load() error {
	notifications, err := fixtures.LoadCollection[domain.Notification](r.loader, "notifications")
	if err != nil {
		return fmt.Errorf("fixtures.LoadCollection -> %w", err)
	}

	r.store.Replace(notifications)

	return nil
}

func (r *NotificationRepository) FindAll(ctx context.Context) ([]domain.Notification, error) {
	return r.store.Snapshot(), nil
}

func (r *NotificationRepository) Update(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return domain.Notification{}, err
	}

	snapshot := r.store.Snapshot()
	next := make([]domain.Notification, len(snapshot))
	found := false
	for i, n := range snapshot {
		if n.ID == notification.ID {
			next[i] = notification
			found = true
		} else {
			next[i] = n
		}
	}
	if !found {
		return domain.Notification{}, ErrNotificationNotFound
	}

	r.store.Replace(next)

	return notification, nil
}

// Create prepends, newest first.
func (r *NotificationRepository) Create(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return domain.Notification{}, err
	}

	snapshot := r.store.Snapshot()
	next := make([]domain.Notification, 0, len(snapshot)+1)
	next = append(next, notification)
	next = append(next, snapshot...)

	r.store.Replace(next)

	return notification, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	if err := r.latency.Wait(ctx); err != nil {
		return err
	}

	snapshot := r.store.Snapshot()
	next := make([]domain.Notification, 0, len(snapshot))
	for _, n := range snapshot {
		if n.ID != id {
			next = append(next, n)
		}
	}

	r.store.Replace(next)

	return nil
}

// ReplaceAll swaps the whole collection, used by mark-all-read.
func (r *NotificationRepository) ReplaceAll(ctx context.Context, notifications []domain.Notification) error {
	if err := r.latency.Wait(ctx); err != nil {
		return err
	}

	r.store.Replace(notifications)

	return nil
}
