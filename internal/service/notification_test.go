package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduka/eduka-api/internal/domain"
)

func TestNotificationService_ListByUser(t *testing.T) {
	repo := &fakeNotificationRepo{notifications: []domain.Notification{
		{ID: "notif-1", UserID: "user-1", CreatedAt: time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "notif-2", UserID: "user-2", CreatedAt: time.Date(2025, time.October, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "notif-3", UserID: "user-1", CreatedAt: time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewNotificationService(repo, &fakeUserRepo{})

	mine, err := svc.ListByUser(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "notif-3", mine[0].ID) // newest first
}

func TestNotificationService_UnreadCount(t *testing.T) {
	repo := &fakeNotificationRepo{notifications: []domain.Notification{
		{ID: "notif-1", UserID: "user-1"},
		{ID: "notif-2", UserID: "user-1", Lu: true},
		{ID: "notif-3", UserID: "user-1"},
		{ID: "notif-4", UserID: "user-2"},
	}}
	svc := NewNotificationService(repo, &fakeUserRepo{})

	count, err := svc.UnreadCount(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	repo := &fakeNotificationRepo{notifications: []domain.Notification{
		{ID: "notif-1", UserID: "user-1"},
	}}
	svc := NewNotificationService(repo, &fakeUserRepo{})

	updated, err := svc.MarkAsRead(context.Background(), "notif-1")
	require.NoError(t, err)
	assert.True(t, updated.Lu)
	assert.True(t, repo.notifications[0].Lu)

	_, err = svc.MarkAsRead(context.Background(), "notif-inconnue")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestNotificationService_MarkAllAsRead(t *testing.T) {
	repo := &fakeNotificationRepo{notifications: []domain.Notification{
		{ID: "notif-1", UserID: "user-1"},
		{ID: "notif-2", UserID: "user-1"},
		{ID: "notif-3", UserID: "user-2"},
	}}
	svc := NewNotificationService(repo, &fakeUserRepo{})

	err := svc.MarkAllAsRead(context.Background(), "user-1")

	require.NoError(t, err)
	assert.True(t, repo.notifications[0].Lu)
	assert.True(t, repo.notifications[1].Lu)
	assert.False(t, repo.notifications[2].Lu)
}

func TestNotificationService_Delete(t *testing.T) {
	repo := &fakeNotificationRepo{notifications: []domain.Notification{
		{ID: "notif-1", UserID: "user-1"},
		{ID: "notif-2", UserID: "user-1"},
	}}
	svc := NewNotificationService(repo, &fakeUserRepo{})

	err := svc.Delete(context.Background(), "notif-1")

	require.NoError(t, err)
	require.Len(t, repo.notifications, 1)
	assert.Equal(t, "notif-2", repo.notifications[0].ID)
}

func TestNotificationService_NotifyAdmins(t *testing.T) {
	repo := &fakeNotificationRepo{}
	users := &fakeUserRepo{users: []domain.User{
		{ID: "user-1", Role: domain.RoleFormateur},
		{ID: "admin-1", Role: domain.RoleAdmin},
		{ID: "admin-2", Role: domain.RoleAdmin},
	}}
	svc := NewNotificationService(repo, users)

	err := svc.NotifyAdmins(context.Background(), domain.TypeNotificationMessageAdmin,
		"Question planning", "Bonjour", map[string]string{"email": "sophie.martin@eduka.fr"})

	require.NoError(t, err)
	require.Len(t, repo.notifications, 2)
	assert.Equal(t, "admin-1", repo.notifications[0].UserID)
	assert.Equal(t, "admin-2", repo.notifications[1].UserID)
	assert.Equal(t, domain.TypeNotificationMessageAdmin, repo.notifications[0].Type)
}
