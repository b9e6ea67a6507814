package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduka/eduka-api/internal/domain"
)

func TestAuthService_Login(t *testing.T) {
	repo := &fakeUserRepo{users: []domain.User{
		{ID: "user-1", Email: "sophie.martin@eduka.fr", Role: domain.RoleFormateur},
	}}
	svc := NewAuthService(repo)

	user, err := svc.Login(context.Background(), "sophie.martin@eduka.fr", "peu-importe")

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestAuthService_LoginAccepteToutMotDePasse(t *testing.T) {
	repo := &fakeUserRepo{users: []domain.User{
		{ID: "user-1", Email: "sophie.martin@eduka.fr"},
	}}
	svc := NewAuthService(repo)

	// The fixture dataset carries no credentials; only the email counts.
	_, err := svc.Login(context.Background(), "sophie.martin@eduka.fr", "")
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), "sophie.martin@eduka.fr", "autre")
	assert.NoError(t, err)
}

func TestAuthService_LoginEmailInconnu(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{})

	_, err := svc.Login(context.Background(), "inconnu@eduka.fr", "x")

	assert.ErrorIs(t, err, ErrEmailInconnu)
}

func TestAuthService_CurrentUser(t *testing.T) {
	repo := &fakeUserRepo{users: []domain.User{
		{ID: "user-1", Email: "sophie.martin@eduka.fr"},
	}}
	svc := NewAuthService(repo)

	user, err := svc.CurrentUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "sophie.martin@eduka.fr", user.Email)

	_, err = svc.CurrentUser(context.Background(), "user-inconnu")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
