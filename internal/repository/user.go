package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/eduka/eduka-api/internal/domain"
	"github.com/eduka/eduka-api/internal/fixtures"
	"github.com/eduka/eduka-api/internal/store"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository serves the users collection: admins and formateurs.
type UserRepository struct {
	loader  *fixtures.Loader
	store   *store.Store[domain.User]
	latency store.Latency
}

func NewUserRepository(loader *fixtures.Loader, latency store.Latency) *UserRepository {
	return &UserRepository{
		loader:  loader,
		store:   store.New[domain.User](),
		latency: latency,
	}
}

// Load replaces the snapshot with the fixture content. On failure the
// previous snapshot is kept.
func (r *UserRepository) Load() error {
	users, err := fixtures.LoadCollection[domain.User](r.loader, "users")
	if err != nil {
		return fmt.Errorf("fixtures.LoadCollection -> %w", err)
	}

	r.store.Replace(users)

	return nil
}

func (r *UserRepository) Store() *store.Store[domain.User] {
	return r.store
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	return r.store.Snapshot(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	for _, u := range r.store.Snapshot() {
		if u.ID == id {
			return u, nil
		}
	}

	return domain.User{}, ErrUserNotFound
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range r.store.Snapshot() {
		if u.Email == email {
			return u, nil
		}
	}

	return domain.User{}, ErrUserNotFound
}

func (r *UserRepository) FindByRole(ctx context.Context, role string) ([]domain.User, error) {
	var users []domain.User
	for _, u := range r.store.Snapshot() {
		if u.Role == role {
			users = append(users, u)
		}
	}

	return users, nil
}

// Update replaces the matching user in a fresh snapshot. Last write wins.
func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return domain.User{}, err
	}

	snapshot := r.store.Snapshot()
	next := make([]domain.User, len(snapshot))
	found := false
	for i, u := range snapshot {
		if u.ID == user.ID {
			next[i] = user
			found = true
		} else {
			next[i] = u
		}
	}
	if !found {
		return domain.User{}, ErrUserNotFound
	}

	r.store.Replace(next)

	return user, nil
}
