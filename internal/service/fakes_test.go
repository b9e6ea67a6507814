package service

import (
	"context"

	"github.com/eduka/eduka-api/internal/domain"
	"github.com/eduka/eduka-api/internal/repository"
)

// The fakes below back the service tests with plain in-memory slices.

type fakeMissionRepo struct {
	missions []domain.Mission
}

func (r *fakeMissionRepo) FindAll(ctx context.Context) ([]domain.Mission, error) {
	return r.missions, nil
}

func (r *fakeMissionRepo) FindByID(ctx context.Context, id string) (domain.Mission, error) {
	for _, m := range r.missions {
		if m.ID == id {
			return m, nil
		}
	}

	return domain.Mission{}, repository.ErrMissionNotFound
}

func (r *fakeMissionRepo) Update(ctx context.Context, mission domain.Mission) (domain.Mission, error) {
	for i, m := range r.missions {
		if m.ID == mission.ID {
			r.missions[i] = mission

			return mission, nil
		}
	}

	return domain.Mission{}, repository.ErrMissionNotFound
}

func (r *fakeMissionRepo) Create(ctx context.Context, mission domain.Mission) (domain.Mission, error) {
	r.missions = append(r.missions, mission)

	return mission, nil
}

type fakeRefs struct {
	cours   []domain.Cours
	ecoles  []domain.Ecole
	classes []domain.Classe
}

func (r *fakeRefs) FindAllCours(ctx context.Context) ([]domain.Cours, error) {
	return r.cours, nil
}

func (r *fakeRefs) FindAllEcoles(ctx context.Context) ([]domain.Ecole, error) {
	return r.ecoles, nil
}

func (r *fakeRefs) FindAllClasses(ctx context.Context) ([]domain.Classe, error) {
	return r.classes, nil
}

// completeRefs returns a referentiel where every collection has one entry,
// keyed by the conventional test IDs.
func completeRefs() *fakeRefs {
	return &fakeRefs{
		cours:   []domain.Cours{{ID: "cours-1", Nom: "Mathématiques avancées"}},
		ecoles:  []domain.Ecole{{ID: "ecole-1", Nom: "Lycée Saint-Exupéry"}},
		classes: []domain.Classe{{ID: "classe-1", Nom: "Terminale S1", EcoleID: "ecole-1"}},
	}
}

type fakeUserRepo struct {
	users []domain.User
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	return r.users, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}

	return domain.User{}, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}

	return domain.User{}, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, user domain.User) (domain.User, error) {
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user

			return user, nil
		}
	}

	return domain.User{}, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByRole(ctx context.Context, role string) ([]domain.User, error) {
	var matched []domain.User
	for _, u := range r.users {
		if u.Role == role {
			matched = append(matched, u)
		}
	}

	return matched, nil
}

type notifiedMessage struct {
	UserID   string
	Type     string
	Titre    string
	Message  string
	Metadata map[string]string
}

type fakeNotifier struct {
	sent []notifiedMessage
}

func (n *fakeNotifier) Notify(ctx context.Context, userID, typ, titre, message string, metadata map[string]string) error {
	n.sent = append(n.sent, notifiedMessage{
		UserID:   userID,
		Type:     typ,
		Titre:    titre,
		Message:  message,
		Metadata: metadata,
	})

	return nil
}

func (n *fakeNotifier) NotifyAdmins(ctx context.Context, typ, titre, message string, metadata map[string]string) error {
	return n.Notify(ctx, "admin-1", typ, titre, message, metadata)
}

type fakePropositionRepo struct {
	propositions []domain.Proposition
}

func (r *fakePropositionRepo) FindAll(ctx context.Context) ([]domain.Proposition, error) {
	return r.propositions, nil
}

func (r *fakePropositionRepo) FindByID(ctx context.Context, id string) (domain.Proposition, error) {
	for _, p := range r.propositions {
		if p.ID == id {
			return p, nil
		}
	}

	return domain.Proposition{}, repository.ErrPropositionNotFound
}

func (r *fakePropositionRepo) Update(ctx context.Context, proposition domain.Proposition) (domain.Proposition, error) {
	for i, p := range r.propositions {
		if p.ID == proposition.ID {
			r.propositions[i] = proposition

			return proposition, nil
		}
	}

	return domain.Proposition{}, repository.ErrPropositionNotFound
}

func (r *fakePropositionRepo) Create(ctx context.Context, proposition domain.Proposition) (domain.Proposition, error) {
	r.propositions = append(r.propositions, proposition)

	return proposition, nil
}

type fakeFactureRepo struct {
	factures []domain.Facture
}

func (r *fakeFactureRepo) FindAll(ctx context.Context) ([]domain.Facture, error) {
	return r.factures, nil
}

func (r *fakeFactureRepo) FindByID(ctx context.Context, id string) (domain.Facture, error) {
	for _, f := range r.factures {
		if f.ID == id {
			return f, nil
		}
	}

	return domain.Facture{}, repository.ErrFactureNotFound
}

func (r *fakeFactureRepo) Count(ctx context.Context) (int, error) {
	return len(r.factures), nil
}

func (r *fakeFactureRepo) Update(ctx context.Context, facture domain.Facture) (domain.Facture, error) {
	for i, f := range r.factures {
		if f.ID == facture.ID {
			r.factures[i] = facture

			return facture, nil
		}
	}

	return domain.Facture{}, repository.ErrFactureNotFound
}

func (r *fakeFactureRepo) Create(ctx context.Context, facture domain.Facture) (domain.Facture, error) {
	r.factures = append(r.factures, facture)

	return facture, nil
}

type fakeNotificationRepo struct {
	notifications []domain.Notification
}

func (r *fakeNotificationRepo) FindAll(ctx context.Context) ([]domain.Notification, error) {
	return r.notifications, nil
}

func (r *fakeNotificationRepo) Update(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	for i, n := range r.notifications {
		if n.ID == notification.ID {
			r.notifications[i] = notification

			return notification, nil
		}
	}

	return domain.Notification{}, repository.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	r.notifications = append(r.notifications, notification)

	return notification, nil
}

func (r *fakeNotificationRepo) Delete(ctx context.Context, id string) error {
	kept := r.notifications[:0]
	for _, n := range r.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	r.notifications = kept

	return nil
}

func (r *fakeNotificationRepo) ReplaceAll(ctx context.Context, notifications []domain.Notification) error {
	r.notifications = notifications

	return nil
}
