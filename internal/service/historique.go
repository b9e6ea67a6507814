package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/eduka/eduka-api/internal/domain"
)

type HistoriqueRepository interface {
	FindAll(ctx context.Context) ([]domain.HistoriqueEntry, error)
	Create(ctx context.Context, entry domain.HistoriqueEntry) (domain.HistoriqueEntry, error)
}

type HistoriqueService struct {
	repo HistoriqueRepository
}

func NewHistoriqueService(repo HistoriqueRepository) *HistoriqueService {
	return &HistoriqueService{
		repo: repo,
	}
}

func (s *HistoriqueService) ListByUser(ctx context.Context, userID string) ([]domain.HistoriqueEntry, error) {
	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	mine := make([]domain.HistoriqueEntry, 0, len(entries))
	for _, e := range entries {
		if e.UserID == userID {
			mine = append(mine, e)
		}
	}

	sort.Slice(mine, func(i, j int) bool {
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})

	return mine, nil
}

// Record appends an activity entry to the user's history feed.
func (s *HistoriqueService) Record(ctx context.Context, userID, typ, description string, metadata map[string]string) error {
	_, err := s.repo.Create(ctx, domain.HistoriqueEntry{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        typ,
		Description: description,
		Metadata:    metadata,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return fmt.Errorf("s.repo.Create -> %w", err)
	}

	return nil
}
