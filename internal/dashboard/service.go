package dashboard

import (
	"context"
	"fmt"

	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/repository"
)

// RecentItemsLimit is how many of the newest items the summary carries.
const RecentItemsLimit = 10

// Service defines the interface for dashboard aggregation
type Service interface {
	// Summary is always computable: an empty store yields zero counts, a
	// zero total value and an empty recent list.
	Summary(ctx context.Context) (domain.Summary, error)
}

type service struct {
	repo repository.Inventory
}

// NewService creates a new dashboard service
func NewService(repo repository.Inventory) Service {
	return &service{repo: repo}
}

func (s *service) Summary(ctx context.Context) (domain.Summary, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("failed to aggregate inventory: %w", err)
	}

	recent, err := s.repo.Recent(ctx, RecentItemsLimit)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("failed to load recent items: %w", err)
	}
	if recent == nil {
		recent = []domain.Item{}
	}

	return domain.Summary{Stats: stats, RecentItems: recent}, nil
}
