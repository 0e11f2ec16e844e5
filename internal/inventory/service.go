package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/logger"
	"github.com/osse101/Stockroom_Go/internal/metrics"
	"github.com/osse101/Stockroom_Go/internal/repository"
)

// Service defines the interface for inventory operations
type Service interface {
	// List returns one page of items. An empty search term applies no
	// search filter; an unknown category yields an empty page.
	List(ctx context.Context, search, category string, page int) (domain.Page, error)
	Get(ctx context.Context, id int64) (*domain.Item, error)
	Create(ctx context.Context, input ItemInput) (domain.Item, error)
	Update(ctx context.Context, id int64, input ItemInput) (domain.Item, error)
	Delete(ctx context.Context, id int64) error

	// Categories returns the distinct non-empty category values, sorted
	// ascending, for populating the filter UI.
	Categories(ctx context.Context) ([]string, error)
}

// Options tune listing behavior
type Options struct {
	// CaseSensitiveSearch switches the substring match from ILIKE to LIKE
	CaseSensitiveSearch bool
}

type service struct {
	repo repository.Inventory
	opts Options
}

// NewService creates a new inventory service backed by the given store
func NewService(repo repository.Inventory, opts Options) Service {
	return &service{repo: repo, opts: opts}
}

func (s *service) List(ctx context.Context, search, category string, page int) (domain.Page, error) {
	filter := domain.ListFilter{
		Search:        search,
		Category:      category,
		Page:          page,
		PerPage:       domain.DefaultPageSize,
		CaseSensitive: s.opts.CaseSensitiveSearch,
	}

	result, err := s.repo.List(ctx, filter)
	if err != nil {
		return domain.Page{}, fmt.Errorf("failed to list inventory: %w", err)
	}
	return result, nil
}

func (s *service) Get(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return item, nil
}

func (s *service) Create(ctx context.Context, input ItemInput) (domain.Item, error) {
	fieldErrors, err := s.validateInput(ctx, input, 0)
	if err != nil {
		return domain.Item{}, err
	}
	if fieldErrors != nil {
		return domain.Item{}, fieldErrors
	}

	item := input.toItem(0, true)
	created, err := s.repo.Create(ctx, &item)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSKU) {
			// lost the race between the pre-check and the insert
			return domain.Item{}, domain.FieldErrors{"sku": "This SKU is already taken"}
		}
		return domain.Item{}, fmt.Errorf("failed to create item: %w", err)
	}

	metrics.ItemsCreated.Inc()
	logger.FromContext(ctx).Info("Inventory item created", "id", created.ID, "sku", created.SKU)
	return created, nil
}

func (s *service) Update(ctx context.Context, id int64, input ItemInput) (domain.Item, error) {
	// Unknown ids are 404 regardless of payload validity
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return domain.Item{}, err
		}
		return domain.Item{}, fmt.Errorf("failed to get item %d: %w", id, err)
	}

	fieldErrors, err := s.validateInput(ctx, input, id)
	if err != nil {
		return domain.Item{}, err
	}
	if fieldErrors != nil {
		return domain.Item{}, fieldErrors
	}

	item := input.toItem(id, false)
	updated, err := s.repo.Update(ctx, &item)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return domain.Item{}, err
		}
		if errors.Is(err, domain.ErrDuplicateSKU) {
			return domain.Item{}, domain.FieldErrors{"sku": "This SKU is already taken"}
		}
		return domain.Item{}, fmt.Errorf("failed to update item %d: %w", id, err)
	}

	metrics.ItemsUpdated.Inc()
	logger.FromContext(ctx).Info("Inventory item updated", "id", updated.ID, "sku", updated.SKU)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}

	metrics.ItemsDeleted.Inc()
	logger.FromContext(ctx).Info("Inventory item deleted", "id", id)
	return nil
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return categories, nil
}
