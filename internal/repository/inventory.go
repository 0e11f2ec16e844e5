package repository

import (
	"context"

	"github.com/osse101/Stockroom_Go/internal/domain"
)

// Inventory defines the interface for inventory item persistence.
// Implementations must persist mutations durably before returning and must
// enforce SKU uniqueness atomically with respect to concurrent writers; a
// collision surfaces as domain.ErrDuplicateSKU.
type Inventory interface {
	// Record operations
	Create(ctx context.Context, item *domain.Item) (domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) (domain.Item, error)
	Delete(ctx context.Context, id int64) error

	// Listing operations
	List(ctx context.Context, filter domain.ListFilter) (domain.Page, error)
	DistinctCategories(ctx context.Context) ([]string, error)

	// SKUExists reports whether another item already uses the SKU.
	// excludeID ignores the record being updated so re-submitting an
	// item's own SKU is not a collision; pass 0 on create.
	SKUExists(ctx context.Context, sku string, excludeID int64) (bool, error)

	// Aggregation operations
	Stats(ctx context.Context) (domain.Stats, error)
	Recent(ctx context.Context, limit int) ([]domain.Item, error)
}
