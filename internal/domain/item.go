package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item represents a single inventory record. SKU is the business identifier
// and must be unique across all items; ID is the surrogate key assigned by
// the store.
type Item struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	SKU         string          `json:"sku" db:"sku"`
	Quantity    int             `json:"quantity" db:"quantity"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Category    string          `json:"category" db:"category"` // free-form, not an enum
	Location    string          `json:"location" db:"location"`
	IsActive    bool            `json:"is_active" db:"is_active"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

// TotalValue returns price * quantity for this item.
func (i Item) TotalValue() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// LowStockThreshold is the quantity below which an item counts as low stock.
const LowStockThreshold = 10

// IsLowStock reports whether the item is below the low-stock threshold.
func (i Item) IsLowStock() bool {
	return i.Quantity < LowStockThreshold
}
