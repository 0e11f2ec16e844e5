package domain

import "github.com/shopspring/decimal"

// Stats holds the dashboard aggregates over the whole store. TotalValue is
// SUM(price * quantity) and is zero, not null, for an empty store.
type Stats struct {
	TotalItems    int64           `json:"total_items"`
	ActiveItems   int64           `json:"active_items"`
	TotalValue    decimal.Decimal `json:"total_value"`
	LowStockItems int64           `json:"low_stock_items"`
}

// Summary is the dashboard view model: the aggregates plus the most
// recently created items, newest first.
type Summary struct {
	Stats
	RecentItems []Item `json:"recent_items"`
}
