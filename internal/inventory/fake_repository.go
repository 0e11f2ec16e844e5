package inventory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/Stockroom_Go/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of
// repository.Inventory for testing services without a database. It mirrors
// the PostgreSQL semantics: SKU uniqueness, newest-first ordering, empty
// category treated as null.
type FakeRepository struct {
	items  map[int64]domain.Item
	nextID int64
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		items:  make(map[int64]domain.Item),
		nextID: 1,
	}
}

func (f *FakeRepository) Create(ctx context.Context, item *domain.Item) (domain.Item, error) {
	for _, existing := range f.items {
		if existing.SKU == item.SKU {
			return domain.Item{}, domain.ErrDuplicateSKU
		}
	}

	stored := *item
	stored.ID = f.nextID
	f.nextID++
	stored.CreatedAt = time.Now().Add(time.Duration(stored.ID) * time.Microsecond)
	stored.UpdatedAt = stored.CreatedAt
	f.items[stored.ID] = stored
	return stored, nil
}

func (f *FakeRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

func (f *FakeRepository) Update(ctx context.Context, item *domain.Item) (domain.Item, error) {
	existing, ok := f.items[item.ID]
	if !ok {
		return domain.Item{}, domain.ErrItemNotFound
	}

	for _, other := range f.items {
		if other.ID != item.ID && other.SKU == item.SKU {
			return domain.Item{}, domain.ErrDuplicateSKU
		}
	}

	stored := *item
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	f.items[stored.ID] = stored
	return stored, nil
}

func (f *FakeRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *FakeRepository) List(ctx context.Context, filter domain.ListFilter) (domain.Page, error) {
	filter = filter.Normalize()

	var matched []domain.Item
	for _, item := range f.sortedNewestFirst() {
		if filter.Search != "" && !matchesSearch(item, filter.Search, filter.CaseSensitive) {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		matched = append(matched, item)
	}

	total := int64(len(matched))
	start := filter.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.PerPage
	if end > len(matched) {
		end = len(matched)
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(filter.PerPage) - 1) / int64(filter.PerPage))
	}

	return domain.Page{
		Items:      matched[start:end],
		Page:       filter.Page,
		PerPage:    filter.PerPage,
		TotalItems: total,
		TotalPages: totalPages,
		Search:     filter.Search,
		Category:   filter.Category,
	}, nil
}

func (f *FakeRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var categories []string
	for _, item := range f.items {
		if item.Category != "" && !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (f *FakeRepository) SKUExists(ctx context.Context, sku string, excludeID int64) (bool, error) {
	for _, item := range f.items {
		if item.SKU == sku && item.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeRepository) Stats(ctx context.Context) (domain.Stats, error) {
	stats := domain.Stats{TotalValue: decimal.Zero}
	for _, item := range f.items {
		stats.TotalItems++
		if item.IsActive {
			stats.ActiveItems++
		}
		if item.IsLowStock() {
			stats.LowStockItems++
		}
		stats.TotalValue = stats.TotalValue.Add(item.TotalValue())
	}
	return stats, nil
}

func (f *FakeRepository) Recent(ctx context.Context, limit int) ([]domain.Item, error) {
	items := f.sortedNewestFirst()
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (f *FakeRepository) sortedNewestFirst() []domain.Item {
	items := make([]domain.Item, 0, len(f.items))
	for _, item := range f.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}

func matchesSearch(item domain.Item, term string, caseSensitive bool) bool {
	fields := []string{item.Name, item.SKU, item.Category, item.Description}
	for _, field := range fields {
		if caseSensitive {
			if strings.Contains(field, term) {
				return true
			}
		} else if strings.Contains(strings.ToLower(field), strings.ToLower(term)) {
			return true
		}
	}
	return false
}
