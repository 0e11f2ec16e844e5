package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/repository"
)

// pgErrUniqueViolation is the PostgreSQL error code for unique_violation
const pgErrUniqueViolation = "23505"

const itemColumns = `id, name, COALESCE(description, ''), sku, quantity, price,
	COALESCE(category, ''), COALESCE(location, ''), is_active, created_at, updated_at`

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) repository.Inventory {
	return &InventoryRepository{db: db}
}

// Create inserts a new inventory item and returns the stored record
func (r *InventoryRepository) Create(ctx context.Context, item *domain.Item) (domain.Item, error) {
	query := `
		INSERT INTO inventory_items (name, description, sku, quantity, price, category, location, is_active)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8)
		RETURNING ` + itemColumns

	row := r.db.QueryRow(ctx, query,
		item.Name,
		item.Description,
		item.SKU,
		item.Quantity,
		item.Price,
		item.Category,
		item.Location,
		item.IsActive,
	)

	stored, err := scanItem(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Item{}, domain.ErrDuplicateSKU
		}
		return domain.Item{}, fmt.Errorf("failed to insert inventory item: %w", err)
	}

	return stored, nil
}

// GetByID retrieves an inventory item by its ID
func (r *InventoryRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`

	item, err := scanItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}

	return &item, nil
}

// Update replaces the mutable fields of an existing item
func (r *InventoryRepository) Update(ctx context.Context, item *domain.Item) (domain.Item, error) {
	query := `
		UPDATE inventory_items
		SET name = $2,
		    description = NULLIF($3, ''),
		    sku = $4,
		    quantity = $5,
		    price = $6,
		    category = NULLIF($7, ''),
		    location = NULLIF($8, ''),
		    is_active = $9,
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + itemColumns

	row := r.db.QueryRow(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.SKU,
		item.Quantity,
		item.Price,
		item.Category,
		item.Location,
		item.IsActive,
	)

	stored, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Item{}, domain.ErrItemNotFound
		}
		if isUniqueViolation(err) {
			return domain.Item{}, domain.ErrDuplicateSKU
		}
		return domain.Item{}, fmt.Errorf("failed to update inventory item: %w", err)
	}

	return stored, nil
}

// Delete removes an inventory item permanently
func (r *InventoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}

	return nil
}

// List returns one page of items matching the filter, newest first
func (r *InventoryRepository) List(ctx context.Context, filter domain.ListFilter) (domain.Page, error) {
	filter = filter.Normalize()

	where, args := buildListPredicate(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM inventory_items` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return domain.Page{}, fmt.Errorf("failed to count inventory items: %w", err)
	}

	pageQuery := fmt.Sprintf(`SELECT `+itemColumns+` FROM inventory_items%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, filter.PerPage, filter.Offset())

	rows, err := r.db.Query(ctx, pageQuery, args...)
	if err != nil {
		return domain.Page{}, fmt.Errorf("failed to query inventory items: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return domain.Page{}, err
	}

	return domain.Page{
		Items:      items,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
		TotalItems: total,
		TotalPages: totalPages(total, filter.PerPage),
		Search:     filter.Search,
		Category:   filter.Category,
	}, nil
}

// buildListPredicate assembles the WHERE clause for a listing query. The
// search term matches any of name, sku, category or description; a category
// restricts with exact equality on top of that.
func buildListPredicate(filter domain.ListFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.Search != "" {
		op := "ILIKE"
		if filter.CaseSensitive {
			op = "LIKE"
		}
		pattern := "%" + escapeLike(filter.Search) + "%"
		args = append(args, pattern)
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(name %[1]s $%[2]d OR sku %[1]s $%[2]d OR category %[1]s $%[2]d OR description %[1]s $%[2]d)", op, n))
	}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// escapeLike neutralizes LIKE metacharacters in user-supplied search terms
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// DistinctCategories returns all non-null category values, deduplicated and
// sorted ascending
func (r *InventoryRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM inventory_items WHERE category IS NOT NULL ORDER BY category ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return categories, nil
}

// SKUExists reports whether an item other than excludeID already uses the SKU
func (r *InventoryRepository) SKUExists(ctx context.Context, sku string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM inventory_items WHERE sku = $1 AND id <> $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, sku, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check sku: %w", err)
	}

	return exists, nil
}

// Stats computes the dashboard aggregates in a single pass over the table
func (r *InventoryRepository) Stats(ctx context.Context) (domain.Stats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_active),
		       COALESCE(SUM(price * quantity), 0),
		       COUNT(*) FILTER (WHERE quantity < $1)
		FROM inventory_items`

	var stats domain.Stats
	err := r.db.QueryRow(ctx, query, domain.LowStockThreshold).Scan(
		&stats.TotalItems,
		&stats.ActiveItems,
		&stats.TotalValue,
		&stats.LowStockItems,
	)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("failed to aggregate inventory: %w", err)
	}

	return stats, nil
}

// Recent returns the most recently created items, newest first
func (r *InventoryRepository) Recent(ctx context.Context, limit int) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func scanItem(row pgx.Row) (domain.Item, error) {
	var item domain.Item
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.SKU,
		&item.Quantity,
		&item.Price,
		&item.Category,
		&item.Location,
		&item.IsActive,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	return item, err
}

func scanItems(rows pgx.Rows) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation
}

func totalPages(total int64, perPage int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
