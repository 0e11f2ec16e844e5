package worker

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stockroom_Go/internal/domain"
	"github.com/osse101/Stockroom_Go/internal/inventory"
	"github.com/osse101/Stockroom_Go/internal/metrics"
)

func TestStatsWorker_RefreshesGauges(t *testing.T) {
	repo := inventory.NewFakeRepository()

	_, err := repo.Create(context.Background(), &domain.Item{
		Name:     "Laptop",
		SKU:      "SKU-0001-ABC",
		Quantity: 50,
		Price:    decimal.RequireFromString("100.00"),
		IsActive: true,
	})
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), &domain.Item{
		Name:     "Cable",
		SKU:      "SKU-0002-DEF",
		Quantity: 3, // below the low stock threshold
		Price:    decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	w := NewStatsWorker(repo, time.Hour)
	w.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(ctx))

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.StockTotalItems))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StockActiveItems))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StockLowItems))
	assert.Equal(t, 5030.0, testutil.ToFloat64(metrics.StockTotalValue))
}

func TestStatsWorker_ShutdownIsClean(t *testing.T) {
	w := NewStatsWorker(inventory.NewFakeRepository(), 10*time.Millisecond)
	w.Start()

	time.Sleep(30 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, w.Shutdown(ctx))
}
