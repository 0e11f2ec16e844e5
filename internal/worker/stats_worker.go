package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Stockroom_Go/internal/logger"
	"github.com/osse101/Stockroom_Go/internal/metrics"
	"github.com/osse101/Stockroom_Go/internal/repository"
)

// DefaultRefreshInterval is how often the stock gauges are recomputed.
const DefaultRefreshInterval = time.Minute

// StatsWorker keeps the Prometheus stock gauges in step with the store.
// The dashboard computes its numbers on demand; the worker only feeds the
// metrics endpoint, so a failed refresh is logged and retried next tick.
type StatsWorker struct {
	repo     repository.Inventory
	interval time.Duration
	shutdown chan struct{}
	wg       sync.WaitGroup
}

// NewStatsWorker creates a stats worker. A non-positive interval falls back
// to DefaultRefreshInterval.
func NewStatsWorker(repo repository.Inventory, interval time.Duration) *StatsWorker {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &StatsWorker{
		repo:     repo,
		interval: interval,
		shutdown: make(chan struct{}),
	}
}

// Start launches the refresh loop. The gauges are populated once
// immediately so the metrics endpoint never serves zeros on a warm store.
func (w *StatsWorker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		logger.FromContext(context.Background()).Info(LogMsgStatsWorkerStarted, "interval", w.interval)
		w.refresh()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.refresh()
			case <-w.shutdown:
				return
			}
		}
	}()
}

func (w *StatsWorker) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := w.repo.Stats(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgStatsRefreshFailed, "error", err)
		return
	}

	metrics.StockTotalItems.Set(float64(stats.TotalItems))
	metrics.StockActiveItems.Set(float64(stats.ActiveItems))
	metrics.StockLowItems.Set(float64(stats.LowStockItems))
	metrics.StockTotalValue.Set(stats.TotalValue.InexactFloat64())
}

// Shutdown stops the refresh loop and waits for an in-flight refresh
func (w *StatsWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	close(w.shutdown)

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgStatsShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgStatsShutdownTimeout)
		return ctx.Err()
	}
}
