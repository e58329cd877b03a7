package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/pos-insight/internal/domain"
	"github.com/seu-repo/pos-insight/internal/observability/telemetry"
	"github.com/seu-repo/pos-insight/internal/ports"
)

const (
	cacheKeySales     = "analytics:sales"
	cacheKeyTime      = "analytics:time_demand"
	cacheKeySites     = "analytics:sites"
	cacheKeyProducts  = "analytics:products"
	cacheKeyCustomers = "analytics:customers"
)

var cacheKeys = []string{cacheKeySales, cacheKeyTime, cacheKeySites, cacheKeyProducts, cacheKeyCustomers}

type Service struct {
	txRepo  ports.TransactionRepository
	sumRepo ports.SummaryRepository
	cache   ports.Cache
	ttl     time.Duration
	now     func() time.Time
	log     *zap.Logger
}

func NewService(txRepo ports.TransactionRepository, sumRepo ports.SummaryRepository, cache ports.Cache, ttl time.Duration, log *zap.Logger) *Service {
	return &Service{
		txRepo:  txRepo,
		sumRepo: sumRepo,
		cache:   cache,
		ttl:     ttl,
		now:     time.Now,
		log:     log,
	}
}

// Recompute rebuilds every summary table from the full transaction set.
// The recompute is stateless: each run derives everything from raw rows,
// so a missed trigger is healed by the next one.
func (s *Service) Recompute(ctx context.Context) error {
	start := time.Now()

	txs, err := s.txRepo.FindAll(ctx)
	if err != nil {
		telemetry.RecomputesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("load transactions: %w", err)
	}

	now := s.now()
	sales := summarizeSales(txs, now)
	hourly := summarizeHourly(txs)
	daily := summarizeDaily(txs)
	sites := summarizeSites(txs)
	products := summarizeProducts(txs)
	customers := summarizeCustomers(txs, now)

	writes := []struct {
		name string
		fn   func() error
	}{
		{"sales", func() error { return s.sumRepo.ReplaceSales(ctx, sales) }},
		{"hourly", func() error { return s.sumRepo.ReplaceHourly(ctx, hourly) }},
		{"daily", func() error { return s.sumRepo.ReplaceDaily(ctx, daily) }},
		{"sites", func() error { return s.sumRepo.ReplaceSites(ctx, sites) }},
		{"products", func() error { return s.sumRepo.ReplaceProducts(ctx, products) }},
		{"customers", func() error { return s.sumRepo.ReplaceCustomers(ctx, customers) }},
	}
	for _, w := range writes {
		if err := w.fn(); err != nil {
			telemetry.RecomputesTotal.WithLabelValues("error").Inc()
			return fmt.Errorf("replace %s summary: %w", w.name, err)
		}
	}

	for _, key := range cacheKeys {
		if err := s.cache.Delete(ctx, key); err != nil {
			s.log.Warn("Failed to invalidate summary cache", zap.String("key", key), zap.Error(err))
		}
	}

	telemetry.RecomputesTotal.WithLabelValues("success").Inc()
	telemetry.RecomputeDuration.Observe(time.Since(start).Seconds())
	telemetry.TransactionsStored.Set(float64(len(txs)))

	s.log.Info("Analytics recompute completed",
		zap.Int("transactions", len(txs)),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

func (s *Service) Sales(ctx context.Context) (*domain.SalesSummary, error) {
	var cached domain.SalesSummary
	if s.fromCache(ctx, cacheKeySales, &cached) {
		return &cached, nil
	}

	row, err := s.sumRepo.GetSales(ctx)
	if err != nil {
		return nil, err
	}
	if row == nil {
		row = &domain.SalesSummary{GeneratedAt: s.now()}
	}
	s.toCache(ctx, cacheKeySales, row)
	return row, nil
}

func (s *Service) TimeDemand(ctx context.Context) (*ports.TimeDemand, error) {
	var cached ports.TimeDemand
	if s.fromCache(ctx, cacheKeyTime, &cached) {
		return &cached, nil
	}

	hourly, err := s.sumRepo.GetHourly(ctx)
	if err != nil {
		return nil, err
	}
	daily, err := s.sumRepo.GetDaily(ctx)
	if err != nil {
		return nil, err
	}

	out := &ports.TimeDemand{Hourly: hourly, Daily: daily}
	s.toCache(ctx, cacheKeyTime, out)
	return out, nil
}

func (s *Service) Sites(ctx context.Context) ([]domain.SiteSummary, error) {
	var cached []domain.SiteSummary
	if s.fromCache(ctx, cacheKeySites, &cached) {
		return cached, nil
	}

	rows, err := s.sumRepo.GetSites(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, cacheKeySites, rows)
	return rows, nil
}

func (s *Service) Products(ctx context.Context) ([]domain.ProductSummary, error) {
	var cached []domain.ProductSummary
	if s.fromCache(ctx, cacheKeyProducts, &cached) {
		return cached, nil
	}

	rows, err := s.sumRepo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, cacheKeyProducts, rows)
	return rows, nil
}

func (s *Service) Customers(ctx context.Context) (*domain.CustomerSummary, error) {
	var cached domain.CustomerSummary
	if s.fromCache(ctx, cacheKeyCustomers, &cached) {
		return &cached, nil
	}

	row, err := s.sumRepo.GetCustomers(ctx)
	if err != nil {
		return nil, err
	}
	if row == nil {
		row = &domain.CustomerSummary{GeneratedAt: s.now()}
	}
	s.toCache(ctx, cacheKeyCustomers, row)
	return row, nil
}

func (s *Service) fromCache(ctx context.Context, key string, out interface{}) bool {
	raw, err := s.cache.Get(ctx, key)
	if err != nil || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.log.Warn("Dropping corrupt cache entry", zap.String("key", key), zap.Error(err))
		s.cache.Delete(ctx, key)
		return false
	}
	return true
}

func (s *Service) toCache(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		s.log.Warn("Failed to cache summary", zap.String("key", key), zap.Error(err))
	}
}
