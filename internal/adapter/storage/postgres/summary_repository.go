package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/pos-insight/internal/domain"
	"github.com/seu-repo/pos-insight/internal/ports"
)

// SummaryRepository persists the precomputed analytics tables. Each
// Replace* swaps the full table inside a transaction, mirroring the
// stateless recompute that produces the rows.
type SummaryRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSummaryRepository(db *gorm.DB, log *zap.Logger) ports.SummaryRepository {
	return &SummaryRepository{
		db:  db,
		log: log,
	}
}

func replaceAll[T any](ctx context.Context, db *gorm.DB, rows []T) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model T
		if err := tx.Where("1 = 1").Delete(&model).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(rows).Error
	})
}

func replaceOne[T any](ctx context.Context, db *gorm.DB, row *T) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model T
		if err := tx.Where("1 = 1").Delete(&model).Error; err != nil {
			return err
		}
		return tx.Create(row).Error
	})
}

func getOne[T any](ctx context.Context, db *gorm.DB) (*T, error) {
	var row T
	err := db.WithContext(ctx).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *SummaryRepository) ReplaceSales(ctx context.Context, s *domain.SalesSummary) error {
	return replaceOne(ctx, r.db, s)
}

func (r *SummaryRepository) ReplaceHourly(ctx context.Context, rows []domain.HourlySales) error {
	return replaceAll(ctx, r.db, rows)
}

func (r *SummaryRepository) ReplaceDaily(ctx context.Context, rows []domain.DailySales) error {
	return replaceAll(ctx, r.db, rows)
}

func (r *SummaryRepository) ReplaceSites(ctx context.Context, rows []domain.SiteSummary) error {
	return replaceAll(ctx, r.db, rows)
}

func (r *SummaryRepository) ReplaceProducts(ctx context.Context, rows []domain.ProductSummary) error {
	return replaceAll(ctx, r.db, rows)
}

func (r *SummaryRepository) ReplaceCustomers(ctx context.Context, s *domain.CustomerSummary) error {
	return replaceOne(ctx, r.db, s)
}

func (r *SummaryRepository) GetSales(ctx context.Context) (*domain.SalesSummary, error) {
	return getOne[domain.SalesSummary](ctx, r.db)
}

func (r *SummaryRepository) GetHourly(ctx context.Context) ([]domain.HourlySales, error) {
	var rows []domain.HourlySales
	err := r.db.WithContext(ctx).Order("hour").Find(&rows).Error
	return rows, err
}

func (r *SummaryRepository) GetDaily(ctx context.Context) ([]domain.DailySales, error) {
	var rows []domain.DailySales
	err := r.db.WithContext(ctx).Order("day_of_week").Find(&rows).Error
	return rows, err
}

func (r *SummaryRepository) GetSites(ctx context.Context) ([]domain.SiteSummary, error) {
	var rows []domain.SiteSummary
	err := r.db.WithContext(ctx).Order("revenue_pence desc").Find(&rows).Error
	return rows, err
}

func (r *SummaryRepository) GetProducts(ctx context.Context) ([]domain.ProductSummary, error) {
	var rows []domain.ProductSummary
	err := r.db.WithContext(ctx).Order("revenue_pence desc").Find(&rows).Error
	return rows, err
}

func (r *SummaryRepository) GetCustomers(ctx context.Context) (*domain.CustomerSummary, error) {
	return getOne[domain.CustomerSummary](ctx, r.db)
}
