package ports

import (
	"context"

	"github.com/seu-repo/pos-insight/internal/domain"
)

type TransactionRepository interface {
	Save(ctx context.Context, tx *domain.Transaction) error
	FindByID(ctx context.Context, id string) (*domain.Transaction, error)
	FindByStoreID(ctx context.Context, storeID string) ([]domain.Transaction, error)
	FindAll(ctx context.Context) ([]domain.Transaction, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id string) error

	// ReplaceForStore deletes every transaction for storeID and inserts txs
	// in a single database transaction. Rows belonging to other stores are
	// never touched.
	ReplaceForStore(ctx context.Context, storeID string, txs []domain.Transaction) error
}

type StoreRepository interface {
	Save(ctx context.Context, store *domain.Store) error
	FindByID(ctx context.Context, id string) (*domain.Store, error)
	FindAll(ctx context.Context) ([]domain.Store, error)
	Delete(ctx context.Context, id string) error
}

type UploadRepository interface {
	// Upsert inserts or updates the single status row for the upload's store.
	Upsert(ctx context.Context, upload *domain.Upload) error
	FindByStoreID(ctx context.Context, storeID string) (*domain.Upload, error)
	FindAll(ctx context.Context) ([]domain.Upload, error)
}

// SummaryRepository persists the analytics recompute output. The Replace
// methods swap the full table contents atomically.
type SummaryRepository interface {
	ReplaceSales(ctx context.Context, s *domain.SalesSummary) error
	ReplaceHourly(ctx context.Context, rows []domain.HourlySales) error
	ReplaceDaily(ctx context.Context, rows []domain.DailySales) error
	ReplaceSites(ctx context.Context, rows []domain.SiteSummary) error
	ReplaceProducts(ctx context.Context, rows []domain.ProductSummary) error
	ReplaceCustomers(ctx context.Context, s *domain.CustomerSummary) error

	GetSales(ctx context.Context) (*domain.SalesSummary, error)
	GetHourly(ctx context.Context) ([]domain.HourlySales, error)
	GetDaily(ctx context.Context) ([]domain.DailySales, error)
	GetSites(ctx context.Context) ([]domain.SiteSummary, error)
	GetProducts(ctx context.Context) ([]domain.ProductSummary, error)
	GetCustomers(ctx context.Context) (*domain.CustomerSummary, error)
}
