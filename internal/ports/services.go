package ports

import (
	"context"
	"time"

	"github.com/seu-repo/pos-insight/internal/domain"
)

// UploadFile is one export file from a multipart upload request.
type UploadFile struct {
	Name string
	Data []byte
}

// UploadRequest carries the store context an upload is scoped to. Every
// parsed row is stamped with these identifiers.
type UploadRequest struct {
	StoreID   string
	StoreName string
	Platform  domain.Platform
	OutletID  string
	MID       string
	BookerID  string
	Files     []UploadFile
}

type UploadResult struct {
	TransactionCount int       `json:"transactionCount"`
	LastUploaded     time.Time `json:"lastUploaded"`
	SkippedRows      int       `json:"skippedRows,omitempty"`
	UndatedRows      int       `json:"undatedRows,omitempty"`
}

type IngestService interface {
	// Upload decodes, parses and atomically replaces the store's
	// transaction set, then records upload status and triggers an
	// analytics recompute. Uploads for the same store are serialized.
	Upload(ctx context.Context, req *UploadRequest) (*UploadResult, error)
}

// TransactionUpdate holds the editable fields of a manual correction.
// Nil pointers leave the stored value untouched.
type TransactionUpdate struct {
	DateTime      *time.Time
	AmountPence   *int64
	PaymentMethod *string
	CardScheme    *string
	Description   *string
	Status        *domain.TransactionStatus
	CustomerID    *string
}

type TransactionService interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	Get(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context, storeID string) ([]domain.Transaction, error)
	Update(ctx context.Context, id string, upd *TransactionUpdate) (*domain.Transaction, error)
	Delete(ctx context.Context, id string) error
}

type StoreService interface {
	Create(ctx context.Context, store *domain.Store) (*domain.Store, error)
	Get(ctx context.Context, id string) (*domain.Store, error)
	List(ctx context.Context) ([]domain.Store, error)
	Update(ctx context.Context, store *domain.Store) (*domain.Store, error)
	Delete(ctx context.Context, id string) error
}

// TimeDemand bundles the hourly and weekday breakdowns for the demand view.
type TimeDemand struct {
	Hourly []domain.HourlySales `json:"hourly"`
	Daily  []domain.DailySales  `json:"daily"`
}

type AnalyticsService interface {
	// Recompute rebuilds every summary table from the full transaction set.
	Recompute(ctx context.Context) error

	Sales(ctx context.Context) (*domain.SalesSummary, error)
	TimeDemand(ctx context.Context) (*TimeDemand, error)
	Sites(ctx context.Context) ([]domain.SiteSummary, error)
	Products(ctx context.Context) ([]domain.ProductSummary, error)
	Customers(ctx context.Context) (*domain.CustomerSummary, error)
}
