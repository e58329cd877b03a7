package mocks

import (
	"context"

	"github.com/seu-repo/pos-insight/internal/domain"
	"github.com/seu-repo/pos-insight/internal/ports"
)

// MockIngestService is a mock implementation of IngestService interface
type MockIngestService struct {
	UploadFunc func(ctx context.Context, req *ports.UploadRequest) (*ports.UploadResult, error)
}

func (m *MockIngestService) Upload(ctx context.Context, req *ports.UploadRequest) (*ports.UploadResult, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, req)
	}
	return &ports.UploadResult{}, nil
}

// MockTransactionService is a mock implementation of TransactionService interface
type MockTransactionService struct {
	CreateFunc func(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	GetFunc    func(ctx context.Context, id string) (*domain.Transaction, error)
	ListFunc   func(ctx context.Context, storeID string) ([]domain.Transaction, error)
	UpdateFunc func(ctx context.Context, id string, upd *ports.TransactionUpdate) (*domain.Transaction, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *MockTransactionService) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx)
	}
	return tx, nil
}

func (m *MockTransactionService) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTransactionService) List(ctx context.Context, storeID string) ([]domain.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, storeID)
	}
	return []domain.Transaction{}, nil
}

func (m *MockTransactionService) Update(ctx context.Context, id string, upd *ports.TransactionUpdate) (*domain.Transaction, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, upd)
	}
	return nil, nil
}

func (m *MockTransactionService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockAnalyticsService is a mock implementation of AnalyticsService interface
type MockAnalyticsService struct {
	RecomputeFunc  func(ctx context.Context) error
	SalesFunc      func(ctx context.Context) (*domain.SalesSummary, error)
	TimeDemandFunc func(ctx context.Context) (*ports.TimeDemand, error)
	SitesFunc      func(ctx context.Context) ([]domain.SiteSummary, error)
	ProductsFunc   func(ctx context.Context) ([]domain.ProductSummary, error)
	CustomersFunc  func(ctx context.Context) (*domain.CustomerSummary, error)
}

func (m *MockAnalyticsService) Recompute(ctx context.Context) error {
	if m.RecomputeFunc != nil {
		return m.RecomputeFunc(ctx)
	}
	return nil
}

func (m *MockAnalyticsService) Sales(ctx context.Context) (*domain.SalesSummary, error) {
	if m.SalesFunc != nil {
		return m.SalesFunc(ctx)
	}
	return nil, nil
}

func (m *MockAnalyticsService) TimeDemand(ctx context.Context) (*ports.TimeDemand, error) {
	if m.TimeDemandFunc != nil {
		return m.TimeDemandFunc(ctx)
	}
	return nil, nil
}

func (m *MockAnalyticsService) Sites(ctx context.Context) ([]domain.SiteSummary, error) {
	if m.SitesFunc != nil {
		return m.SitesFunc(ctx)
	}
	return []domain.SiteSummary{}, nil
}

func (m *MockAnalyticsService) Products(ctx context.Context) ([]domain.ProductSummary, error) {
	if m.ProductsFunc != nil {
		return m.ProductsFunc(ctx)
	}
	return []domain.ProductSummary{}, nil
}

func (m *MockAnalyticsService) Customers(ctx context.Context) (*domain.CustomerSummary, error) {
	if m.CustomersFunc != nil {
		return m.CustomersFunc(ctx)
	}
	return nil, nil
}

// MockStoreService is a mock implementation of StoreService interface
type MockStoreService struct {
	CreateFunc func(ctx context.Context, store *domain.Store) (*domain.Store, error)
	GetFunc    func(ctx context.Context, id string) (*domain.Store, error)
	ListFunc   func(ctx context.Context) ([]domain.Store, error)
	UpdateFunc func(ctx context.Context, store *domain.Store) (*domain.Store, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *MockStoreService) Create(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, store)
	}
	return store, nil
}

func (m *MockStoreService) Get(ctx context.Context, id string) (*domain.Store, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStoreService) List(ctx context.Context) ([]domain.Store, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.Store{}, nil
}

func (m *MockStoreService) Update(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, store)
	}
	return store, nil
}

func (m *MockStoreService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
