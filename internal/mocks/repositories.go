package mocks

import (
	"context"

	"github.com/seu-repo/pos-insight/internal/domain"
)

// MockTransactionRepository is a mock implementation of TransactionRepository
type MockTransactionRepository struct {
	SaveFunc            func(ctx context.Context, tx *domain.Transaction) error
	FindByIDFunc        func(ctx context.Context, id string) (*domain.Transaction, error)
	FindByStoreIDFunc   func(ctx context.Context, storeID string) ([]domain.Transaction, error)
	FindAllFunc         func(ctx context.Context) ([]domain.Transaction, error)
	UpdateFunc          func(ctx context.Context, tx *domain.Transaction) error
	DeleteFunc          func(ctx context.Context, id string) error
	ReplaceForStoreFunc func(ctx context.Context, storeID string, txs []domain.Transaction) error
}

func (m *MockTransactionRepository) Save(ctx context.Context, tx *domain.Transaction) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tx)
	}
	return nil
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTransactionRepository) FindByStoreID(ctx context.Context, storeID string) ([]domain.Transaction, error) {
	if m.FindByStoreIDFunc != nil {
		return m.FindByStoreIDFunc(ctx, storeID)
	}
	return []domain.Transaction{}, nil
}

func (m *MockTransactionRepository) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Transaction{}, nil
}

func (m *MockTransactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx)
	}
	return nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTransactionRepository) ReplaceForStore(ctx context.Context, storeID string, txs []domain.Transaction) error {
	if m.ReplaceForStoreFunc != nil {
		return m.ReplaceForStoreFunc(ctx, storeID, txs)
	}
	return nil
}

// MockStoreRepository is a mock implementation of StoreRepository
type MockStoreRepository struct {
	SaveFunc     func(ctx context.Context, store *domain.Store) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.Store, error)
	FindAllFunc  func(ctx context.Context) ([]domain.Store, error)
	DeleteFunc   func(ctx context.Context, id string) error
}

func (m *MockStoreRepository) Save(ctx context.Context, store *domain.Store) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, store)
	}
	return nil
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id string) (*domain.Store, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStoreRepository) FindAll(ctx context.Context) ([]domain.Store, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Store{}, nil
}

func (m *MockStoreRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockUploadRepository is a mock implementation of UploadRepository
type MockUploadRepository struct {
	UpsertFunc        func(ctx context.Context, upload *domain.Upload) error
	FindByStoreIDFunc func(ctx context.Context, storeID string) (*domain.Upload, error)
	FindAllFunc       func(ctx context.Context) ([]domain.Upload, error)
}

func (m *MockUploadRepository) Upsert(ctx context.Context, upload *domain.Upload) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, upload)
	}
	return nil
}

func (m *MockUploadRepository) FindByStoreID(ctx context.Context, storeID string) (*domain.Upload, error) {
	if m.FindByStoreIDFunc != nil {
		return m.FindByStoreIDFunc(ctx, storeID)
	}
	return nil, nil
}

func (m *MockUploadRepository) FindAll(ctx context.Context) ([]domain.Upload, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.Upload{}, nil
}

// MockSummaryRepository is a mock implementation of SummaryRepository
type MockSummaryRepository struct {
	ReplaceSalesFunc     func(ctx context.Context, s *domain.SalesSummary) error
	ReplaceHourlyFunc    func(ctx context.Context, rows []domain.HourlySales) error
	ReplaceDailyFunc     func(ctx context.Context, rows []domain.DailySales) error
	ReplaceSitesFunc     func(ctx context.Context, rows []domain.SiteSummary) error
	ReplaceProductsFunc  func(ctx context.Context, rows []domain.ProductSummary) error
	ReplaceCustomersFunc func(ctx context.Context, s *domain.CustomerSummary) error
	GetSalesFunc         func(ctx context.Context) (*domain.SalesSummary, error)
	GetHourlyFunc        func(ctx context.Context) ([]domain.HourlySales, error)
	GetDailyFunc         func(ctx context.Context) ([]domain.DailySales, error)
	GetSitesFunc         func(ctx context.Context) ([]domain.SiteSummary, error)
	GetProductsFunc      func(ctx context.Context) ([]domain.ProductSummary, error)
	GetCustomersFunc     func(ctx context.Context) (*domain.CustomerSummary, error)
}

func (m *MockSummaryRepository) ReplaceSales(ctx context.Context, s *domain.SalesSummary) error {
	if m.ReplaceSalesFunc != nil {
		return m.ReplaceSalesFunc(ctx, s)
	}
	return nil
}

func (m *MockSummaryRepository) ReplaceHourly(ctx context.Context, rows []domain.HourlySales) error {
	if m.ReplaceHourlyFunc != nil {
		return m.ReplaceHourlyFunc(ctx, rows)
	}
	return nil
}

func (m *MockSummaryRepository) ReplaceDaily(ctx context.Context, rows []domain.DailySales) error {
	if m.ReplaceDailyFunc != nil {
		return m.ReplaceDailyFunc(ctx, rows)
	}
	return nil
}

func (m *MockSummaryRepository) ReplaceSites(ctx context.Context, rows []domain.SiteSummary) error {
	if m.ReplaceSitesFunc != nil {
		return m.ReplaceSitesFunc(ctx, rows)
	}
	return nil
}

func (m *MockSummaryRepository) ReplaceProducts(ctx context.Context, rows []domain.ProductSummary) error {
	if m.ReplaceProductsFunc != nil {
		return m.ReplaceProductsFunc(ctx, rows)
	}
	return nil
}

func (m *MockSummaryRepository) ReplaceCustomers(ctx context.Context, s *domain.CustomerSummary) error {
	if m.ReplaceCustomersFunc != nil {
		return m.ReplaceCustomersFunc(ctx, s)
	}
	return nil
}

func (m *MockSummaryRepository) GetSales(ctx context.Context) (*domain.SalesSummary, error) {
	if m.GetSalesFunc != nil {
		return m.GetSalesFunc(ctx)
	}
	return nil, nil
}

func (m *MockSummaryRepository) GetHourly(ctx context.Context) ([]domain.HourlySales, error) {
	if m.GetHourlyFunc != nil {
		return m.GetHourlyFunc(ctx)
	}
	return []domain.HourlySales{}, nil
}

func (m *MockSummaryRepository) GetDaily(ctx context.Context) ([]domain.DailySales, error) {
	if m.GetDailyFunc != nil {
		return m.GetDailyFunc(ctx)
	}
	return []domain.DailySales{}, nil
}

func (m *MockSummaryRepository) GetSites(ctx context.Context) ([]domain.SiteSummary, error) {
	if m.GetSitesFunc != nil {
		return m.GetSitesFunc(ctx)
	}
	return []domain.SiteSummary{}, nil
}

func (m *MockSummaryRepository) GetProducts(ctx context.Context) ([]domain.ProductSummary, error) {
	if m.GetProductsFunc != nil {
		return m.GetProductsFunc(ctx)
	}
	return []domain.ProductSummary{}, nil
}

func (m *MockSummaryRepository) GetCustomers(ctx context.Context) (*domain.CustomerSummary, error) {
	if m.GetCustomersFunc != nil {
		return m.GetCustomersFunc(ctx)
	}
	return nil, nil
}
