package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/seu-repo/pos-insight/internal/domain"
	"github.com/seu-repo/pos-insight/internal/ports"
)

type StoreRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewStoreRepository(db *gorm.DB, log *zap.Logger) ports.StoreRepository {
	return &StoreRepository{
		db:  db,
		log: log,
	}
}

func (r *StoreRepository) Save(ctx context.Context, store *domain.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *StoreRepository) FindByID(ctx context.Context, id string) (*domain.Store, error) {
	var store domain.Store
	err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (r *StoreRepository) FindAll(ctx context.Context) ([]domain.Store, error) {
	var stores []domain.Store
	err := r.db.WithContext(ctx).Order("name").Find(&stores).Error
	return stores, err
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Store{}, "id = ?", id).Error
}
