package postgres

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seu-repo/pos-insight/internal/domain"
	"github.com/seu-repo/pos-insight/internal/ports"
)

type UploadRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewUploadRepository(db *gorm.DB, log *zap.Logger) ports.UploadRepository {
	return &UploadRepository{
		db:  db,
		log: log,
	}
}

// Upsert keeps one status row per store, updated on every upload.
func (r *UploadRepository) Upsert(ctx context.Context, upload *domain.Upload) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_id"}},
		UpdateAll: true,
	}).Create(upload).Error
}

func (r *UploadRepository) FindByStoreID(ctx context.Context, storeID string) (*domain.Upload, error) {
	var upload domain.Upload
	err := r.db.WithContext(ctx).First(&upload, "store_id = ?", storeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &upload, nil
}

func (r *UploadRepository) FindAll(ctx context.Context) ([]domain.Upload, error) {
	var uploads []domain.Upload
	err := r.db.WithContext(ctx).Order("last_uploaded desc").Find(&uploads).Error
	return uploads, err
}
