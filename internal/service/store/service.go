package store

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/google/uuid"
	"github.com/seu-repo/pos-insight/internal/domain"
	"github.com/seu-repo/pos-insight/internal/ports"
)

type Service struct {
	repo ports.StoreRepository
	log  *zap.Logger
}

func NewService(repo ports.StoreRepository, log *zap.Logger) ports.StoreService {
	return &Service{
		repo: repo,
		log:  log,
	}
}

func (s *Service) Create(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	if store.Name == "" {
		return nil, errors.New("name is required")
	}
	if !store.Platform.Valid() {
		return nil, errors.New("unsupported platform")
	}

	if store.ID == "" {
		store.ID = uuid.New().String()
	}
	store.Active = true
	store.CreatedAt = time.Now()
	store.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Store, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Store, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) Update(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	existing, err := s.repo.FindByID(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("store not found")
	}

	store.CreatedAt = existing.CreatedAt
	store.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("store not found")
	}
	return s.repo.Delete(ctx, id)
}
