package transaction

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/google/uuid"
	"github.com/seu-repo/pos-insight/internal/adapter/queue"
	"github.com/seu-repo/pos-insight/internal/domain"
	"github.com/seu-repo/pos-insight/internal/ports"
	"github.com/seu-repo/pos-insight/internal/service/ingest"
)

type Service struct {
	repo ports.TransactionRepository
	mq   queue.MessageQueue
	log  *zap.Logger
}

func NewService(repo ports.TransactionRepository, mq queue.MessageQueue, log *zap.Logger) ports.TransactionService {
	return &Service{
		repo: repo,
		mq:   mq,
		log:  log,
	}
}

func (s *Service) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	if tx.StoreID == "" {
		return nil, errors.New("store_id is required")
	}
	if !tx.Platform.Valid() {
		return nil, errors.New("unsupported platform")
	}

	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.DateTime.IsZero() {
		tx.SetDateTime(time.Now())
	} else {
		tx.SetDateTime(tx.DateTime)
	}
	if tx.Status == "" {
		tx.Status = domain.TransactionStatusCompleted
	}
	if tx.Category == "" {
		tx.Category = categorizeFor(tx.Platform, tx.Description)
	}
	tx.CreatedAt = time.Now()
	tx.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, tx); err != nil {
		return nil, err
	}

	s.publishChange(tx.StoreID)
	return tx, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context, storeID string) ([]domain.Transaction, error) {
	if storeID == "" {
		return s.repo.FindAll(ctx)
	}
	return s.repo.FindByStoreID(ctx, storeID)
}

func (s *Service) Update(ctx context.Context, id string, upd *ports.TransactionUpdate) (*domain.Transaction, error) {
	tx, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, errors.New("transaction not found")
	}

	if upd.DateTime != nil {
		tx.SetDateTime(*upd.DateTime)
	}
	if upd.AmountPence != nil {
		tx.AmountPence = *upd.AmountPence
	}
	if upd.PaymentMethod != nil {
		tx.PaymentMethod = *upd.PaymentMethod
	}
	if upd.CardScheme != nil {
		tx.CardScheme = *upd.CardScheme
	}
	if upd.Description != nil {
		tx.Description = *upd.Description
		tx.Category = categorizeFor(tx.Platform, tx.Description)
	}
	if upd.Status != nil {
		tx.Status = *upd.Status
	}
	if upd.CustomerID != nil {
		tx.CustomerID = *upd.CustomerID
	}
	tx.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, err
	}

	s.publishChange(tx.StoreID)
	return tx, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	tx, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if tx == nil {
		return errors.New("transaction not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishChange(tx.StoreID)
	return nil
}

// publishChange triggers a summary recompute. A lost event only delays the
// recompute until the next mutation, so failures are logged and swallowed.
func (s *Service) publishChange(storeID string) {
	event := ingest.ChangeEvent{
		StoreID: storeID,
		Source:  "manual",
		At:      time.Now(),
	}
	if err := queue.PublishJSON(s.mq, queue.SubjectTransactionsChanged, event); err != nil {
		s.log.Warn("Failed to publish change event", zap.String("store_id", storeID), zap.Error(err))
	}
}

func categorizeFor(platform domain.Platform, description string) string {
	if platform == domain.PlatformBooker {
		return ingest.CategorizeService(description)
	}
	return ingest.CategorizeCafe(description)
}
