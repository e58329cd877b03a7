package analytics

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/pos-insight/internal/adapter/queue"
)

// StartRecomputeWorker subscribes to transactions.changed and rebuilds
// the summaries after every mutation. When the recompute lands, notify is
// invoked with a summaries.updated frame for real-time listeners.
func (s *Service) StartRecomputeWorker(mq queue.MessageQueue, notify func([]byte)) error {
	return mq.Subscribe(queue.SubjectTransactionsChanged, func(data []byte) error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := s.Recompute(ctx); err != nil {
			s.log.Error("Recompute failed", zap.Error(err))
			return err
		}

		if notify != nil {
			notify([]byte(`{"event":"summaries.updated"}`))
		}
		if err := mq.Publish(queue.SubjectSummariesUpdated, data); err != nil {
			s.log.Warn("Failed to publish summaries.updated", zap.Error(err))
		}
		return nil
	})
}
