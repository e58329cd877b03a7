package ingest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/seu-repo/pos-insight/internal/adapter/queue"
	"github.com/seu-repo/pos-insight/internal/domain"
	"github.com/seu-repo/pos-insight/internal/observability/telemetry"
	"github.com/seu-repo/pos-insight/internal/ports"
)

// ChangeEvent is the payload published on transactions.changed after a
// successful mutation.
type ChangeEvent struct {
	StoreID          string    `json:"store_id"`
	TransactionCount int       `json:"transaction_count"`
	Source           string    `json:"source"`
	At               time.Time `json:"at"`
}

type Service struct {
	txRepo     ports.TransactionRepository
	uploadRepo ports.UploadRepository
	mq         queue.MessageQueue
	locks      *storeLocks
	maxRows    int
	opts       Options
	log        *zap.Logger
}

func NewService(txRepo ports.TransactionRepository, uploadRepo ports.UploadRepository, mq queue.MessageQueue, maxRows int, opts Options, log *zap.Logger) ports.IngestService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		txRepo:     txRepo,
		uploadRepo: uploadRepo,
		mq:         mq,
		locks:      newStoreLocks(),
		maxRows:    maxRows,
		opts:       opts,
		log:        log,
	}
}

// Upload replaces the store's full transaction set with the parsed
// contents of the uploaded files. Uploads for the same store serialize on
// a per-store lock so concurrent requests cannot interleave the
// delete-and-insert.
func (s *Service) Upload(ctx context.Context, req *ports.UploadRequest) (*ports.UploadResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	start := time.Now()

	lock := s.locks.get(req.StoreID)
	lock.Lock()
	defer lock.Unlock()

	var (
		all     []domain.Transaction
		skipped int
		undated int
		first   *RowStats
	)
	for _, file := range req.Files {
		table, err := Decode(file.Name, file.Data, s.maxRows)
		if err != nil {
			telemetry.UploadsTotal.WithLabelValues(string(req.Platform), "decode_error").Inc()
			return nil, err
		}

		txs, stats := ParseTable(table, req, s.opts)
		if first == nil {
			first = stats
		}
		all = append(all, txs...)
		skipped += stats.Skipped
		undated += stats.Undated
	}

	platform := string(req.Platform)
	telemetry.RowsParsedTotal.WithLabelValues(platform, "ingested").Add(float64(len(all)))
	telemetry.RowsParsedTotal.WithLabelValues(platform, "skipped").Add(float64(skipped))
	telemetry.RowsParsedTotal.WithLabelValues(platform, "undated").Add(float64(undated))

	// Zero parsed rows means the export didn't match the expected shape.
	// Nothing is mutated; prior data for the store stays intact.
	if len(all) == 0 {
		telemetry.UploadsTotal.WithLabelValues(platform, "parse_error").Inc()
		perr := &ParseError{Platform: req.Platform}
		if first != nil {
			perr.FoundColumns = first.FoundColumns
			perr.SampleRow = first.SampleRow
		}
		return nil, perr
	}

	if err := s.txRepo.ReplaceForStore(ctx, req.StoreID, all); err != nil {
		telemetry.UploadsTotal.WithLabelValues(platform, "storage_error").Inc()
		return nil, fmt.Errorf("replace transactions for store %s: %w", req.StoreID, err)
	}

	now := s.opts.Now()
	upload := &domain.Upload{
		StoreID:          req.StoreID,
		StoreName:        req.StoreName,
		Platform:         req.Platform,
		LastUploaded:     now,
		TransactionCount: len(all),
	}
	if err := s.uploadRepo.Upsert(ctx, upload); err != nil {
		telemetry.UploadsTotal.WithLabelValues(platform, "storage_error").Inc()
		return nil, fmt.Errorf("upsert upload status for store %s: %w", req.StoreID, err)
	}

	event := ChangeEvent{
		StoreID:          req.StoreID,
		TransactionCount: len(all),
		Source:           "upload",
		At:               now,
	}
	if err := queue.PublishJSON(s.mq, queue.SubjectTransactionsChanged, event); err != nil {
		// The data landed; a lost trigger only delays the recompute.
		s.log.Error("Failed to publish change event",
			zap.String("store_id", req.StoreID),
			zap.Error(err),
		)
	}

	telemetry.UploadsTotal.WithLabelValues(platform, "success").Inc()
	telemetry.UploadDuration.Observe(time.Since(start).Seconds())

	s.log.Info("Upload ingested",
		zap.String("store_id", req.StoreID),
		zap.String("platform", platform),
		zap.Int("transactions", len(all)),
		zap.Int("skipped_rows", skipped),
		zap.Int("undated_rows", undated),
	)

	return &ports.UploadResult{
		TransactionCount: len(all),
		LastUploaded:     now,
		SkippedRows:      skipped,
		UndatedRows:      undated,
	}, nil
}

func validate(req *ports.UploadRequest) error {
	if req.StoreID == "" {
		return &ValidationError{Reason: "store_id is required"}
	}
	if req.StoreName == "" {
		return &ValidationError{Reason: "store_name is required"}
	}
	if !req.Platform.Valid() {
		return &ValidationError{Reason: fmt.Sprintf("unsupported platform %q", req.Platform)}
	}
	if len(req.Files) == 0 {
		return &ValidationError{Reason: "no files supplied"}
	}
	return nil
}
