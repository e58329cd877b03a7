package handlers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/pos-insight/internal/domain"
	"github.com/seu-repo/pos-insight/internal/ports"
	"github.com/seu-repo/pos-insight/internal/service/ingest"
)

type UploadHandler struct {
	service        ports.IngestService
	maxUploadBytes int64
	log            *zap.Logger
}

func NewUploadHandler(service ports.IngestService, maxUploadBytes int64, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		log:            log,
	}
}

// Upload ingests one or more POS export files for a store. The form
// carries the store context alongside the files so every parsed row can
// be stamped with it.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "multipart form required",
		})
	}

	req := &ports.UploadRequest{
		StoreID:   formValue(form.Value, "store_id"),
		StoreName: formValue(form.Value, "store_name"),
		Platform:  domain.Platform(formValue(form.Value, "platform")),
		OutletID:  formValue(form.Value, "outlet_id"),
		MID:       formValue(form.Value, "mid"),
		BookerID:  formValue(form.Value, "booker_id"),
	}

	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}

	var total int64
	for _, fh := range files {
		total += fh.Size
		if h.maxUploadBytes > 0 && total > h.maxUploadBytes {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
				"success": false,
				"error":   "upload exceeds size limit",
			})
		}

		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "failed to read uploaded file",
			})
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "failed to read uploaded file",
			})
		}
		req.Files = append(req.Files, ports.UploadFile{Name: fh.Filename, Data: data})
	}

	result, err := h.service.Upload(c.Context(), req)
	if err != nil {
		var perr *ingest.ParseError
		if errors.As(err, &perr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success":      false,
				"error":        perr.Error(),
				"foundColumns": perr.FoundColumns,
				"sampleRow":    perr.SampleRow,
			})
		}
		var verr *ingest.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   verr.Error(),
			})
		}
		var derr *ingest.DecodeError
		if errors.As(err, &derr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "file is empty or invalid",
			})
		}
		h.log.Error("Upload failed", zap.String("store_id", req.StoreID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "upload failed",
		})
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"transactionCount": result.TransactionCount,
		"lastUploaded":     result.LastUploaded,
		"skippedRows":      result.SkippedRows,
		"undatedRows":      result.UndatedRows,
	})
}

func formValue(values map[string][]string, key string) string {
	if v := values[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}
