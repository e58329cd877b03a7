package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/pos-insight/internal/ports"
)

// UploadStatusHandler serves the per-store upload status rows written by
// the ingest pipeline.
type UploadStatusHandler struct {
	repo ports.UploadRepository
	log  *zap.Logger
}

func NewUploadStatusHandler(repo ports.UploadRepository, log *zap.Logger) *UploadStatusHandler {
	return &UploadStatusHandler{
		repo: repo,
		log:  log,
	}
}

func (h *UploadStatusHandler) List(c *fiber.Ctx) error {
	uploads, err := h.repo.FindAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(uploads)
}

func (h *UploadStatusHandler) Get(c *fiber.Ctx) error {
	storeID := c.Params("store_id")
	upload, err := h.repo.FindByStoreID(c.Context(), storeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if upload == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No uploads recorded for store"})
	}
	return c.JSON(upload)
}
