package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/pos-insight/internal/domain"
	"github.com/seu-repo/pos-insight/internal/ports"
)

type StoreHandler struct {
	service ports.StoreService
	log     *zap.Logger
}

func NewStoreHandler(service ports.StoreService, log *zap.Logger) *StoreHandler {
	return &StoreHandler{
		service: service,
		log:     log,
	}
}

type StoreRequest struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
	OutletID string `json:"outlet_id"`
	MID      string `json:"mid"`
	BookerID string `json:"booker_id"`
	Active   bool   `json:"active"`
}

func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var req StoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	store, err := h.service.Create(c.Context(), &domain.Store{
		Name:     req.Name,
		Platform: domain.Platform(req.Platform),
		OutletID: req.OutletID,
		MID:      req.MID,
		BookerID: req.BookerID,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}

func (h *StoreHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	store, err := h.service.Get(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if store == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Store not found"})
	}
	return c.JSON(store)
}

func (h *StoreHandler) List(c *fiber.Ctx) error {
	stores, err := h.service.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stores)
}

func (h *StoreHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req StoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	store, err := h.service.Update(c.Context(), &domain.Store{
		ID:       id,
		Name:     req.Name,
		Platform: domain.Platform(req.Platform),
		OutletID: req.OutletID,
		MID:      req.MID,
		BookerID: req.BookerID,
		Active:   req.Active,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(store)
}

func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.Context(), id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
