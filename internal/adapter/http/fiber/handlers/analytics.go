package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/pos-insight/internal/ports"
)

type AnalyticsHandler struct {
	service ports.AnalyticsService
	log     *zap.Logger
}

func NewAnalyticsHandler(service ports.AnalyticsService, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		log:     log,
	}
}

func (h *AnalyticsHandler) Sales(c *fiber.Ctx) error {
	summary, err := h.service.Sales(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(summary)
}

func (h *AnalyticsHandler) TimeDemand(c *fiber.Ctx) error {
	demand, err := h.service.TimeDemand(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(demand)
}

func (h *AnalyticsHandler) Sites(c *fiber.Ctx) error {
	sites, err := h.service.Sites(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(sites)
}

func (h *AnalyticsHandler) Products(c *fiber.Ctx) error {
	products, err := h.service.Products(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(products)
}

func (h *AnalyticsHandler) Customers(c *fiber.Ctx) error {
	customers, err := h.service.Customers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(customers)
}

// Recompute forces a full summary rebuild outside the queue-driven path.
func (h *AnalyticsHandler) Recompute(c *fiber.Ctx) error {
	if err := h.service.Recompute(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}
