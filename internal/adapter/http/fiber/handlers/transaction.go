package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/pos-insight/internal/domain"
	"github.com/seu-repo/pos-insight/internal/ports"
)

type TransactionHandler struct {
	service ports.TransactionService
	log     *zap.Logger
}

func NewTransactionHandler(service ports.TransactionService, log *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: service,
		log:     log,
	}
}

type CreateTransactionRequest struct {
	StoreID       string `json:"store_id"`
	StoreName     string `json:"store_name"`
	Platform      string `json:"platform"`
	DateTime      string `json:"date_time"` // RFC3339, defaults to now
	AmountPence   int64  `json:"amount_pence"`
	PaymentMethod string `json:"payment_method"`
	CardScheme    string `json:"card_scheme"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	CustomerID    string `json:"customer_id"`
}

type UpdateTransactionRequest struct {
	DateTime      *string `json:"date_time"`
	AmountPence   *int64  `json:"amount_pence"`
	PaymentMethod *string `json:"payment_method"`
	CardScheme    *string `json:"card_scheme"`
	Description   *string `json:"description"`
	Status        *string `json:"status"`
	CustomerID    *string `json:"customer_id"`
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	tx := &domain.Transaction{
		StoreID:       req.StoreID,
		StoreName:     req.StoreName,
		Platform:      domain.Platform(req.Platform),
		AmountPence:   req.AmountPence,
		PaymentMethod: req.PaymentMethod,
		CardScheme:    req.CardScheme,
		Description:   req.Description,
		Status:        domain.TransactionStatus(req.Status),
		CustomerID:    req.CustomerID,
	}
	if req.DateTime != "" {
		at, err := time.Parse(time.RFC3339, req.DateTime)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date_time must be RFC3339"})
		}
		tx.DateTime = at
	}

	created, err := h.service.Create(c.Context(), tx)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	tx, err := h.service.Get(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if tx == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found"})
	}
	return c.JSON(tx)
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	storeID := c.Query("store_id")
	txs, err := h.service.List(c.Context(), storeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(txs)
}

func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	upd := &ports.TransactionUpdate{
		AmountPence:   req.AmountPence,
		PaymentMethod: req.PaymentMethod,
		CardScheme:    req.CardScheme,
		Description:   req.Description,
		CustomerID:    req.CustomerID,
	}
	if req.DateTime != nil {
		at, err := time.Parse(time.RFC3339, *req.DateTime)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date_time must be RFC3339"})
		}
		upd.DateTime = &at
	}
	if req.Status != nil {
		status := domain.TransactionStatus(*req.Status)
		upd.Status = &status
	}

	tx, err := h.service.Update(c.Context(), id, upd)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(tx)
}

func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.Context(), id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
