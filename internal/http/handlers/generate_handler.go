package handlers

import (
	"strconv"
	"time"

	"github.com/adcraft/backend/internal/generation"
	"github.com/adcraft/backend/internal/http/dto"
	"github.com/adcraft/backend/internal/middleware"
	"github.com/adcraft/backend/internal/models"
	"github.com/adcraft/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GenerateHandler struct {
	generationService *services.GenerationService
	log               *zap.Logger
}

func NewGenerateHandler(generationService *services.GenerationService, log *zap.Logger) *GenerateHandler {
	return &GenerateHandler{generationService: generationService, log: log}
}

// Generate is the stateless one-shot variant of a session submit.
func (h *GenerateHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(c, "invalid request"))
	}

	copies, err := h.generationService.Generate(c.Context(), nil, req.Campaign())
	if err != nil {
		kind := generation.KindOf(err)
		if kind == generation.KindInvalidRequest {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error:     err.Error(),
				Kind:      string(kind),
				RequestID: middleware.GetRequestID(c),
			})
		}

		h.log.Error("generate failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error:     services.FailureMessage,
			Kind:      string(kind),
			RequestID: middleware.GetRequestID(c),
		})
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.GenerateResponse{Results: copies, Count: len(copies)}})
}

// Stats summarises recent generations from the audit trail.
func (h *GenerateHandler) Stats(c *fiber.Ctx) error {
	hours := 24
	if v := c.Query("hours"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 24*90 {
			hours = n
		}
	}

	summary, err := h.generationService.Summary(c.Context(), time.Now().Add(-time.Duration(hours)*time.Hour))
	if err != nil {
		h.log.Error("generation summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody(c, "internal error"))
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: summary})
}

// Recent lists the latest generations, optionally filtered by outcome.
func (h *GenerateHandler) Recent(c *fiber.Ctx) error {
	var outcome *string
	if v := c.Query("outcome"); v != "" {
		if v != models.GenerationOutcomeSuccess && v != models.GenerationOutcomeFailure {
			return c.Status(fiber.StatusBadRequest).JSON(errorBody(c, "outcome must be success or failure"))
		}
		outcome = &v
	}

	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	entries, err := h.generationService.Recent(c.Context(), outcome, limit)
	if err != nil {
		h.log.Error("recent generations failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody(c, "internal error"))
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: entries})
}
