package handlers

import (
	"errors"
	"time"

	"github.com/adcraft/backend/internal/auth"
	"github.com/adcraft/backend/internal/export"
	"github.com/adcraft/backend/internal/http/dto"
	"github.com/adcraft/backend/internal/middleware"
	"github.com/adcraft/backend/internal/models"
	"github.com/adcraft/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SessionHandler struct {
	sessionService *services.SessionService
	secret         string
	tokenTTL       time.Duration
	log            *zap.Logger
}

func NewSessionHandler(sessionService *services.SessionService, secret string, tokenTTL time.Duration, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		secret:         secret,
		tokenTTL:       tokenTTL,
		log:            log,
	}
}

func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	snap := h.sessionService.Create()

	token, err := auth.GenerateSessionToken(h.secret, snap.ID, h.tokenTTL)
	if err != nil {
		h.log.Error("sign session token failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody(c, "internal error"))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: dto.SessionResponse{Token: token, Session: snap}})
}

func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	snap, err := h.sessionService.Get(middleware.GetSessionID(c))
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: snap})
}

func (h *SessionHandler) UpdateForm(c *fiber.Ctx) error {
	var req dto.UpdateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(c, "invalid request"))
	}

	snap, err := h.sessionService.UpdateForm(c.Context(), middleware.GetSessionID(c), req.Patch())
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: snap})
}

func (h *SessionHandler) Submit(c *fiber.Ctx) error {
	snap, err := h.sessionService.Submit(c.Context(), middleware.GetSessionID(c))
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.SuccessResponse{OK: true, Data: snap})
}

func (h *SessionHandler) CopyResult(c *fiber.Ctx) error {
	snap, err := h.sessionService.Get(middleware.GetSessionID(c))
	if err != nil {
		return h.sessionError(c, err)
	}

	idx, err := c.ParamsInt("index")
	if err != nil || idx < 0 || idx >= len(snap.Results) {
		return c.Status(fiber.StatusNotFound).JSON(errorBody(c, "result not found"))
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(export.CopyText(snap.Results[idx]))
}

func (h *SessionHandler) Export(c *fiber.Ctx) error {
	snap, err := h.sessionService.Get(middleware.GetSessionID(c))
	if err != nil {
		return h.sessionError(c, err)
	}
	if snap.Status != models.SessionStatusSucceeded || len(snap.Results) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(errorBody(c, "no results to export"))
	}

	c.Attachment(export.ExportFilename(snap.Form.Platform))
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(export.ExportText(snap.Results))
}

func (h *SessionHandler) sessionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorBody(c, "session not found"))
	case errors.Is(err, models.ErrProductNameRequired):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody(c, err.Error()))
	case errors.Is(err, services.ErrGenerationInFlight):
		return c.Status(fiber.StatusConflict).JSON(errorBody(c, err.Error()))
	default:
		h.log.Error("session operation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody(c, "internal error"))
	}
}

func errorBody(c *fiber.Ctx, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: msg, RequestID: middleware.GetRequestID(c)}
}
