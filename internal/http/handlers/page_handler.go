package handlers

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/adcraft/backend/internal/http/dto"
	"github.com/adcraft/backend/web"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PageHandler struct {
	index *template.Template
	log   *zap.Logger
}

type indexPage struct {
	dto.OptionsResponse
	DefaultPlatform string
	DefaultTone     string
	DefaultLanguage string
}

func NewPageHandler(log *zap.Logger) (*PageHandler, error) {
	tmpl, err := template.ParseFS(web.Templates, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	return &PageHandler{index: tmpl, log: log}, nil
}

// Index renders the campaign form with the default campaign filled in.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	opts := campaignOptions()
	page := indexPage{
		OptionsResponse: opts,
		DefaultPlatform: string(opts.Defaults.Platform),
		DefaultTone:     string(opts.Defaults.Tone),
		DefaultLanguage: string(opts.Defaults.Language),
	}

	var buf bytes.Buffer
	if err := h.index.Execute(&buf, page); err != nil {
		h.log.Error("render index failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("internal error")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
