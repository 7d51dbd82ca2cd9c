package handlers

import (
	"github.com/adcraft/backend/internal/http/dto"
	"github.com/adcraft/backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// campaignOptions derives the select and radio options from the enum lists.
func campaignOptions() dto.OptionsResponse {
	resp := dto.OptionsResponse{Defaults: models.DefaultCampaignRequest()}
	for _, p := range models.Platforms {
		resp.Platforms = append(resp.Platforms, dto.Option{Value: string(p), Label: string(p)})
	}
	for _, t := range models.Tones {
		resp.Tones = append(resp.Tones, dto.Option{Value: string(t), Label: string(t)})
	}
	for _, l := range models.Languages {
		resp.Languages = append(resp.Languages, dto.Option{Value: string(l), Label: string(l)})
	}
	return resp
}

func (h *MetaHandler) GetOptions(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: campaignOptions()})
}
