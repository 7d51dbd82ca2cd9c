package dto

import "github.com/adcraft/backend/internal/models"

// UpdateFormRequest carries field edits; omitted fields keep their value.
type UpdateFormRequest struct {
	ProductName *string `json:"product_name,omitempty"`
	Category    *string `json:"category,omitempty"`
	Audience    *string `json:"audience,omitempty"`
	Platform    *string `json:"platform,omitempty"`
	Tone        *string `json:"tone,omitempty"`
	Language    *string `json:"language,omitempty"`
}

func (r UpdateFormRequest) Patch() models.CampaignPatch {
	p := models.CampaignPatch{
		ProductName: r.ProductName,
		Category:    r.Category,
		Audience:    r.Audience,
	}
	if r.Platform != nil {
		v := models.Platform(*r.Platform)
		p.Platform = &v
	}
	if r.Tone != nil {
		v := models.Tone(*r.Tone)
		p.Tone = &v
	}
	if r.Language != nil {
		v := models.Language(*r.Language)
		p.Language = &v
	}
	return p
}

type GenerateRequest struct {
	ProductName string `json:"product_name"`
	Category    string `json:"category"`
	Audience    string `json:"audience"`
	Platform    string `json:"platform"`
	Tone        string `json:"tone"`
	Language    string `json:"language"`
}

func (r GenerateRequest) Campaign() models.CampaignRequest {
	return models.CampaignRequest{
		ProductName: r.ProductName,
		Category:    r.Category,
		Audience:    r.Audience,
		Platform:    models.Platform(r.Platform),
		Tone:        models.Tone(r.Tone),
		Language:    models.Language(r.Language),
	}
}
