package dto

import "github.com/adcraft/backend/internal/models"

type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type SessionResponse struct {
	Token   string                 `json:"token"`
	Session models.SessionSnapshot `json:"session"`
}

type GenerateResponse struct {
	Results []models.AdCopy `json:"results"`
	Count   int             `json:"count"`
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type OptionsResponse struct {
	Platforms []Option               `json:"platforms"`
	Tones     []Option               `json:"tones"`
	Languages []Option               `json:"languages"`
	Defaults  models.CampaignRequest `json:"defaults"`
}
