package models

// AdCopy is one generated variation.
type AdCopy struct {
	Headline string   `json:"headline"`
	Body     string   `json:"body"`
	CTA      string   `json:"cta"`
	Hashtags []string `json:"hashtags"`
}
