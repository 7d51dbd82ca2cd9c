package models

import (
	"errors"
	"fmt"
	"strings"
)

type Platform string

const (
	PlatformFacebook  Platform = "Facebook"
	PlatformInstagram Platform = "Instagram"
	PlatformGoogleAds Platform = "Google Ads"
	PlatformYouTube   Platform = "YouTube"
	PlatformWhatsApp  Platform = "WhatsApp"
)

// Platforms lists every platform in display order. UI option lists are derived from it.
var Platforms = []Platform{
	PlatformFacebook,
	PlatformInstagram,
	PlatformGoogleAds,
	PlatformYouTube,
	PlatformWhatsApp,
}

type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneFriendly     Tone = "Friendly"
	ToneEmotional    Tone = "Emotional"
	ToneFunny        Tone = "Funny"
	ToneLuxury       Tone = "Luxury"
)

var Tones = []Tone{
	ToneProfessional,
	ToneFriendly,
	ToneEmotional,
	ToneFunny,
	ToneLuxury,
}

type Language string

const (
	LanguageEnglish Language = "English"
	LanguageUrdu    Language = "Urdu"
)

var Languages = []Language{
	LanguageEnglish,
	LanguageUrdu,
}

func (p Platform) IsValid() bool {
	for _, v := range Platforms {
		if v == p {
			return true
		}
	}
	return false
}

// SupportsHashtags reports whether posts on the platform conventionally carry hashtags.
func (p Platform) SupportsHashtags() bool {
	switch p {
	case PlatformInstagram, PlatformFacebook, PlatformYouTube:
		return true
	}
	return false
}

// Slug is the lowercased, hyphenated form used in filenames ("Google Ads" -> "google-ads").
func (p Platform) Slug() string {
	return strings.Join(strings.Fields(strings.ToLower(string(p))), "-")
}

func (t Tone) IsValid() bool {
	for _, v := range Tones {
		if v == t {
			return true
		}
	}
	return false
}

func (l Language) IsValid() bool {
	for _, v := range Languages {
		if v == l {
			return true
		}
	}
	return false
}

var ErrProductNameRequired = errors.New("product name is required")

// CampaignRequest is built fresh from the form values on every submit.
type CampaignRequest struct {
	ProductName string   `json:"product_name"`
	Category    string   `json:"category"`
	Audience    string   `json:"audience"`
	Platform    Platform `json:"platform"`
	Tone        Tone     `json:"tone"`
	Language    Language `json:"language"`
}

func DefaultCampaignRequest() CampaignRequest {
	return CampaignRequest{
		ProductName: "Lumina Glow Serum",
		Category:    "Beauty & Skincare",
		Audience:    "Women aged 25-45 looking for anti-aging solutions",
		Platform:    PlatformInstagram,
		Tone:        ToneLuxury,
		Language:    LanguageEnglish,
	}
}

// Validate checks the product name and that every enum field holds a declared value.
func (r CampaignRequest) Validate() error {
	if strings.TrimSpace(r.ProductName) == "" {
		return ErrProductNameRequired
	}
	if !r.Platform.IsValid() {
		return fmt.Errorf("unknown platform %q", r.Platform)
	}
	if !r.Tone.IsValid() {
		return fmt.Errorf("unknown tone %q", r.Tone)
	}
	if !r.Language.IsValid() {
		return fmt.Errorf("unknown language %q", r.Language)
	}
	return nil
}

// CampaignPatch carries partial form edits; nil fields are left untouched.
type CampaignPatch struct {
	ProductName *string   `json:"product_name,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Audience    *string   `json:"audience,omitempty"`
	Platform    *Platform `json:"platform,omitempty"`
	Tone        *Tone     `json:"tone,omitempty"`
	Language    *Language `json:"language,omitempty"`
}

func (r CampaignRequest) Apply(p CampaignPatch) CampaignRequest {
	if p.ProductName != nil {
		r.ProductName = *p.ProductName
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Audience != nil {
		r.Audience = *p.Audience
	}
	if p.Platform != nil {
		r.Platform = *p.Platform
	}
	if p.Tone != nil {
		r.Tone = *p.Tone
	}
	if p.Language != nil {
		r.Language = *p.Language
	}
	return r
}
