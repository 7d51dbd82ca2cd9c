package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignRequestValidate(t *testing.T) {
	valid := DefaultCampaignRequest()

	tests := []struct {
		name   string
		mutate func(r *CampaignRequest)
		errMsg string
	}{
		{"default is valid", func(r *CampaignRequest) {}, ""},
		{"empty product", func(r *CampaignRequest) { r.ProductName = "" }, "product name is required"},
		{"blank product", func(r *CampaignRequest) { r.ProductName = "   " }, "product name is required"},
		{"unknown platform", func(r *CampaignRequest) { r.Platform = "TikTok" }, `unknown platform "TikTok"`},
		{"unknown tone", func(r *CampaignRequest) { r.Tone = "Sarcastic" }, `unknown tone "Sarcastic"`},
		{"unknown language", func(r *CampaignRequest) { r.Language = "French" }, `unknown language "French"`},
		{"empty category allowed", func(r *CampaignRequest) { r.Category = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.errMsg)
		})
	}
}

func TestValidateProductNameSentinel(t *testing.T) {
	r := DefaultCampaignRequest()
	r.ProductName = ""
	assert.True(t, errors.Is(r.Validate(), ErrProductNameRequired))
}

func TestEnumListsAreValid(t *testing.T) {
	assert.Len(t, Platforms, 5)
	assert.Len(t, Tones, 5)
	assert.Len(t, Languages, 2)

	for _, p := range Platforms {
		assert.True(t, p.IsValid(), p)
	}
	for _, tone := range Tones {
		assert.True(t, tone.IsValid(), tone)
	}
	for _, l := range Languages {
		assert.True(t, l.IsValid(), l)
	}
}

func TestPlatformSlug(t *testing.T) {
	tests := []struct {
		platform Platform
		expected string
	}{
		{PlatformFacebook, "facebook"},
		{PlatformInstagram, "instagram"},
		{PlatformGoogleAds, "google-ads"},
		{PlatformYouTube, "youtube"},
		{PlatformWhatsApp, "whatsapp"},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.platform.Slug())
		})
	}
}

func TestPlatformSupportsHashtags(t *testing.T) {
	assert.True(t, PlatformInstagram.SupportsHashtags())
	assert.True(t, PlatformFacebook.SupportsHashtags())
	assert.True(t, PlatformYouTube.SupportsHashtags())
	assert.False(t, PlatformGoogleAds.SupportsHashtags())
	assert.False(t, PlatformWhatsApp.SupportsHashtags())
}

func TestCampaignRequestApply(t *testing.T) {
	name := "EcoSmoothie Blender"
	platform := PlatformWhatsApp

	got := DefaultCampaignRequest().Apply(CampaignPatch{ProductName: &name, Platform: &platform})

	assert.Equal(t, name, got.ProductName)
	assert.Equal(t, PlatformWhatsApp, got.Platform)
	assert.Equal(t, ToneLuxury, got.Tone)
	assert.Equal(t, "Beauty & Skincare", got.Category)
}
