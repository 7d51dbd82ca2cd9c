package generation

import (
	"strings"
	"testing"

	"github.com/adcraft/backend/internal/models"
)

func TestBuildPrompt_EmbedsAllFields(t *testing.T) {
	req := models.CampaignRequest{
		ProductName: "EcoSmoothie Blender",
		Category:    "Health & Fitness",
		Audience:    "Health conscious millennials",
		Platform:    models.PlatformGoogleAds,
		Tone:        models.ToneFriendly,
		Language:    models.LanguageEnglish,
	}

	prompt := BuildPrompt(req)

	for _, want := range []string{
		"Product/Service: EcoSmoothie Blender",
		"Category: Health & Fitness",
		"Target Audience: Health conscious millennials",
		"Platform: Google Ads",
		"Tone: Friendly",
		"Language: English",
		"Create 3 distinct",
		"optimized for Google Ads constraints",
		"100% original and plagiarism-free",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "%!") {
		t.Errorf("prompt has formatting artifacts:\n%s", prompt)
	}
}

func TestBuildPrompt_HashtagRule(t *testing.T) {
	tests := []struct {
		platform models.Platform
		expected string
	}{
		{models.PlatformInstagram, "Add relevant hashtags, as is conventional on Instagram."},
		{models.PlatformFacebook, "Add relevant hashtags, as is conventional on Facebook."},
		{models.PlatformYouTube, "Add relevant hashtags, as is conventional on YouTube."},
		{models.PlatformWhatsApp, "WhatsApp does not use hashtags: return an empty hashtags list."},
		{models.PlatformGoogleAds, "Google Ads does not use hashtags: return an empty hashtags list."},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			req := models.DefaultCampaignRequest()
			req.Platform = tt.platform
			if prompt := BuildPrompt(req); !strings.Contains(prompt, tt.expected) {
				t.Errorf("prompt for %s missing %q", tt.platform, tt.expected)
			}
		})
	}
}

func TestBuildPrompt_Urdu(t *testing.T) {
	req := models.DefaultCampaignRequest()
	req.Language = models.LanguageUrdu

	prompt := BuildPrompt(req)
	if !strings.Contains(prompt, "natural-sounding Urdu script, not Roman Urdu transliteration") {
		t.Errorf("urdu prompt missing script rule:\n%s", prompt)
	}

	req.Language = models.LanguageEnglish
	if strings.Contains(BuildPrompt(req), "Urdu script") {
		t.Error("english prompt should not mention Urdu script")
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	req := models.DefaultCampaignRequest()
	if BuildPrompt(req) != BuildPrompt(req) {
		t.Error("same request produced different prompts")
	}
}
