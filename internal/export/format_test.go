package export

import (
	"testing"

	"github.com/adcraft/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyText(t *testing.T) {
	ad := models.AdCopy{Headline: "H", Body: "B", CTA: "C", Hashtags: []string{"x", "y"}}
	assert.Equal(t, "H\n\nB\n\nC\n\nx y", CopyText(ad))

	ad.Hashtags = []string{}
	assert.Equal(t, "H\n\nB\n\nC\n\n", CopyText(ad))
}

func TestCopyTextRoundTrip(t *testing.T) {
	tests := []models.AdCopy{
		{Headline: "H", Body: "B", CTA: "C", Hashtags: []string{"x", "y"}},
		{Headline: "Glow On", Body: "First paragraph.\n\nSecond paragraph.", CTA: "Shop Now", Hashtags: []string{"#beauty"}},
		{Headline: "No tags", Body: "Chat with us", CTA: "Message now", Hashtags: []string{}},
	}

	for _, ad := range tests {
		t.Run(ad.Headline, func(t *testing.T) {
			got, err := ParseCopyText(CopyText(ad))
			require.NoError(t, err)
			assert.Equal(t, ad, got)
		})
	}
}

func TestParseCopyText_TooShort(t *testing.T) {
	_, err := ParseCopyText("headline only")
	assert.Error(t, err)
}

func TestExportText(t *testing.T) {
	ads := []models.AdCopy{
		{Headline: "H1", Body: "B1", CTA: "C1", Hashtags: []string{"#a", "#b"}},
		{Headline: "H2", Body: "B2", CTA: "C2", Hashtags: []string{}},
	}

	want := "\nOption 1:\nHeadline: H1\nBody: B1\nCTA: C1\nHashtags: #a #b\n-----------------------------------\n" +
		"\n" +
		"\nOption 2:\nHeadline: H2\nBody: B2\nCTA: C2\nHashtags: \n-----------------------------------\n"
	assert.Equal(t, want, ExportText(ads))
	assert.Equal(t, "", ExportText(nil))
}

func TestExportTextRoundTrip(t *testing.T) {
	ads := []models.AdCopy{
		{Headline: "H", Body: "B", CTA: "C", Hashtags: []string{"x", "y"}},
		{Headline: "Glow On", Body: "Radiance in every drop.", CTA: "Shop Now", Hashtags: []string{"#beauty"}},
		{Headline: "Plain", Body: "No tags here", CTA: "Call us", Hashtags: []string{}},
	}

	got, err := ParseExportText(ExportText(ads))
	require.NoError(t, err)
	assert.Equal(t, ads, got)
}

func TestParseExportText_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"unterminated", "\nOption 1:\nHeadline: H\n"},
		{"stray line", "garbage\n"},
		{"divider first", "-----------------------------------\n"},
		{"unknown field", "\nOption 1:\nPrice: 10\n-----------------------------------\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExportText(tt.text)
			assert.Error(t, err)
		})
	}
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		platform models.Platform
		expected string
	}{
		{models.PlatformInstagram, "ad-copies-instagram.txt"},
		{models.PlatformGoogleAds, "ad-copies-google-ads.txt"},
		{models.PlatformWhatsApp, "ad-copies-whatsapp.txt"},
		{models.PlatformYouTube, "ad-copies-youtube.txt"},
		{models.PlatformFacebook, "ad-copies-facebook.txt"},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			assert.Equal(t, tt.expected, ExportFilename(tt.platform))
		})
	}
}
