package generation

import (
	_ "embed"
	"fmt"

	"github.com/adcraft/backend/internal/models"
)

//go:embed prompt.txt
var promptTemplate string

// Variations is the number of ad copies the prompt asks for.
const Variations = 3

// BuildPrompt renders the copywriting instruction for a campaign. Same input, same prompt.
func BuildPrompt(req models.CampaignRequest) string {
	return fmt.Sprintf(promptTemplate,
		req.ProductName,
		req.Category,
		req.Audience,
		req.Platform,
		req.Tone,
		req.Language,
		hashtagRule(req.Platform),
		languageRule(req.Language),
	)
}

func hashtagRule(p models.Platform) string {
	if p.SupportsHashtags() {
		return fmt.Sprintf("Add relevant hashtags, as is conventional on %s.", p)
	}
	return fmt.Sprintf("%s does not use hashtags: return an empty hashtags list.", p)
}

func languageRule(l models.Language) string {
	if l == models.LanguageUrdu {
		return "Write in high-quality, natural-sounding Urdu script, not Roman Urdu transliteration."
	}
	return fmt.Sprintf("Write in %s.", l)
}
