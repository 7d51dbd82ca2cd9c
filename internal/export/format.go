package export

import (
	"fmt"
	"strings"

	"github.com/adcraft/backend/internal/models"
)

const divider = "-----------------------------------"

// CopyText is the clipboard form of a single variation.
func CopyText(ad models.AdCopy) string {
	return ad.Headline + "\n\n" + ad.Body + "\n\n" + ad.CTA + "\n\n" + strings.Join(ad.Hashtags, " ")
}

// ParseCopyText reads CopyText output back. Headline, CTA and hashtags must not contain
// blank lines; the body may.
func ParseCopyText(text string) (models.AdCopy, error) {
	parts := strings.Split(text, "\n\n")
	if len(parts) < 4 {
		return models.AdCopy{}, fmt.Errorf("copy text has %d sections, want at least 4", len(parts))
	}

	n := len(parts)
	return models.AdCopy{
		Headline: parts[0],
		Body:     strings.Join(parts[1:n-2], "\n\n"),
		CTA:      parts[n-2],
		Hashtags: splitHashtags(parts[n-1]),
	}, nil
}

// ExportText renders every variation as a labelled block followed by a divider line.
func ExportText(ads []models.AdCopy) string {
	blocks := make([]string, len(ads))
	for i, ad := range ads {
		blocks[i] = fmt.Sprintf("\nOption %d:\nHeadline: %s\nBody: %s\nCTA: %s\nHashtags: %s\n%s\n",
			i+1, ad.Headline, ad.Body, ad.CTA, strings.Join(ad.Hashtags, " "), divider)
	}
	return strings.Join(blocks, "\n")
}

// ExportFilename derives the download name from the platform, e.g. ad-copies-google-ads.txt.
func ExportFilename(p models.Platform) string {
	return "ad-copies-" + p.Slug() + ".txt"
}

// ParseExportText reads ExportText output back. Fields must be single-line.
func ParseExportText(text string) ([]models.AdCopy, error) {
	var (
		ads     []models.AdCopy
		current *models.AdCopy
	)

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "Option "):
			if current != nil {
				return nil, fmt.Errorf("option started before divider: %q", line)
			}
			current = &models.AdCopy{}
		case line == divider:
			if current == nil {
				return nil, fmt.Errorf("divider without option")
			}
			ads = append(ads, *current)
			current = nil
		case current == nil:
			if line != "" {
				return nil, fmt.Errorf("unexpected line outside option: %q", line)
			}
		case strings.HasPrefix(line, "Headline: "):
			current.Headline = strings.TrimPrefix(line, "Headline: ")
		case strings.HasPrefix(line, "Body: "):
			current.Body = strings.TrimPrefix(line, "Body: ")
		case strings.HasPrefix(line, "CTA: "):
			current.CTA = strings.TrimPrefix(line, "CTA: ")
		case strings.HasPrefix(line, "Hashtags:"):
			current.Hashtags = splitHashtags(strings.TrimPrefix(line, "Hashtags:"))
		default:
			return nil, fmt.Errorf("unexpected line: %q", line)
		}
	}

	if current != nil {
		return nil, fmt.Errorf("unterminated option")
	}
	return ads, nil
}

func splitHashtags(s string) []string {
	tags := strings.Fields(s)
	if tags == nil {
		return []string{}
	}
	return tags
}
