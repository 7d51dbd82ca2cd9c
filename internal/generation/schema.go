package generation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/adcraft/backend/internal/models"
	"google.golang.org/genai"
)

var requiredFields = []string{"headline", "body", "cta", "hashtags"}

// ResponseSchema declares the structured output: an array of ad copies, all four fields required.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"headline": {Type: genai.TypeString, Description: "The main headline of the ad"},
				"body":     {Type: genai.TypeString, Description: "The main persuasive body text"},
				"cta":      {Type: genai.TypeString, Description: "The call to action phrase"},
				"hashtags": {
					Type:        genai.TypeArray,
					Items:       &genai.Schema{Type: genai.TypeString},
					Description: "List of relevant hashtags (empty if not applicable)",
				},
			},
			Required: requiredFields,
		},
	}
}

// ParseAdCopies decodes a provider payload against the declared schema. Extra fields
// are ignored, any item count is accepted.
func ParseAdCopies(payload string) ([]models.AdCopy, error) {
	data := bytes.TrimSpace([]byte(payload))
	if len(data) == 0 {
		return nil, emptyResponseError()
	}
	if data[0] != '[' {
		return nil, malformedResponseError(fmt.Errorf("expected a JSON array"))
	}

	var items []map[string]json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, malformedResponseError(err)
	}

	copies := make([]models.AdCopy, 0, len(items))
	for i, item := range items {
		if item == nil {
			return nil, malformedResponseError(fmt.Errorf("item %d is not an object", i))
		}
		for _, field := range requiredFields {
			if _, ok := item[field]; !ok {
				return nil, malformedResponseError(fmt.Errorf("item %d: missing %q", i, field))
			}
		}

		var ad models.AdCopy
		if err := decodeString(item, "headline", &ad.Headline); err != nil {
			return nil, malformedResponseError(fmt.Errorf("item %d: %w", i, err))
		}
		if err := decodeString(item, "body", &ad.Body); err != nil {
			return nil, malformedResponseError(fmt.Errorf("item %d: %w", i, err))
		}
		if err := decodeString(item, "cta", &ad.CTA); err != nil {
			return nil, malformedResponseError(fmt.Errorf("item %d: %w", i, err))
		}
		hashtags, err := decodeHashtags(item)
		if err != nil {
			return nil, malformedResponseError(fmt.Errorf("item %d: %w", i, err))
		}
		ad.Hashtags = hashtags
		copies = append(copies, ad)
	}
	return copies, nil
}

var jsonNull = []byte("null")

func decodeString(item map[string]json.RawMessage, field string, dst *string) error {
	raw := bytes.TrimSpace(item[field])
	if bytes.Equal(raw, jsonNull) {
		return fmt.Errorf("field %q: null", field)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", field, err)
	}
	return nil
}

// decodeHashtags treats a null list as empty but rejects null elements.
func decodeHashtags(item map[string]json.RawMessage) ([]string, error) {
	var tags []*string
	if err := json.Unmarshal(item["hashtags"], &tags); err != nil {
		return nil, fmt.Errorf("field %q: %w", "hashtags", err)
	}

	out := make([]string, 0, len(tags))
	for j, tag := range tags {
		if tag == nil {
			return nil, fmt.Errorf("field %q: element %d is null", "hashtags", j)
		}
		out = append(out, *tag)
	}
	return out, nil
}
