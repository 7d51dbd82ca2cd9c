package generation

import (
	"context"
	"time"

	"github.com/adcraft/backend/internal/models"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Provider is the text-generation service behind the client. It returns the raw text
// payload of one structured-output call.
type Provider interface {
	GenerateJSON(ctx context.Context, model, prompt string, schema *genai.Schema) (string, error)
}

// Client turns a campaign into ad copies with a single provider call. It never retries.
type Client struct {
	provider Provider
	model    string
	timeout  time.Duration
	log      *zap.Logger
}

func NewClient(provider Provider, model string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		provider: provider,
		model:    model,
		timeout:  timeout,
		log:      log,
	}
}

// Generate returns the parsed variations, or an *Error describing why there are none.
func (c *Client) Generate(ctx context.Context, req models.CampaignRequest) ([]models.AdCopy, error) {
	if err := req.Validate(); err != nil {
		return nil, invalidRequestError(err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.log.Debug("calling provider",
		zap.String("model", c.model),
		zap.String("platform", string(req.Platform)),
		zap.String("language", string(req.Language)),
	)

	text, err := c.provider.GenerateJSON(ctx, c.model, BuildPrompt(req), ResponseSchema())
	if err != nil {
		return nil, providerError(err)
	}

	copies, err := ParseAdCopies(text)
	if err != nil {
		return nil, err
	}

	if len(copies) != Variations {
		c.log.Info("provider returned unexpected variation count",
			zap.Int("expected", Variations),
			zap.Int("got", len(copies)),
		)
	}
	return copies, nil
}
