package llm

import (
	"context"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"

	"riskmai/internal/config"
	"riskmai/internal/gateway"
)

const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

type anthropicClient struct {
	client  sdk.Client
	cfg     config.LLMConfig
	model   string
	timeout time.Duration
}

// NewAnthropic returns a Client backed by the Anthropic Messages API. SDK retries are disabled.
func NewAnthropic(cfg config.LLMConfig) Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	m := cfg.Model
	if m == "" {
		m = defaultAnthropicModel
	}
	return &anthropicClient{
		client:  sdk.NewClient(opts...),
		cfg:     cfg,
		model:   m,
		timeout: timeoutOf(cfg),
	}
}

func (c *anthropicClient) Name() string { return ProviderAnthropic }

func (c *anthropicClient) Close() error { return nil }

func (c *anthropicClient) Complete(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	temp, maxTokens := samplingOf(req, c.cfg)
	params := sdk.MessageNewParams{
		Model:       sdk.Model(c.model),
		MaxTokens:   int64(maxTokens),
		Messages:    []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt))},
		Temperature: sdk.Float(temp),
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", gateway.NewDependencyError(ProviderAnthropic, eris.Wrap(err, "anthropic: create message"))
	}

	var sb strings.Builder
	for _, b := range msg.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	if sb.Len() == 0 {
		return "", gateway.NewDependencyError(ProviderAnthropic, eris.New("anthropic: response has no text content"))
	}
	return sb.String(), nil
}
