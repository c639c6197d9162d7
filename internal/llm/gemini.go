package llm

import (
	"context"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rotisserie/eris"
	"google.golang.org/api/option"

	"riskmai/internal/config"
	"riskmai/internal/gateway"
)

const defaultGeminiModel = "gemini-1.5-flash"

type geminiClient struct {
	client  *genai.Client
	cfg     config.LLMConfig
	model   string
	timeout time.Duration
}

// NewGemini returns a Client backed by the Gemini API. The caller must Close it.
func NewGemini(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, eris.Wrap(err, "failed to create gemini client")
	}
	m := cfg.Model
	if m == "" {
		m = defaultGeminiModel
	}
	return &geminiClient{client: client, cfg: cfg, model: m, timeout: timeoutOf(cfg)}, nil
}

func (c *geminiClient) Name() string { return ProviderGemini }

func (c *geminiClient) Close() error { return c.client.Close() }

func (c *geminiClient) Complete(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	temp, maxTokens := samplingOf(req, c.cfg)
	// GenerativeModel carries per-call settings, so each request gets its own.
	gm := c.client.GenerativeModel(c.model)
	gm.SetTemperature(float32(temp))
	gm.SetMaxOutputTokens(int32(maxTokens))
	gm.ResponseMIMEType = "application/json"
	if req.System != "" {
		gm.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}

	resp, err := gm.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", gateway.NewDependencyError(ProviderGemini, eris.Wrap(err, "gemini request failed"))
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", gateway.NewDependencyError(ProviderGemini, eris.New("gemini returned empty candidates"))
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}
