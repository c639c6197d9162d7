package llm

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/sashabaranov/go-openai"

	"riskmai/internal/config"
	"riskmai/internal/gateway"
)

const defaultOpenAIModel = "gpt-4o-mini"

type openAIClient struct {
	client  *openai.Client
	cfg     config.LLMConfig
	model   string
	timeout time.Duration
}

// NewOpenAI returns a Client backed by the OpenAI chat completions API.
// cfg.BaseURL points it at any compatible endpoint.
func NewOpenAI(cfg config.LLMConfig) Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	m := cfg.Model
	if m == "" {
		m = defaultOpenAIModel
	}
	return &openAIClient{
		client:  openai.NewClientWithConfig(oc),
		cfg:     cfg,
		model:   m,
		timeout: timeoutOf(cfg),
	}
}

func (c *openAIClient) Name() string { return ProviderOpenAI }

func (c *openAIClient) Close() error { return nil }

func (c *openAIClient) Complete(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	temp, maxTokens := samplingOf(req, c.cfg)
	// temperature is omitempty in the request struct, so zero would fall back to the server default.
	if temp == 0 {
		temp = math.SmallestNonzeroFloat32
	}
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt})

	creq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: float32(temp),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}
	// Reasoning models only accept max_completion_tokens.
	if strings.HasPrefix(c.model, "o1") || strings.HasPrefix(c.model, "o3") || strings.HasPrefix(c.model, "o4") || strings.HasPrefix(c.model, "gpt-5") {
		creq.MaxCompletionTokens = maxTokens
	} else {
		creq.MaxTokens = maxTokens
	}

	resp, err := c.client.CreateChatCompletion(ctx, creq)
	if err != nil {
		return "", gateway.NewDependencyError(ProviderOpenAI, eris.Wrap(err, "create chat completion"))
	}
	if len(resp.Choices) == 0 {
		return "", gateway.NewDependencyError(ProviderOpenAI, eris.New("no choices in completion"))
	}
	return resp.Choices[0].Message.Content, nil
}
