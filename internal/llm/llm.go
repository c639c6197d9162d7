// Package llm sends rendered analysis prompts to a language model provider.
package llm

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"riskmai/internal/config"
	"riskmai/internal/model"
)

// Provider names accepted in LLM_PROVIDER.
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderGemini     = "gemini"
	ProviderSimulation = "simulation"
)

const (
	defaultTemperature = 0.3
	defaultMaxTokens   = 2000
	defaultTimeout     = 60 * time.Second
)

// Request is one completion call. Payload and Kind are only read by the simulation provider.
// A nil Temperature inherits the configured value; zero is a valid deterministic setting.
type Request struct {
	Kind        model.AnalysisType
	System      string
	Prompt      string
	Payload     *model.AnalysisPayload
	Temperature *float64
	MaxTokens   int
}

// Client is the language model gateway. Errors from remote providers are *gateway.DependencyError.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
	Close() error
}

// New builds the Client selected by cfg.Provider.
// A remote provider without an API key degrades to the simulation provider.
func New(ctx context.Context, cfg config.LLMConfig, triggers []string) (Client, error) {
	if cfg.Provider != ProviderSimulation && cfg.APIKey == "" {
		zap.L().Warn("LLM_API_KEY not set, using simulation provider", zap.String("provider", cfg.Provider))
		return NewSimulation(triggers), nil
	}

	switch cfg.Provider {
	case ProviderOpenAI, "":
		return NewOpenAI(cfg), nil
	case ProviderAnthropic:
		return NewAnthropic(cfg), nil
	case ProviderGemini:
		return NewGemini(ctx, cfg)
	case ProviderSimulation:
		return NewSimulation(triggers), nil
	default:
		return nil, eris.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}

func timeoutOf(cfg config.LLMConfig) time.Duration {
	if cfg.TimeoutSec > 0 {
		return time.Duration(cfg.TimeoutSec) * time.Second
	}
	return defaultTimeout
}

// samplingOf fills unset sampling parameters from cfg and then from the package defaults.
// A negative temperature counts as unset.
func samplingOf(req Request, cfg config.LLMConfig) (float64, int) {
	temp, maxTokens := cfg.Temperature, req.MaxTokens
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	if temp < 0 {
		temp = defaultTemperature
	}
	if maxTokens <= 0 {
		maxTokens = cfg.MaxTokens
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return temp, maxTokens
}
