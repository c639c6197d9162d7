package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// LLMConfig selects and tunes the language model provider.
// Provider is one of "openai", "anthropic", "gemini" or "simulation".
// Temperature 0 is honoured; a negative value selects the provider default.
type LLMConfig struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	TimeoutSec  int
}

// NewsConfig configures the NewsAPI.ai client. An empty APIKey switches the client to mock data.
type NewsConfig struct {
	APIKey        string
	BaseURL       string
	TimeoutSec    int
	DaysBack      int
	ArticlesCount int
	RatePerSec    float64
	MockOnError   bool
}

// ExtractConfig tunes document text extraction.
type ExtractConfig struct {
	// EmailBodyMode is "concat" (plain parts followed by stripped HTML parts) or "prefer_plain".
	EmailBodyMode string
}

// AnalysisConfig tunes the analysis pipeline.
type AnalysisConfig struct {
	GeneralNewsLimit int
	RiskNewsLimit    int
	TriggerPhrases   []string
}

// LogConfig configures the global zap logger.
type LogConfig struct {
	Level  string
	Format string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost        string
	Port           string
	MaxUploadBytes int
	CORSOrigins    []string
	Database       DatabaseConfig
	MinIO          MinIOConfig
	LLM            LLMConfig
	News           NewsConfig
	Extract        ExtractConfig
	Analysis       AnalysisConfig
	Log            LogConfig
}

// DefaultTriggerPhrases promote a simulated scenario to the Critical tier.
var DefaultTriggerPhrases = []string{"force majeure", "breach", "liquidated damages", "300%"}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:        getEnv("APP_HOST", "localhost:8080"),
		Port:           getEnv("PORT", "8080"),
		MaxUploadBytes: getEnvInt("MAX_UPLOAD_BYTES", 16*1024*1024),
		CORSOrigins: getEnvList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		LLM: LLMConfig{
			Provider:    strings.ToLower(getEnv("LLM_PROVIDER", "openai")),
			APIKey:      getEnv("LLM_API_KEY", ""),
			Model:       getEnv("LLM_MODEL", ""),
			BaseURL:     getEnv("LLM_BASE_URL", ""),
			Temperature: getEnvFloat("LLM_TEMPERATURE", 0.3),
			MaxTokens:   getEnvInt("LLM_MAX_TOKENS", 2000),
			TimeoutSec:  getEnvInt("LLM_TIMEOUT_SEC", 60),
		},
		News: NewsConfig{
			APIKey:        getEnv("NEWS_API_KEY", ""),
			BaseURL:       getEnv("NEWS_API_BASE_URL", "https://newsapi.ai/api/v1"),
			TimeoutSec:    getEnvInt("NEWS_TIMEOUT_SEC", 30),
			DaysBack:      getEnvInt("NEWS_DAYS_BACK", 30),
			ArticlesCount: getEnvInt("NEWS_ARTICLES_COUNT", 20),
			RatePerSec:    getEnvFloat("NEWS_RATE_PER_SEC", 2),
			MockOnError:   getEnvBool("NEWS_MOCK_ON_ERROR", true),
		},
		Extract: ExtractConfig{
			EmailBodyMode: strings.ToLower(getEnv("EXTRACT_EMAIL_BODY_MODE", "concat")),
		},
		Analysis: AnalysisConfig{
			GeneralNewsLimit: getEnvInt("ANALYSIS_GENERAL_NEWS_LIMIT", 5),
			RiskNewsLimit:    getEnvInt("ANALYSIS_RISK_NEWS_LIMIT", 3),
			TriggerPhrases:   getEnvList("ANALYSIS_TRIGGER_PHRASES", DefaultTriggerPhrases),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}

// getEnvList splits a comma separated value, dropping blank items.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	out := make([]string, 0)
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
