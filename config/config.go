package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Website chat
	Scraper   ScraperConfig
	Extractor ExtractorConfig
	Chat      ChatConfig
	Session   SessionConfig
	RateLimit RateLimitConfig

	// Telegram channel (optional)
	Telegram TelegramConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ScraperConfig controls how pages are downloaded.
type ScraperConfig struct {
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
	MaxRedirects int
}

// ExtractorConfig controls text cleanup. MaxLength is the truncation ceiling in characters.
type ExtractorConfig struct {
	MaxLength int
}

// ChatConfig controls answer generation.
type ChatConfig struct {
	DefaultURL    string
	MaxNewTokens  int
	MinNewTokens  int
	Temperature   float64
	PreviewLength int
}

type SessionConfig struct {
	TTL          time.Duration
	MaxSessions  int
	CookieName   string
	SecureCookie bool
}

type RateLimitConfig struct {
	PerMin int
}

// TelegramConfig enables the Telegram chat channel when BotToken is set.
type TelegramConfig struct {
	BotToken      string
	WebhookURL    string // public URL of POST /webhook/telegram, registered on startup when set
	WebhookSecret string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `mapstructure:"providers"`
	FallbackEnabled bool             `mapstructure:"fallback_enabled"`
	RetryAttempts   int              `mapstructure:"retry_attempts"`
	RetryDelay      string           `mapstructure:"retry_delay"`
	MaxTotalTimeout string           `mapstructure:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `mapstructure:"name"`
	Enabled  bool   `mapstructure:"enabled"`
	Priority int    `mapstructure:"priority"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	Model    string `mapstructure:"model"`
	Timeout  string `mapstructure:"timeout"`
}

// PrimaryModel returns the model of the enabled provider with the lowest priority number.
func (c LLMConfig) PrimaryModel() string {
	if i := c.primaryIndex(); i >= 0 {
		return c.Providers[i].Model
	}
	return ""
}

func (c LLMConfig) primaryIndex() int {
	best := -1
	for i, p := range c.Providers {
		if !p.Enabled {
			continue
		}
		if best < 0 || p.Priority < c.Providers[best].Priority {
			best = i
		}
	}
	return best
}

// BindFlag binds a command-line flag onto a config key so the flag wins over file and env.
func BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("flag for %s is nil", key)
	}
	return viper.BindPFlag(key, flag)
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the environment first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/webwhisper/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/webwhisper/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Scraper
	cfg.Scraper.Timeout = viper.GetDuration("scraper.timeout")
	cfg.Scraper.UserAgent = viper.GetString("scraper.user_agent")
	cfg.Scraper.MaxBodyBytes = viper.GetInt64("scraper.max_body_bytes")
	cfg.Scraper.MaxRedirects = viper.GetInt("scraper.max_redirects")

	// Extractor
	cfg.Extractor.MaxLength = viper.GetInt("extractor.max_length")

	// Chat
	cfg.Chat.DefaultURL = viper.GetString("chat.default_url")
	cfg.Chat.MaxNewTokens = viper.GetInt("chat.max_new_tokens")
	cfg.Chat.MinNewTokens = viper.GetInt("chat.min_new_tokens")
	cfg.Chat.Temperature = viper.GetFloat64("chat.temperature")
	cfg.Chat.PreviewLength = viper.GetInt("chat.preview_length")

	// Session
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.SecureCookie = viper.GetBool("session.secure_cookie")

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Telegram
	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = expandEnvVar(viper.GetString("telegram.webhook_secret"))

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if err := viper.UnmarshalKey("llm.providers", &cfg.LLM.Providers); err != nil {
		return nil, fmt.Errorf("error reading llm.providers: %w", err)
	}
	for i := range cfg.LLM.Providers {
		cfg.LLM.Providers[i].APIKey = expandEnvVar(cfg.LLM.Providers[i].APIKey)
	}

	// A bare LLM_MODEL env var swaps the model of the primary provider (small/base/large).
	if model := viper.GetString("llm_model"); model != "" {
		if i := cfg.LLM.primaryIndex(); i >= 0 {
			cfg.LLM.Providers[i].Model = model
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}
	if cfg.Extractor.MaxLength <= 0 {
		return nil, fmt.Errorf("extractor.max_length must be positive, got %d", cfg.Extractor.MaxLength)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("scraper.timeout", "10s")
	viper.SetDefault("scraper.user_agent", "Mozilla/5.0 (compatible; WebWhisper/1.0; +https://github.com/webwhisper)")
	viper.SetDefault("scraper.max_body_bytes", 5<<20)
	viper.SetDefault("scraper.max_redirects", 5)

	viper.SetDefault("extractor.max_length", 2000)

	viper.SetDefault("chat.default_url", "https://botpenguin.com/")
	viper.SetDefault("chat.max_new_tokens", 150)
	viper.SetDefault("chat.min_new_tokens", 20)
	viper.SetDefault("chat.temperature", 0.0)
	viper.SetDefault("chat.preview_length", 500)

	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.max_sessions", 1000)
	viper.SetDefault("session.cookie_name", "webwhisper_session")
	viper.SetDefault("session.secure_cookie", false)

	viper.SetDefault("rate_limit.per_min", 30)

	viper.SetDefault("telegram.bot_token", "${TELEGRAM_BOT_TOKEN}")
	viper.SetDefault("telegram.webhook_url", "")
	viper.SetDefault("telegram.webhook_secret", "${TELEGRAM_WEBHOOK_SECRET}")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "120s")
	viper.SetDefault("llm.providers", []map[string]interface{}{
		{
			"name":     "huggingface",
			"enabled":  true,
			"priority": 1,
			"api_key":  "${HF_API_TOKEN}",
			"model":    "google/flan-t5-base",
			"timeout":  "60s",
		},
	})
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		// Unset variable: treat as no key rather than a literal "${...}".
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}
