package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvFile           = ".env"
	DefaultConfigFile = "config.yaml"
)

type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	LLM     LLMConfig     `yaml:"llm"`
	Planner PlannerConfig `yaml:"planner"`
	Mail    MailConfig    `yaml:"mail"`
}

type ServerConfig struct {
	Port               string   `yaml:"port"`
	GinMode            string   `yaml:"gin_mode"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LLMConfig selects and tunes the generative providers. API keys only ever come from the environment.
type LLMConfig struct {
	PlannerProvider   string        `yaml:"planner_provider"`
	ChatProvider      string        `yaml:"chat_provider"`
	GeminiAPIKey      string        `yaml:"-"`
	GeminiModel       string        `yaml:"gemini_model"`
	OpenAIAPIKey      string        `yaml:"-"`
	OpenAIModel       string        `yaml:"openai_model"`
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond int           `yaml:"requests_per_second"`
}

type PlannerConfig struct {
	CacheTTL         time.Duration  `yaml:"cache_ttl"`
	BudgetRates      map[string]int `yaml:"budget_rates"`
	DefaultDailyRate int            `yaml:"default_daily_rate"`
	Currency         string         `yaml:"currency"`
	MaxTripDays      int            `yaml:"max_trip_days"`
}

type MailConfig struct {
	Backend    string   `yaml:"backend"` // console | smtp
	Host       string   `yaml:"host"`
	Port       int      `yaml:"port"`
	Username   string   `yaml:"username"`
	Password   string   `yaml:"-"`
	From       string   `yaml:"from"`
	FromName   string   `yaml:"from_name"`
	UseSSL     bool     `yaml:"use_ssl"`
	RequireTLS bool     `yaml:"require_tls"`
	Recipients []string `yaml:"recipients"`
}

func Default() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    "8000",
			GinMode: "release",
		},
		Logging: LoggingConfig{Level: "info"},
		LLM: LLMConfig{
			PlannerProvider:   "gemini",
			ChatProvider:      "openai",
			GeminiModel:       "gemini-2.0-flash",
			OpenAIModel:       "gpt-4o-mini",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 5,
		},
		Planner: PlannerConfig{
			CacheTTL: time.Hour,
			BudgetRates: map[string]int{
				"budget": 3000,
				"middle": 10000,
				"rich":   20000,
			},
			DefaultDailyRate: 5000,
			Currency:         "INR",
			MaxTripDays:      30,
		},
		Mail: MailConfig{
			Backend:    "console",
			Host:       "smtp.gmail.com",
			Port:       587,
			From:       "no-reply@ait.local",
			FromName:   "AI Tourism",
			RequireTLS: true,
			Recipients: []string{"saivardhanuppala7@gmail.com"},
		},
	}
}

// Load reads .env (if present), then CONFIG_FILE or ./config.yaml (if present), then applies
// environment overrides on top of the defaults.
func Load() (*AppConfig, error) {
	_ = godotenv.Load(EnvFile)

	cfg := Default()

	path := getEnvWithDefault("CONFIG_FILE", DefaultConfigFile)
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *AppConfig) applyEnv() error {
	c.Server.Port = getEnvWithDefault("PORT", c.Server.Port)
	c.Server.GinMode = getEnvWithDefault("GIN_MODE", c.Server.GinMode)
	c.Server.CORSAllowedOrigins = getEnvList("CORS_ALLOWED_ORIGINS", c.Server.CORSAllowedOrigins)
	c.Logging.Level = getEnvWithDefault("LOG_LEVEL", c.Logging.Level)

	c.LLM.PlannerProvider = strings.ToLower(getEnvWithDefault("PLANNER_PROVIDER", c.LLM.PlannerProvider))
	c.LLM.ChatProvider = strings.ToLower(getEnvWithDefault("CHAT_PROVIDER", c.LLM.ChatProvider))
	c.LLM.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	c.LLM.GeminiModel = getEnvWithDefault("GEMINI_MODEL", c.LLM.GeminiModel)
	c.LLM.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	c.LLM.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", c.LLM.OpenAIModel)

	var err error
	if c.LLM.Timeout, err = getEnvDuration("LLM_TIMEOUT", c.LLM.Timeout); err != nil {
		return err
	}
	if c.LLM.RequestsPerSecond, err = getEnvInt("LLM_RPS", c.LLM.RequestsPerSecond); err != nil {
		return err
	}
	if c.Planner.CacheTTL, err = getEnvDuration("PLANNER_CACHE_TTL", c.Planner.CacheTTL); err != nil {
		return err
	}
	if c.Planner.MaxTripDays, err = getEnvInt("PLANNER_MAX_TRIP_DAYS", c.Planner.MaxTripDays); err != nil {
		return err
	}

	c.Mail.Backend = strings.ToLower(getEnvWithDefault("EMAIL_BACKEND", c.Mail.Backend))
	c.Mail.Host = getEnvWithDefault("SMTP_HOST", c.Mail.Host)
	if c.Mail.Port, err = getEnvInt("SMTP_PORT", c.Mail.Port); err != nil {
		return err
	}
	c.Mail.Username = getEnvWithDefault("SMTP_USERNAME", c.Mail.Username)
	c.Mail.Password = os.Getenv("SMTP_PASSWORD")
	c.Mail.From = getEnvWithDefault("SMTP_FROM", c.Mail.From)
	c.Mail.Recipients = getEnvList("CONTACT_RECIPIENTS", c.Mail.Recipients)
	return nil
}

func (c *AppConfig) Validate() error {
	for _, p := range []string{c.LLM.PlannerProvider, c.LLM.ChatProvider} {
		if p != "gemini" && p != "openai" {
			return fmt.Errorf("unsupported LLM provider %q, use 'gemini' or 'openai'", p)
		}
	}
	if c.Mail.Backend != "console" && c.Mail.Backend != "smtp" {
		return fmt.Errorf("unsupported email backend %q, use 'console' or 'smtp'", c.Mail.Backend)
	}
	if len(c.Mail.Recipients) == 0 {
		return errors.New("at least one contact recipient is required")
	}
	if c.Planner.DefaultDailyRate <= 0 {
		return errors.New("planner default_daily_rate must be positive")
	}
	if c.Planner.MaxTripDays <= 0 {
		return errors.New("planner max_trip_days must be positive")
	}
	return nil
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
