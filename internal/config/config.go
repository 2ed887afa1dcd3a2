package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"campaign-server/internal/models"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// InsecureSessionSecret - значение секрета по умолчанию. Использовать его можно только локально.
const InsecureSessionSecret = "change-me"

// Config содержит конфигурацию сервиса
type Config struct {
	Env         string `envconfig:"ENV" default:"development"`
	ServerPort  string `envconfig:"SERVER_PORT" default:"5000"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// Настройки сессии
	SessionSecret       string `envconfig:"SESSION_SECRET" default:"change-me"`
	SessionCookieSecure bool   `envconfig:"SESSION_COOKIE_SECURE" default:"false"`

	// Настройки Hailuo (MiniMax через Novita). Пустой ключ - нормальное состояние.
	HailuoAPIKey       string        `envconfig:"HAILUO_API_KEY"`
	HailuoBaseURL      string        `envconfig:"HAILUO_BASE_URL" default:"https://api.novita.ai"`
	HailuoTimeout      time.Duration `envconfig:"HAILUO_TIMEOUT" default:"30s"`
	HailuoPollAttempts int           `envconfig:"HAILUO_POLL_ATTEMPTS" default:"60"`
	HailuoPollInterval time.Duration `envconfig:"HAILUO_POLL_INTERVAL" default:"1s"`

	// Необязательный YAML-файл с учетными записями; без него используются demo и admin
	CredentialsFile string `envconfig:"CREDENTIALS_FILE"`

	Credentials []models.Credential `ignored:"true"`
}

// credentialsFile - формат YAML-файла с учетными записями.
type credentialsFile struct {
	Users []models.Credential `yaml:"users"`
}

// LoadConfig загружает конфигурацию из .env, переменных окружения и секретов Docker.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Секреты Docker имеют приоритет над переменными окружения
	if secret, err := ReadSecret("session_secret"); err == nil {
		cfg.SessionSecret = secret
	}
	if apiKey, err := ReadSecret("hailuo_api_key"); err == nil {
		cfg.HailuoAPIKey = apiKey
	}

	cfg.Credentials = models.DefaultCredentials()
	if cfg.CredentialsFile != "" {
		creds, err := loadCredentialsFile(cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		cfg.Credentials = creds
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет согласованность значений.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return models.ErrEmptySecret
	}
	if c.IsProduction() && c.UsesInsecureSecret() {
		return errors.New("SESSION_SECRET must be changed in production")
	}
	if c.HailuoPollAttempts <= 0 {
		return fmt.Errorf("HAILUO_POLL_ATTEMPTS must be positive, got %d", c.HailuoPollAttempts)
	}
	if c.HailuoPollInterval < 0 {
		return fmt.Errorf("HAILUO_POLL_INTERVAL must not be negative, got %s", c.HailuoPollInterval)
	}
	return nil
}

// IsProduction сообщает, запущен ли сервис в production-окружении.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsesInsecureSecret сообщает, что секрет сессии остался значением по умолчанию.
func (c *Config) UsesInsecureSecret() bool {
	return c.SessionSecret == InsecureSessionSecret
}

// LogSummary пишет загруженную конфигурацию в лог (без секретов).
func (c *Config) LogSummary(logger *zap.Logger) {
	if c.UsesInsecureSecret() {
		logger.Warn("SESSION_SECRET не задан, используется небезопасное значение по умолчанию. Не используйте его в production!")
	}
	usernames := make([]string, 0, len(c.Credentials))
	for _, cred := range c.Credentials {
		usernames = append(usernames, cred.Username)
	}
	logger.Info("Конфигурация загружена",
		zap.String("env", c.Env),
		zap.String("port", c.ServerPort),
		zap.String("logLevel", c.LogLevel),
		zap.Strings("corsAllowedOrigins", c.CORSAllowedOrigins),
		zap.Bool("sessionCookieSecure", c.SessionCookieSecure),
		zap.Bool("hailuoAPIKeyLoaded", c.HailuoAPIKey != ""),
		zap.String("hailuoBaseURL", c.HailuoBaseURL),
		zap.Duration("hailuoTimeout", c.HailuoTimeout),
		zap.Int("hailuoPollAttempts", c.HailuoPollAttempts),
		zap.Duration("hailuoPollInterval", c.HailuoPollInterval),
		zap.String("credentialsFile", c.CredentialsFile),
		zap.Strings("users", usernames),
	)
}

func loadCredentialsFile(path string) ([]models.Credential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл учетных записей %s: %w", path, err)
	}
	var file credentialsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("некорректный формат файла учетных записей %s: %w", path, err)
	}
	if len(file.Users) == 0 {
		return nil, fmt.Errorf("файл учетных записей %s не содержит пользователей", path)
	}
	for i, u := range file.Users {
		if u.Username == "" {
			return nil, fmt.Errorf("пользователь #%d в %s без username", i+1, path)
		}
	}
	return file.Users, nil
}
