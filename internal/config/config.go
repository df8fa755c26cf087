package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Drivers de armazenamento suportados
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

var (
	ErrInvalidStorage = errors.New("STORAGE_DRIVER deve ser memory ou postgres")
	ErrMissingSecret  = errors.New("JWT_SECRET_KEY é obrigatório em modo release")
)

// Config contém toda a configuração da aplicação
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Stripe    StripeConfig
	RateLimit RateLimitConfig
}

// AppConfig contém a configuração do servidor HTTP
type AppConfig struct {
	Port           string
	GinMode        string
	BaseURL        string // Origem usada nas URLs de retorno do checkout
	StorageDriver  string
	SeedDemoData   bool
	AllowedOrigins []string
	LogLevel       string
}

// DatabaseConfig contém as configurações para conexão com o PostgreSQL
type DatabaseConfig struct {
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxConnections  int32
	MinConnections  int32
	MaxConnLifetime time.Duration
}

// JWTConfig contém a configuração dos tokens de acesso
type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	Issuer     string
}

// StripeConfig contém as chaves e identificadores do Stripe
type StripeConfig struct {
	SecretKey      string
	PublishableKey string
	ProPriceID     string
	ProProductID   string
	Timeout        time.Duration
}

// Enabled indica se há chave secreta para criar sessões de checkout
func (s StripeConfig) Enabled() bool {
	return s.SecretKey != ""
}

// RateLimitConfig limita requisições por IP nas rotas públicas
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load carrega a configuração a partir do .env e das variáveis de ambiente
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Aviso: Arquivo .env não encontrado: %v\n", err)
	}
	return FromEnv()
}

// FromEnv lê a configuração apenas das variáveis de ambiente
func FromEnv() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			GinMode:        getEnv("GIN_MODE", "debug"),
			BaseURL:        strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:3000"), "/"),
			StorageDriver:  strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
			SeedDemoData:   getEnvBool("SEED_DEMO_DATA", true),
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Database:        getEnv("DB_NAME", "lojista_x"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  int32(getEnvInt("DB_MAX_CONNECTIONS", 10)),
			MinConnections:  int32(getEnvInt("DB_MIN_CONNECTIONS", 1)),
			MaxConnLifetime: time.Duration(getEnvInt("DB_MAX_LIFETIME", 3600)) * time.Second,
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", ""),
			Expiration: time.Duration(getEnvInt("JWT_EXPIRATION_HOURS", 24)) * time.Hour,
			Issuer:     getEnv("JWT_ISSUER", "lojista-x"),
		},
		Stripe: StripeConfig{
			SecretKey:      getEnv("STRIPE_SECRET_KEY", ""),
			PublishableKey: getEnv("STRIPE_PUBLISHABLE_KEY", ""),
			ProPriceID:     getEnv("STRIPE_PRO_PRICE_ID", ""),
			ProProductID:   getEnv("STRIPE_PRO_PRODUCT_ID", "prod_TRS7wtfsgEcyYI"),
			Timeout:        time.Duration(getEnvInt("STRIPE_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvFloat("RATE_LIMIT_RPS", 5),
			Burst:             getEnvInt("RATE_LIMIT_BURST", 10),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	switch c.App.StorageDriver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStorage, c.App.StorageDriver)
	}

	if c.JWT.SecretKey == "" {
		if c.App.GinMode == "release" {
			return ErrMissingSecret
		}
		c.JWT.SecretKey = "lojista-x-dev-secret"
	}
	return nil
}

// ConnectionString retorna a URL de conexão com o PostgreSQL
func (c DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     c.Database,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
