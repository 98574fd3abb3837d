package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	DbConnectAttempts string
	DbAutoMigrate     bool

	JWTSecret      string
	AccessTokenTTL string

	AdminUsername     string
	AdminPasswordHash string

	Log      string
	LogLevel string
	LogDir   string
	Env      string // dev|prod

	RedisAddr     string
	RedisPassword string
	RedisDB       string
	CacheTTL      string
	CacheSize     string

	CORSOrigins        []string
	AdminCommentsLimit string
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует — чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port:      def(os.Getenv("PORT"), "8080"),
		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),

		DbConnectAttempts: def(os.Getenv("DB_CONNECT_ATTEMPTS"), "5"),
		DbAutoMigrate:     strings.EqualFold(def(os.Getenv("DB_AUTO_MIGRATE"), "true"), "true"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessTokenTTL: def(os.Getenv("ACCESS_TOKEN_EXPIRY"), "12h"),

		AdminUsername:     def(os.Getenv("ADMIN_USERNAME"), "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		LogDir:   def(os.Getenv("LOG_DIR"), "logs"),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       def(os.Getenv("REDIS_DB"), "0"),
		CacheTTL:      def(os.Getenv("CACHE_TTL"), "5m"),
		CacheSize:     def(os.Getenv("CACHE_SIZE"), "500"),

		CORSOrigins:        splitCSV(def(os.Getenv("CORS_ORIGINS"), "*")),
		AdminCommentsLimit: def(os.Getenv("ADMIN_COMMENTS_LIMIT"), "50"),
	}

	return cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	// Критичные: БД
	if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
		return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		warnings = append(warnings, "JWT_SECRET is empty, admin endpoints will reject every token")
	}
	if strings.TrimSpace(c.AdminPasswordHash) == "" {
		warnings = append(warnings, "ADMIN_PASSWORD_HASH is empty, admin login is disabled")
	}
	if _, e := time.ParseDuration(c.CacheTTL); e != nil {
		warnings = append(warnings, "CACHE_TTL is invalid, using 5m")
	}
	if c.RedisAddr == "" {
		warnings = append(warnings, "REDIS_ADDR is not set, using in-process cache")
	}

	return warnings, nil
}

// GetDSN — полная DSN (с паролем)
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe — DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

func (c *Config) AccessTTL() time.Duration {
	return durationOr(c.AccessTokenTTL, 12*time.Hour)
}

func (c *Config) CacheTTLDuration() time.Duration {
	return durationOr(c.CacheTTL, 5*time.Minute)
}

func (c *Config) CacheSizeInt() int { return intOr(c.CacheSize, 500) }
func (c *Config) RedisDBInt() int { return intOr(c.RedisDB, 0) }
func (c *Config) ConnectAttempts() uint { return uint(intOr(c.DbConnectAttempts, 5)) }
func (c *Config) AdminCommentsLimitInt() int { return intOr(c.AdminCommentsLimit, 50) }

func durationOr(raw string, d time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return d
	}
	return v
}

func intOr(raw string, d int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return d
	}
	return v
}

func splitCSV(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
