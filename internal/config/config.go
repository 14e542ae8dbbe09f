package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the process configuration, loaded once at startup and passed
// by value into every constructor that needs part of it.
type Config struct {
	AppPort string `mapstructure:"APP_PORT"`

	DBHost            string        `mapstructure:"DB_HOST"`
	DBPort            string        `mapstructure:"DB_PORT"`
	DBName            string        `mapstructure:"DB_NAME"`
	DBUser            string        `mapstructure:"DB_USER"`
	DBPassword        string        `mapstructure:"DB_PASSWORD"`
	DBSSLMode         string        `mapstructure:"DB_SSLMODE"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
	DBAutoMigrate     bool          `mapstructure:"DB_AUTO_MIGRATE"`

	EmailFrom     string `mapstructure:"EMAIL_FROM"`
	EmailPassword string `mapstructure:"EMAIL_PASSWORD"`
	SMTPHost      string `mapstructure:"SMTP_HOST"`
	SMTPPort      int    `mapstructure:"SMTP_PORT"`

	PayPalClientID     string        `mapstructure:"PAYPAL_CLIENT_ID"`
	PayPalClientSecret string        `mapstructure:"PAYPAL_CLIENT_SECRET"`
	PayPalAPIBase      string        `mapstructure:"PAYPAL_API_BASE"`
	PayPalReturnURL    string        `mapstructure:"PAYPAL_RETURN_URL"`
	PayPalCancelURL    string        `mapstructure:"PAYPAL_CANCEL_URL"`
	PayPalBrandName    string        `mapstructure:"PAYPAL_BRAND_NAME"`
	PayPalHTTPTimeout  time.Duration `mapstructure:"PAYPAL_HTTP_TIMEOUT"`

	RateLimitMax    int           `mapstructure:"RATE_LIMIT_MAX"`
	RateLimitWindow time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	RabbitMQURL   string `mapstructure:"RABBITMQ_URL"`
	RabbitMQQueue string `mapstructure:"RABBITMQ_QUEUE"`
}

var defaults = map[string]interface{}{
	"APP_PORT": ":8080",

	"DB_HOST":              "localhost",
	"DB_PORT":              "5432",
	"DB_NAME":              "astroleap",
	"DB_USER":              "postgres",
	"DB_PASSWORD":          "",
	"DB_SSLMODE":           "disable",
	"DB_MAX_OPEN_CONNS":    10,
	"DB_MAX_IDLE_CONNS":    5,
	"DB_CONN_MAX_LIFETIME": 30 * time.Minute,
	"DB_AUTO_MIGRATE":      true,

	"EMAIL_FROM":     "",
	"EMAIL_PASSWORD": "",
	"SMTP_HOST":      "smtp.gmail.com",
	"SMTP_PORT":      465,

	"PAYPAL_CLIENT_ID":     "",
	"PAYPAL_CLIENT_SECRET": "",
	"PAYPAL_API_BASE":      "https://api-m.sandbox.paypal.com",
	"PAYPAL_RETURN_URL":    "",
	"PAYPAL_CANCEL_URL":    "",
	"PAYPAL_BRAND_NAME":    "AstroLeap",
	"PAYPAL_HTTP_TIMEOUT":  time.Duration(0),

	"RATE_LIMIT_MAX":    100,
	"RATE_LIMIT_WINDOW": time.Minute,

	"REDIS_ADDR":     "",
	"REDIS_PASSWORD": "",
	"REDIS_DB":       0,

	"RABBITMQ_URL":   "",
	"RABBITMQ_QUEUE": "order_events",
}

// Load reads configuration from the environment, falling back to defaults.
func Load() (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}

// DatabaseDSN builds the Postgres connection string.
func (c Config) DatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}
