package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// WooCommerceConfig holds the remote catalog credentials.
type WooCommerceConfig struct {
	URL            string
	ConsumerKey    string
	ConsumerSecret string
	Timeout        time.Duration
}

// PrinterConfig selects the receipt printer.
type PrinterConfig struct {
	Type    string
	USBPath string
	Address string
}

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	StoreDriver string
	SQLitePath  string
	DatabaseURL string
	RedisURL    string

	WooCommerce WooCommerceConfig

	LoginEmail     string
	LoginPassword  string
	SessionSecret  string
	LoginRateLimit string

	CORSAllowedOrigins []string

	Printer      PrinterConfig
	StoreName    string
	ReceiptWidth int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", StoreSQLite)
	v.SetDefault("SQLITE_PATH", "pos.db")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("WC_URL", "")
	v.SetDefault("WC_CONSUMER_KEY", "")
	v.SetDefault("WC_CONSUMER_SECRET", "")
	v.SetDefault("WC_TIMEOUT", "15s")
	v.SetDefault("LOGIN_EMAIL", "")
	v.SetDefault("LOGIN_PASSWORD", "")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("PRINTER_TYPE", "none")
	v.SetDefault("PRINTER_USB_PATH", "")
	v.SetDefault("PRINTER_ADDRESS", "")
	v.SetDefault("STORE_NAME", "POS")
	v.SetDefault("RECEIPT_WIDTH", 32)
	v.AutomaticEnv()

	cfg := &Config{
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		StoreDriver:    strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		SQLitePath:     v.GetString("SQLITE_PATH"),
		DatabaseURL:    v.GetString("PGSQL_URL"),
		RedisURL:       v.GetString("REDIS_URL"),
		LoginEmail:     v.GetString("LOGIN_EMAIL"),
		LoginPassword:  v.GetString("LOGIN_PASSWORD"),
		SessionSecret:  v.GetString("SESSION_SECRET"),
		LoginRateLimit: v.GetString("LOGIN_RATE_LIMIT"),
		StoreName:      v.GetString("STORE_NAME"),
		ReceiptWidth:   v.GetInt("RECEIPT_WIDTH"),
		WooCommerce: WooCommerceConfig{
			URL:            v.GetString("WC_URL"),
			ConsumerKey:    v.GetString("WC_CONSUMER_KEY"),
			ConsumerSecret: v.GetString("WC_CONSUMER_SECRET"),
		},
		Printer: PrinterConfig{
			Type:    strings.ToLower(strings.TrimSpace(v.GetString("PRINTER_TYPE"))),
			USBPath: v.GetString("PRINTER_USB_PATH"),
			Address: v.GetString("PRINTER_ADDRESS"),
		},
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", levelStr)
	}

	timeoutStr := v.GetString("WC_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 15 * time.Second
		log.Printf("Warning: Invalid value for WC_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.WooCommerce.Timeout = timeout

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if o := strings.TrimSpace(origin); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	if cfg.ReceiptWidth <= 0 {
		cfg.ReceiptWidth = 32
	}

	if cfg.WooCommerce.URL == "" {
		log.Println("Warning: WC_URL not set. Catalog endpoints will fail.")
	}
	if cfg.LoginEmail == "" || cfg.LoginPassword == "" {
		log.Println("Warning: LOGIN_EMAIL or LOGIN_PASSWORD not set. Login is disabled.")
	}
	if cfg.SessionSecret == "" {
		log.Println("Warning: SESSION_SECRET not set. A random secret is used and sessions end on restart.")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreMemory:
	case StoreSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the %s store", StoreSQLite)
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required for the %s store", StorePostgres)
		}
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for the %s store", StoreRedis)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}
