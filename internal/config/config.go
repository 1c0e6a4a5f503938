package config

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the server configuration.
type Config struct {
	ServerAddress    string
	BaseURL          string
	DatabaseDSN      string
	PgMigrationsPath string
	JWTSecret        string
	TokenTTL         time.Duration
	GeoAPIURL        string
	GeoTimeout       time.Duration
	ClickBufferSize  int
	ClickWorkers     int
}

// NewConfig builds the configuration from defaults, an optional .env file,
// environment variables and command-line flags, in rising priority.
func NewConfig() *Config {
	viper.SetDefault("SERVER_ADDRESS", "localhost:8080")
	viper.SetDefault("BASE_URL", "http://localhost:8080")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("PG_MIGRATIONS_PATH", "internal/migrations")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("TOKEN_TTL_HOURS", 360) // 15 days, as the dashboard expects
	viper.SetDefault("GEO_API_URL", "https://ipapi.co")
	viper.SetDefault("GEO_TIMEOUT_MS", 3000)
	viper.SetDefault("CLICK_BUFFER_SIZE", 1000)
	viper.SetDefault("CLICK_WORKERS", 4)

	viper.AutomaticEnv()

	// Read .env if present; real environment variables still win.
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	serverAddress := flag.String("a", "", "server address")
	baseURL := flag.String("b", "", "base URL for short links")
	databaseDSN := flag.String("d", "", "PostgreSQL DSN")
	migrationsPath := flag.String("m", "", "path to SQL migrations")
	flag.Parse()

	cfg := &Config{
		ServerAddress:    viper.GetString("SERVER_ADDRESS"),
		BaseURL:          viper.GetString("BASE_URL"),
		DatabaseDSN:      viper.GetString("DATABASE_DSN"),
		PgMigrationsPath: viper.GetString("PG_MIGRATIONS_PATH"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		TokenTTL:         time.Duration(viper.GetInt("TOKEN_TTL_HOURS")) * time.Hour,
		GeoAPIURL:        viper.GetString("GEO_API_URL"),
		GeoTimeout:       time.Duration(viper.GetInt("GEO_TIMEOUT_MS")) * time.Millisecond,
		ClickBufferSize:  viper.GetInt("CLICK_BUFFER_SIZE"),
		ClickWorkers:     viper.GetInt("CLICK_WORKERS"),
	}

	// Flags override environment when set.
	if *serverAddress != "" {
		cfg.ServerAddress = *serverAddress
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *databaseDSN != "" {
		cfg.DatabaseDSN = *databaseDSN
	}
	if *migrationsPath != "" {
		cfg.PgMigrationsPath = *migrationsPath
	}

	log.Printf("config: ServerAddress=%s BaseURL=%s MigrationsPath=%s GeoAPIURL=%s",
		cfg.ServerAddress, cfg.BaseURL, cfg.PgMigrationsPath, cfg.GeoAPIURL)

	return cfg
}

// Validate reports configuration the server cannot start without.
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return fmt.Errorf("server address must not be empty")
	}
	if cfg.BaseURL == "" {
		return fmt.Errorf("base URL must not be empty")
	}
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("database DSN must not be empty")
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT secret must not be empty")
	}
	if cfg.ClickBufferSize <= 0 || cfg.ClickWorkers <= 0 {
		return fmt.Errorf("click buffer size and worker count must be positive")
	}
	return nil
}
