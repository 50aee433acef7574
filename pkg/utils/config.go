package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	Store   StoreConfig
	Limiter LimiterConfig
	CORS    CORSConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type StoreConfig struct {
	// UniqueIDs rejects appends whose id is already stored
	UniqueIDs bool
}

type LimiterConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

type CORSConfig struct {
	TrustedOrigins []string
}

// LoadConfig reads settings from the given .env file (optional) and the environment.
// Environment variables win over file values.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "movies-api")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("READ_TIMEOUT_SECONDS", 10)
	v.SetDefault("WRITE_TIMEOUT_SECONDS", 30)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("STORE_UNIQUE_IDS", false)
	v.SetDefault("LIMITER_ENABLED", false)
	v.SetDefault("LIMITER_RPS", 10)
	v.SetDefault("LIMITER_BURST", 20)
	v.SetDefault("CORS_TRUSTED_ORIGINS", "")

	if err := v.ReadInConfig(); err != nil {
		// a missing .env is fine, the environment alone can configure the service
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Server: ServerConfig{
			ReadTimeout:     time.Duration(v.GetInt("READ_TIMEOUT_SECONDS")) * time.Second,
			WriteTimeout:    time.Duration(v.GetInt("WRITE_TIMEOUT_SECONDS")) * time.Second,
			ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		Store: StoreConfig{
			UniqueIDs: v.GetBool("STORE_UNIQUE_IDS"),
		},
		Limiter: LimiterConfig{
			Enabled: v.GetBool("LIMITER_ENABLED"),
			RPS:     v.GetFloat64("LIMITER_RPS"),
			Burst:   v.GetInt("LIMITER_BURST"),
		},
		CORS: CORSConfig{
			TrustedOrigins: strings.Fields(v.GetString("CORS_TRUSTED_ORIGINS")),
		},
	}

	return config, nil
}
