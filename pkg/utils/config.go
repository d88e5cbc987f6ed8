package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

const minSessionSecretLen = 32

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
}

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	Secret      string
	ExpiryHours int
	CookieName  string
}

// IsProduction controls the Secure flag on the session cookie
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("SESSION_COOKIE_NAME", "session")
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Env:     viper.GetString("APP_ENV"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			Secret:      viper.GetString("SESSION_SECRET"),
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
			CookieName:  viper.GetString("SESSION_COOKIE_NAME"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects configurations the server must not start with.
// A short signing secret is a fatal condition, not a per-request error.
func (c *Config) Validate() error {
	if len(c.Session.Secret) < minSessionSecretLen {
		return fmt.Errorf("SESSION_SECRET must be set and at least %d bytes long", minSessionSecretLen)
	}
	return nil
}
