package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config carries everything the console needs to talk to its collaborators.
// All of it comes from the environment (POOJA_ prefix) or an optional
// config.yaml next to the binary.
type Config struct {
	BackendBaseURL    string
	StorageBaseURL    string
	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string
	TokenPath         string
	RefreshSpec       string
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("pooja")
	v.AutomaticEnv()

	v.SetDefault("backend_base_url", "http://localhost:8080")
	v.SetDefault("storage_base_url", "https://rituals-basket.s3.ap-south-1.amazonaws.com")
	v.SetDefault("admin_username", "admin")
	v.SetDefault("token_path", ".pooja-admin/token")
	v.SetDefault("refresh_spec", "@every 2m")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	cfg := &Config{
		BackendBaseURL:    v.GetString("backend_base_url"),
		StorageBaseURL:    v.GetString("storage_base_url"),
		AdminUsername:     v.GetString("admin_username"),
		AdminPasswordHash: v.GetString("admin_password_hash"),
		JWTSecret:         v.GetString("jwt_secret"),
		TokenPath:         v.GetString("token_path"),
		RefreshSpec:       v.GetString("refresh_spec"),
	}
	if cfg.AdminPasswordHash == "" {
		return nil, errors.New("admin_password_hash must be configured")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt_secret must be configured")
	}
	return cfg, nil
}
