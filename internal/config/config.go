package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	API    APIConfig
	Stub   StubConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type APIConfig struct {
	// BaseURL is where the catalog and order endpoints live.
	BaseURL string
	// CDNURL prefixes product image references for the views.
	CDNURL string
}

type StubConfig struct {
	Port string
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("API_URL", "https://larek-api.nomoreparties.co/api/weblarek")
	viper.SetDefault("CDN_URL", "https://larek-api.nomoreparties.co/content/weblarek")
	viper.SetDefault("STUB_PORT", "9090")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		API: APIConfig{
			BaseURL: viper.GetString("API_URL"),
			CDNURL:  viper.GetString("CDN_URL"),
		},
		Stub: StubConfig{
			Port: viper.GetString("STUB_PORT"),
		},
	}
}
