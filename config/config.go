package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	API struct {
		BaseURL        string `mapstructure:"base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"api"`
	Session struct {
		File string `mapstructure:"file"`
	} `mapstructure:"session"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("api.base_url", "http://localhost:8000")
	// 0 means no client-side timeout: a hanging call waits until it resolves.
	viper.SetDefault("api.timeout_seconds", 0)
	viper.SetDefault("session.file", defaultSessionFile())

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional for the CLI; defaults and environment
		// variables cover every key. Anything else is a real failure.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			log.Fatalf("Error reading config file, %s", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bank-session"
	}
	return filepath.Join(home, ".bank-cli", "session")
}
