package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
	Chat     Chat   `yaml:"chat"`
}

type Game struct {
	Strategy string `yaml:"strategy" env:"GAME_STRATEGY" env-default:"unbeatable"`
}

type Chat struct {
	BotName string `yaml:"bot-name" env:"CHAT_BOT_NAME" env-default:"Chatbot"`
}

// MustLoad - load all configurations from the config file, or from the
// environment alone when no file exists at path.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
