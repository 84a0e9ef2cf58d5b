package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Run modes understood by the application.
const (
	ModePlay     = "play"
	ModeSimulate = "simulate"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env-default:"info"`
	Mode       string     `yaml:"mode" env-default:"play"`
	Game       Game       `yaml:"game"`
	Simulation Simulation `yaml:"simulation"`
}

type Game struct {
	GridSize int `yaml:"grid-size" env-default:"3"`
}

type Simulation struct {
	Games int   `yaml:"games" env-default:"100"`
	Seed  int64 `yaml:"seed" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
