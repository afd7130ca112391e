package rangecat

import (
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logging"
)

const (
	StrategyChain = "chain"
	StrategyMulti = "multi"
)

// Config is the environment based configuration of rangecat.
type Config struct {
	LogLevel  logging.Level `env:"RANGECAT_LOG_LEVEL" default:"info"`
	Separator string        `env:"RANGECAT_SEPARATOR" default:"\n"`
	Strategy  string        `env:"RANGECAT_STRATEGY" default:"chain" enum:"chain,multi,"`
	// RootPath jails the file sources into a directory.
	RootPath string `env:"RANGECAT_ROOT"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func defaultConfig() Config {
	return Config{
		LogLevel:  logging.LevelInfo,
		Separator: "\n",
		Strategy:  StrategyChain,
	}
}
