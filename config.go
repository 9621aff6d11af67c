package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/havfo/othello/internal/othello"
)

const (
	uiTerminal = "tui"
	uiConsole  = "console"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings read from the environment and an optional file.
type Config struct {
	Human          string `mapstructure:"human"`
	UI             string `mapstructure:"ui"`
	ShowValidMoves bool   `mapstructure:"show_valid_moves"`
	LogFile        string `mapstructure:"log_file"`
	LogLevel       string `mapstructure:"log_level"`
}

// LoadConfig reads OTHELLO_* environment variables on top of the file at
// path (if any) on top of the defaults.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("human", "black")
	v.SetDefault("ui", uiTerminal)
	v.SetDefault("show_valid_moves", true)
	v.SetDefault("log_file", "othello.log")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("othello")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if _, err := c.HumanPlayer(); err != nil {
		return err
	}

	switch c.UI {
	case uiTerminal, uiConsole:
	default:
		return fmt.Errorf("%w: ui %q, want %q or %q", ErrInvalidConfig, c.UI, uiTerminal, uiConsole)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}

	if c.LogFile == "" {
		return fmt.Errorf("%w: log_file is empty", ErrInvalidConfig)
	}

	return nil
}

// HumanPlayer returns the side played from the keyboard.
func (c Config) HumanPlayer() (othello.Player, error) {
	switch strings.ToLower(c.Human) {
	case "black":
		return othello.PlayerBlack, nil
	case "white":
		return othello.PlayerWhite, nil
	}

	return 0, fmt.Errorf("%w: human %q, want black or white", ErrInvalidConfig, c.Human)
}
