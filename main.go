package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/havfo/othello/internal/match"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, json or toml)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("new logger: %w", err)
	}
	defer logger.Sync()

	human, err := cfg.HumanPlayer()
	if err != nil {
		return err
	}

	m := match.New(human, logger)

	switch cfg.UI {
	case uiConsole:
		outcome, err := runConsole(m, os.Stdin, os.Stdout, cfg.ShowValidMoves)
		if err != nil {
			return fmt.Errorf("console: %w", err)
		}

		logger.Infow("finished", "session", m.ID(), "result", outcome.String())

	default:
		outcome, finished, err := runTUI(m, cfg, logger)
		if err != nil {
			return err
		}

		if finished {
			fmt.Println(outcome)
		}
	}

	return nil
}
