package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"portfolio.dev/internal/cli"
	"portfolio.dev/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Environment, with .env already applied by godotenv
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := cfg.NewLogger()

	app := &cli.App{
		Config:          cfg,
		Content:         cfg.Content(),
		DefaultLanguage: cfg.DefaultLanguage(),
		Logger:          logger,
	}

	return cli.NewRootCmd(app).Execute()
}
