package main

import (
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/acquiretoscale/website"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	var cfg website.Config
	if err := env.Parse(&cfg); err != nil {
		log.Error("parse environment", "err", err)
		os.Exit(1)
	}

	app := website.New(cfg, log)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}
