package main

import (
	"os"

	"github.com/joho/godotenv"

	"StockScout/cmd/screener/commands"
)

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
