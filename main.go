package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/fontcheck/fontcheck/internal/adapters/inbound/cli"
)

func main() {
	// Optional .env overrides (FONTAINE_BIN etc.); absence is fine.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
