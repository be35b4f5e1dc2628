package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
)

const envFileName = ".env"

// initEnvFile loads .env without overriding variables already set.
func initEnvFile() {
	if err := godotenv.Load(envFileName); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("load env file", "path", envFileName, "err", err)
	}
}
