package main

import (
	"os"

	"github.com/davidgmz15/tagsense/cmd"
	"github.com/davidgmz15/tagsense/internal/logger"
	"github.com/davidgmz15/tagsense/internal/store"
)

func main() {
	if err := logger.Init(os.Getenv("TAGSENSE_LOG_FILE"), os.Getenv("TAGSENSE_LOG_LEVEL")); err != nil {
		logger.Error("failed to initialize logger: %v", err)
	}

	db, err := store.OpenDefault()
	if err != nil {
		logger.Warn("run database unavailable: %v", err)
		db = nil
	}

	if err := cmd.Execute(db); err != nil {
		os.Exit(1)
	}
}
