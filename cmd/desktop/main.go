package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/nightmare/internal/audio"
	"github.com/tomz197/nightmare/internal/config"
	"github.com/tomz197/nightmare/internal/desktop"
	"github.com/tomz197/nightmare/internal/loop"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "nightmare",
	})

	settings, err := config.LoadSettings(config.DefaultSettingsPath())
	if err != nil {
		logger.Warn("using default settings", "err", err)
	}

	music := audio.Open(settings, logger)
	defer music.Close()

	err = desktop.Run(loop.GameOptions{
		Settings: settings,
		Audio:    music,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("game error", "err", err)
		music.Close()
		os.Exit(1)
	}
}
