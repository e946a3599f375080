package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/nightmare/internal/audio"
	"github.com/tomz197/nightmare/internal/config"
	"github.com/tomz197/nightmare/internal/loop"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// run plays one game on the given terminal. Everything it opens is closed
// before it returns, so main can exit right after.
func run(stdin *os.File, stdout io.Writer) error {
	logger, closeLog := newLogger()
	defer closeLog()

	settings, err := config.LoadSettings(config.DefaultSettingsPath())
	if err != nil {
		logger.Warn("using default settings", "err", err)
	}

	fd := int(stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Error("failed to enable raw mode", "err", err)
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	music := audio.Open(settings, logger)
	defer music.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = loop.Run(ctx, bufio.NewReader(stdin), stdout, loop.Options{
		Settings: settings,
		Audio:    music,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("game error", "err", err)
		return err
	}
	return nil
}

// newLogger logs to the file named by NIGHTMARE_LOG. The terminal is the game
// screen, so without it logs are discarded.
func newLogger() (*log.Logger, func()) {
	path := config.GetEnv("NIGHTMARE_LOG", "")
	if path == "" {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }
}
