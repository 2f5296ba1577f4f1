// Command game plays the shooter in a truecolor terminal.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/draw"
	"github.com/tomz197/spaceshooter/internal/input"
	"github.com/tomz197/spaceshooter/internal/loop"
	"github.com/tomz197/spaceshooter/internal/postfx"
	"github.com/tomz197/spaceshooter/internal/random"
)

func main() {
	configPath := flag.String("config", "", "path to YAML settings (default $"+config.EnvConfigPath+")")
	logPath := flag.String("log", "", "write session log to this file while playing")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "shooter"})

	if err := run(*configPath, *logPath, logger); err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string, logger *log.Logger) error {
	settings, err := config.Resolve(configPath)
	if err != nil {
		return err
	}
	if level, err := log.ParseLevel(settings.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// The screen belongs to the game while playing, so session logs go to a file or nowhere.
	var sessionOut io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		sessionOut = f
	}
	sessionLog := log.NewWithOptions(sessionOut, log.Options{ReportTimestamp: true, Prefix: "shooter"})
	sessionLog.SetLevel(logger.GetLevel())

	var filter postfx.Filter = postfx.Passthrough{}
	if settings.PostFX.Enabled {
		filter = postfx.NewVignette()
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := loop.NewSession(settings, random.New(settings.Seed), sessionLog)
	stream := input.StartStream(bufio.NewReader(os.Stdin))
	screen := draw.NewTerminal(os.Stdout, draw.DefaultTermSizeFunc)

	draw.HideCursor(os.Stdout)
	draw.ClearScreen(os.Stdout)
	runErr := loop.Run(ctx, session, stream, screen, loop.RunOptions{Filter: filter})
	draw.ClearScreen(os.Stdout)
	draw.ShowCursor(os.Stdout)
	_ = term.Restore(fd, oldState)

	if runErr != nil {
		return runErr
	}

	st := session.State()
	logger.Info("game over", "score", st.Score, "reason", st.Reason, "ticks", st.Ticks, "session", st.ID)
	return nil
}
