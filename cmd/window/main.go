// Command window plays the shooter in a desktop window with the shader post-processing pass.
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/display"
	"github.com/tomz197/spaceshooter/internal/loop"
	"github.com/tomz197/spaceshooter/internal/random"
)

func main() {
	configPath := flag.String("config", "", "path to YAML settings (default $"+config.EnvConfigPath+")")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "shooter"})

	settings, err := config.Resolve(*configPath)
	if err != nil {
		logger.Fatal("failed to load settings", "err", err)
	}
	if level, err := log.ParseLevel(settings.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	var pass display.Pass = display.Passthrough{}
	if settings.PostFX.Enabled {
		shader, err := display.NewShaderPass()
		if err != nil {
			logger.Fatal("post-processing unavailable", "err", err)
		}
		pass = shader
	}

	session := loop.NewSession(settings, random.New(settings.Seed), logger)
	if err := display.Run(session, pass); err != nil {
		logger.Fatal("game error", "err", err)
	}

	st := session.State()
	logger.Info("game over", "score", st.Score, "reason", st.Reason, "ticks", st.Ticks)
}
