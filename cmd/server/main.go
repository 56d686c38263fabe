// path: cmd/server/main.go
package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/freewilly441/Infinite-Dimensional-Chess/internal/config"
	"github.com/freewilly441/Infinite-Dimensional-Chess/internal/game"
	"github.com/freewilly441/Infinite-Dimensional-Chess/internal/httpx"
	"github.com/freewilly441/Infinite-Dimensional-Chess/internal/logx"
)

func main() {
	log := logx.NewLogger()

	cfgPath := flag.String("config", getenv("NDCHESS_CONFIG", ""), "path to YAML config file")
	addr := flag.String("addr", getenv("NDCHESS_ADDR", ""), "listen address (overrides config)")
	dims := flag.Int("dimensions", getenvInt("NDCHESS_DIMENSIONS", 0), "starting dimension count 3-6 (overrides config)")
	fatigue := flag.String("fatigue", getenv("NDCHESS_FATIGUE", ""), "dimensional fatigue on/off (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *cfgPath).Msg("load config")
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *dims != 0 {
		cfg.Game.Dimensions = *dims
	}
	if *fatigue != "" {
		on, ok := parseBool(*fatigue)
		if !ok {
			log.Fatal().Str("value", *fatigue).Msg("invalid -fatigue value")
		}
		cfg.Game.Fatigue = on
	}

	g, err := game.NewGame(game.Options{
		Dimensions:     cfg.Game.Dimensions,
		Fatigue:        cfg.Game.Fatigue,
		RestrictToView: cfg.Game.RestrictToView,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("engine init")
	}
	log.Info().
		Int("dimensions", cfg.Game.Dimensions).
		Bool("fatigue", cfg.Game.Fatigue).
		Msg("engine ready")

	window := game.Window{Min: cfg.View.WindowMin, Max: cfg.View.WindowMax}
	srv, err := httpx.NewServer(g, window, log)
	if err != nil {
		log.Fatal().Err(err).Msg("http init")
	}
	if err := srv.Listen(cfg.Server.Addr); err != nil {
		log.Fatal().Err(err).Msg("http serve")
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, true
	case "0", "false", "f", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
