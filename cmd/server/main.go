// Command server runs the real-time multi-room Hold'em WebSocket service:
// one HTTP listener upgrading connections to the session router, which
// locates or spawns a room actor per table id.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/holdem-rooms/internal/config"
	"github.com/lox/holdem-rooms/internal/gameid"
	"github.com/lox/holdem-rooms/internal/router"
	"github.com/lox/holdem-rooms/internal/transport"
)

var cli struct {
	Config   string `kong:"default='holdem-server.hcl',help='Path to HCL configuration file'"`
	Addr     string `kong:"help='Server bind address, overrides config'"`
	LogLevel string `kong:"help='debug|info|warn|error, overrides config'"`
}

func main() {
	kong.Parse(&cli)

	cfg, err := config.Load(cli.Config)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	if cli.Addr != "" {
		cfg.Server.Address = cli.Addr
	}
	if cli.LogLevel != "" {
		cfg.Server.LogLevel = cli.LogLevel
	}

	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rt := router.New(ctx, cfg.RoomConfig(), quartz.NewReal(), logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		sessionID := gameid.Generate()
		if err := transport.Serve(rt, sessionID, logger, w, r); err != nil {
			logger.Error().Err(err).Msg("websocket upgrade failed")
		}
	})

	httpServer := &http.Server{Addr: cfg.Server.Address, Handler: mux}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		logger.Info().Msg("shutting down")
		cancel()
		_ = httpServer.Close()
	}()

	logger.Info().Str("addr", cfg.Server.Address).Msg("holdem server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("server failed")
		os.Exit(1)
	}
}
