package application

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-board/internal/repository"
	"github.com/rocketscienceinc/tictactoe-board/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-board/internal/service"
	"github.com/rocketscienceinc/tictactoe-board/internal/sound"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-board/transport/rest"
	"github.com/rocketscienceinc/tictactoe-board/transport/tui"
)

type soundPlayer interface {
	Play(effect sound.Effect)
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	scoreRepo := repository.NewMemoryScoreRepository()
	if conf.Redis.Enabled {
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Password, conf.Redis.DB)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		scoreRepo = repository.NewScoreRepository(redisStorage, conf.Redis.ScoreTTL)
	}

	scoreService := service.NewScoreService(scoreRepo)
	gameMetrics := metrics.New()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	bell := tui.NewBell()

	var sounds soundPlayer = sound.Mute{}
	if conf.Sound.Enabled {
		player := sound.NewPlayer(logger, bell, conf.Sound.Gap)
		defer player.Close()

		sounds = player
	}

	players := entity.NewPlayers(conf.Players.X, conf.Players.O)
	session := usecase.NewGameSession(logger, players, scoreService, sounds, gameMetrics)

	defer func() {
		if closeErr := session.Close(context.Background()); closeErr != nil {
			log.Error("could not close game session", "error", closeErr)
		}
	}()

	if conf.Diagnostics.Addr != "" {
		diagnostics := rest.New(logger, conf.Diagnostics.Addr, gameMetrics.Registry, scoreService, session.ID())

		go func() {
			if httpErr := diagnostics.Start(ctx); httpErr != nil {
				log.Error("diagnostics server error", "error", httpErr)
			}
		}()
	}

	board, x, o, winLine := conf.Colors.Palette()
	palette := tui.Palette{Board: board, X: x, O: o, WinLine: winLine}

	log.Info("starting game session", "session_id", session.ID(), "players", players)

	if err = tui.New(logger, screen, session, palette, bell).Run(ctx); err != nil {
		return fmt.Errorf("game session failed: %w", err)
	}

	log.Info("game session finished", "session_id", session.ID())

	return nil
}
