package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/HexTerritory/internal/config"
	"github.com/mitchelldurbincs/HexTerritory/internal/game"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/events"
	"github.com/mitchelldurbincs/HexTerritory/internal/game/events/subscribers"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay, loads config.<env>.yaml when set")
	seed := flag.Int64("seed", 0, "Game seed (0 to use config default, then the clock)")
	turns := flag.Int("turns", -1, "Rounds to play (-1 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	color := flag.Bool("color", false, "Render the board with ANSI colors")
	watch := flag.Bool("watch", false, "Reload the log level when the config file changes")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if *env != "" {
		if err := config.LoadEnvironmentConfig(*env); err != nil {
			log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
		}
	}
	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *seed == 0 {
		*seed = cfg.Demo.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *turns == -1 {
		*turns = cfg.Demo.Turns
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}

	setupLogging(*logLevel, cfg.Logging.Format)

	if *watch {
		config.WatchConfig(func(e fsnotify.Event, updated *config.Config) {
			setupLogging(updated.Logging.Level, updated.Logging.Format)
			log.Info().Str("file", e.Name).Str("level", updated.Logging.Level).Msg("Config reloaded")
		}, func(err error) {
			log.Warn().Err(err).Msg("Ignoring invalid config change")
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *seed, *turns, *color); err != nil {
		log.Fatal().Err(err).Msg("Demo failed")
	}
}

func run(ctx context.Context, seed int64, rounds int, color bool) error {
	log.Info().Int64("seed", seed).Int("rounds", rounds).Msg("Starting hex territory demo")
	rng := rand.New(rand.NewSource(seed))

	gameCfg := game.DefaultGameConfig()
	gameCfg.Rng = rng
	gameCfg.Logger = log.Logger
	gameCfg.GameID = fmt.Sprintf("demo_%d", seed)
	gameCfg.EventBus = events.NewEventBus(log.Logger)
	gameCfg.EventBus.Subscribe(subscribers.NewLoggerSubscriber("demo_logger", log.Logger, zerolog.DebugLevel))

	engine, err := game.NewEngine(ctx, gameCfg)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	render := engine.String
	if color {
		render = engine.ColorString
	}
	fmt.Printf("Game seed: %d\nInitial board:\n%s\n%s\n", seed, render(), engine.Summary())

	tp := game.NewTurnProcessor(engine)
	for round := 1; round <= rounds && !engine.IsGameOver(); round++ {
		for team := 0; team < engine.Teams() && !engine.IsGameOver(); team++ {
			actions := game.RandomActions(engine, team, rng)
			result, err := tp.ProcessTurn(ctx, team, actions)
			if err != nil {
				return fmt.Errorf("round %d team %d: %w", round, team, err)
			}
			log.Debug().
				Int("round", round).
				Int("team", team).
				Int("applied", result.Applied).
				Int("captures", result.Captures).
				Msg("Turn played")
		}
		if round%10 == 0 {
			fmt.Printf("After round %d:\n%s\n", round, render())
		}
	}

	if engine.IsGameOver() {
		if winner := engine.GetWinner(); winner >= 0 {
			fmt.Printf("Game over after %d turns: team %d wins\n", engine.Turn(), winner)
		} else {
			fmt.Printf("Game over after %d turns: no winner\n", engine.Turn())
		}
	} else {
		fmt.Printf("Game reached maximum rounds (%d)\n", rounds)
	}

	fmt.Printf("\nFinal board:\n%s\n%s", render(), engine.Summary())
	for team, s := range engine.Stats().All() {
		fmt.Printf("team %d: %d captures, %d tiles lost, %d merges, %d splits, %d gold sacked, %d soldiers starved\n",
			team, s.Captures, s.TilesLost, s.Merges, s.Splits, s.GoldLost, s.SoldiersStarved)
	}
	return nil
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		// JSON output for log shipping
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
