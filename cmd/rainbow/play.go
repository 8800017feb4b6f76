package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rainbow-breaker/internal/config"
	"github.com/vovakirdan/rainbow-breaker/internal/core"
	"github.com/vovakirdan/rainbow-breaker/internal/games/rainbow"
	"github.com/vovakirdan/rainbow-breaker/internal/platform/tui"
	termdriver "github.com/vovakirdan/rainbow-breaker/internal/platform/term"
)

var flagDriver string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a Rainbow Breaker session.

Controls:
  Mouse      - Move the paddle
  ←/→ (h/l)  - Nudge the paddle
  P/Esc      - Pause
  R          - Restart with a new seed
  Q/Ctrl+C   - Quit

Drivers:
  tui    - Bubble Tea (default)
  tcell  - tcell, direct cell painting

Examples:
  rainbow play
  rainbow play --driver tcell
  rainbow play --seed 7 --config ./my-rainbow.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDriver, "driver", "tui", "Frame driver: tui or tcell")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source)

	// Get terminal size; the bottom row holds the status line
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		FieldW:   width,
		FieldH:   (height - 1) * 2,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := rainbow.New(cfg, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runDriver(ctx, flagDriver, game, runtime, logger)
}

func runDriver(ctx context.Context, driver string, game *rainbow.Game, runtime core.RuntimeConfig, logger *log.Logger) error {
	switch driver {
	case "tui", "":
		return tui.Run(ctx, game, tui.Options{Runtime: runtime, Logger: logger})
	case "tcell":
		return termdriver.Run(ctx, game, termdriver.Options{Runtime: runtime, Logger: logger})
	default:
		return fmt.Errorf("unknown driver %q (want tui or tcell)", driver)
	}
}
