// rainbow is a terminal block breaker: balls smash a rainbow grid and the
// falling debris you catch with the paddle turns into more balls.
//
// Usage:
//
//	rainbow                  - Play (same as rainbow play)
//	rainbow play             - Play a session
//	rainbow config           - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom config YAML
//	--log-file <path>    - Write logs to a file (default: discard)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rainbow",
	Short: "Rainbow Breaker - smash a rainbow in your terminal",
	Long: `Rainbow Breaker is a block breaker for the terminal. Every block a ball
destroys drops a piece of debris; catch it with the paddle and it becomes
a new ball. Clear the whole rainbow to win.

Available commands:
  play     - Play a session (default)
  config   - Print the effective configuration

Examples:
  rainbow
  rainbow play --driver tcell
  rainbow --seed 42 --fps 30
  rainbow config > ~/.rainbow/configs/rainbow.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
