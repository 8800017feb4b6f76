package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rainbow-breaker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a session would use, as YAML.

The first file found wins:
  --config <path>
  ~/.rainbow/configs/rainbow.yaml
  ./configs/rainbow.yaml
and anything it leaves out keeps the built-in default.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
