package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TurfService/pkg/logger"
)

type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "slotplan",
		Short: "Slot plan generator for turf owners",
		Long: `slotplan builds weekly slot plans from a YAML file without touching the database.

Examples:
  # Empty plan with default duration, price and buffer
  slotplan init --turf 8d5f2c1e-4b7a-4f0e-9a51-0d3c2b1a9e77 -o plan.yaml

  # Payloads that would be saved, one per (day, time range)
  slotplan preview -f plan.yaml

  # Copy Monday into Tuesday and store the result back into the file
  slotplan copy-day -f plan.yaml --to Tuesday --write
`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level for diagnostics on stderr")

	cmd.AddCommand(
		newInitCmd(opts),
		newPreviewCmd(opts),
		newCopyDayCmd(opts),
	)

	return cmd
}

// newLogger диагностика идет в stderr, чтобы stdout оставался чистым JSON/YAML
func (o *rootOptions) newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	return logger.NewWithWriter(cmd.ErrOrStderr(), o.logLevel)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
