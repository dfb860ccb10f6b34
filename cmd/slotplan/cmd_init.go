package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	"github.com/m04kA/SMC-TurfService/internal/service/planner"
	planModels "github.com/m04kA/SMC-TurfService/internal/service/planner/models"
)

type initOptions struct {
	turfID    string
	sportID   string
	startDate string
	endDate   string
	output    string
	defaults  planner.Defaults
}

func newInitCmd(_ *rootOptions) *cobra.Command {
	opts := &initOptions{defaults: planner.DefaultValues()}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Print an empty plan with all seven days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.turfID, "turf", "", "Turf ID")
	cmd.Flags().StringVar(&opts.sportID, "sport", "", "Sport ID")
	cmd.Flags().StringVar(&opts.startDate, "start-date", "", "First date of the plan (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.endDate, "end-date", "", "Last date of the plan (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.defaults.BufferMinutes, "buffer", opts.defaults.BufferMinutes, "Buffer between slots, minutes")
	cmd.Flags().IntVar(&opts.defaults.SlotDurationMinutes, "duration", opts.defaults.SlotDurationMinutes, "Slot duration for every day, minutes")
	cmd.Flags().Float64Var(&opts.defaults.Price, "price", opts.defaults.Price, "Slot price for every day")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the plan to a file instead of stdout")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	turfID, err := parseOptionalUUID("turf", opts.turfID)
	if err != nil {
		return err
	}
	sportID, err := parseOptionalUUID("sport", opts.sportID)
	if err != nil {
		return err
	}
	startDate, err := parseOptionalDate("start-date", opts.startDate)
	if err != nil {
		return err
	}
	endDate, err := parseOptionalDate("end-date", opts.endDate)
	if err != nil {
		return err
	}

	form := planModels.FromDomainConfig(planner.NewPlan(turfID, sportID, startDate, endDate, opts.defaults))

	if opts.output != "" {
		if err := writePlanFile(opts.output, form); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "plan written to %s\n", opts.output)
		return nil
	}

	return encodePlan(cmd.OutOrStdout(), form)
}

func parseOptionalUUID(flag, s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("--%s: %w", flag, err)
	}
	return id, nil
}

func parseOptionalDate(flag, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: expected YYYY-MM-DD: %w", flag, err)
	}
	return t, nil
}
