package main

import (
	"github.com/spf13/cobra"

	planModels "github.com/m04kA/SMC-TurfService/internal/service/planner/models"
	previewSlotPlan "github.com/m04kA/SMC-TurfService/internal/usecase/preview_slot_plan"
)

type previewOptions struct {
	file            string
	days            bool
	maxRangesPerDay int
}

func newPreviewCmd(root *rootOptions) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the schedules a plan would save, one per (day, time range)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Plan YAML file")
	cmd.Flags().BoolVar(&opts.days, "days", false, "Print per-day preview (starts and slots) instead of schedules")
	cmd.Flags().IntVar(&opts.maxRangesPerDay, "max-ranges", 8, "Maximum time ranges per day")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootOptions, opts *previewOptions) error {
	log, err := root.newLogger(cmd)
	if err != nil {
		return err
	}

	form, err := readPlanFile(opts.file)
	if err != nil {
		return err
	}

	uc := previewSlotPlan.NewUseCase(opts.maxRangesPerDay, log)
	result, err := uc.Execute(cmd.Context(), &previewSlotPlan.Request{Config: form.ToDomain()})
	if err != nil {
		return err
	}

	if opts.days {
		return writeJSON(cmd.OutOrStdout(), planModels.FromDayPreviews(result.Days))
	}

	schedules := make([]planModels.ScheduleView, 0, len(result.Schedules))
	for _, s := range result.Schedules {
		schedules = append(schedules, planModels.FromSchedule(s))
	}
	return writeJSON(cmd.OutOrStdout(), schedules)
}
