package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	planModels "github.com/m04kA/SMC-TurfService/internal/service/planner/models"
	copyDayPlan "github.com/m04kA/SMC-TurfService/internal/usecase/copy_day_plan"
)

type copyDayOptions struct {
	file            string
	to              string
	from            string
	write           bool
	maxRangesPerDay int
}

func newCopyDayCmd(root *rootOptions) *cobra.Command {
	opts := &copyDayOptions{}

	cmd := &cobra.Command{
		Use:   "copy-day",
		Short: "Copy duration, price and time ranges of one day into another",
		Long: `Copy duration, price and time ranges of one day into another and print the regenerated day.

Time ranges of the target day are replaced, not merged. Without --from the previous
weekday is used (Monday has no previous day and needs --from).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCopyDay(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Plan YAML file")
	cmd.Flags().StringVar(&opts.to, "to", "", "Target day (Monday..Sunday)")
	cmd.Flags().StringVar(&opts.from, "from", "", "Source day, previous weekday by default")
	cmd.Flags().BoolVar(&opts.write, "write", false, "Store the updated plan back into the file")
	cmd.Flags().IntVar(&opts.maxRangesPerDay, "max-ranges", 8, "Maximum time ranges per day")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runCopyDay(cmd *cobra.Command, root *rootOptions, opts *copyDayOptions) error {
	log, err := root.newLogger(cmd)
	if err != nil {
		return err
	}

	target, err := domain.ParseWeekday(opts.to)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	req := &copyDayPlan.Request{TargetDay: target}
	if opts.from != "" {
		source, err := domain.ParseWeekday(opts.from)
		if err != nil {
			return fmt.Errorf("--from: %w", err)
		}
		req.SourceDay = &source
	}

	form, err := readPlanFile(opts.file)
	if err != nil {
		return err
	}
	req.Config = form.ToDomain()

	result, err := copyDayPlan.NewUseCase(opts.maxRangesPerDay, log).Execute(cmd.Context(), req)
	if err != nil {
		return err
	}

	if opts.write {
		if err := writePlanFile(opts.file, planModels.FromDomainConfig(result.Config)); err != nil {
			return err
		}
	}

	return writeJSON(cmd.OutOrStdout(), planModels.FromDayPreview(result.Preview))
}
