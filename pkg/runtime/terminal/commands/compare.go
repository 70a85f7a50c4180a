package commands

import (
	"github.com/de-tools/itinerary-diff/pkg/runtime/terminal/export"
	"github.com/de-tools/itinerary-diff/pkg/services/comparison"
	"github.com/de-tools/itinerary-diff/pkg/services/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type CompareCmd struct {
	cfg     *config.Config
	service *comparison.Service
}

func NewCompareCmd(v *viper.Viper, cfg *config.Config, extractor comparison.Extractor) *cobra.Command {
	cc := &CompareCmd{cfg: cfg, service: comparison.NewService(extractor)}
	cmd := &cobra.Command{
		Use:   "compare [first.xml] [second.xml]",
		Short: "Print itineraries of two search responses side by side",
		Long: "Pairs itineraries of both responses by position and prints one table per pair.\n" +
			"Without arguments the configured (or default) pair of files is compared.",
		Args: cobra.MaximumNArgs(2),
		RunE: cc.run,
	}

	cmd.Flags().Bool("mark-diffs", false, "Mark rows whose values differ")
	_ = v.BindPFlag("mark_diffs", cmd.Flags().Lookup("mark-diffs"))

	return cmd
}

func (cc *CompareCmd) run(cmd *cobra.Command, args []string) error {
	first, second := cc.cfg.First, cc.cfg.Second
	if len(args) > 0 {
		first = args[0]
	}
	if len(args) > 1 {
		second = args[1]
	}

	cmp, err := cc.service.CompareFiles(cmd.Context(), first, second)
	if err != nil {
		return err
	}

	reporter := export.NewReporter(cmd.OutOrStdout(), tableConfig(cc.cfg))
	return reporter.Handle(cmp)
}

func tableConfig(cfg *config.Config) export.TableConfig {
	return export.TableConfig{
		LabelWidth: cfg.Table.LabelWidth,
		ValueWidth: cfg.Table.ValueWidth,
		MarkDiffs:  cfg.MarkDiffs,
	}
}
