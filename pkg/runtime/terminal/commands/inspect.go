package commands

import (
	"fmt"

	"github.com/de-tools/itinerary-diff/pkg/runtime/terminal/export"
	"github.com/de-tools/itinerary-diff/pkg/services/comparison"
	"github.com/de-tools/itinerary-diff/pkg/services/config"
	"github.com/spf13/cobra"
)

type InspectCmd struct {
	cfg       *config.Config
	extractor comparison.Extractor
}

func NewInspectCmd(cfg *config.Config, extractor comparison.Extractor) *cobra.Command {
	ic := &InspectCmd{cfg: cfg, extractor: extractor}
	return &cobra.Command{
		Use:   "inspect <file.xml>",
		Short: "List the itineraries of a single search response",
		Args:  cobra.ExactArgs(1),
		RunE:  ic.run,
	}
}

func (ic *InspectCmd) run(cmd *cobra.Command, args []string) error {
	itineraries, err := ic.extractor.ExtractFile(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", args[0], err)
	}

	cfg := tableConfig(ic.cfg)
	cfg.MarkDiffs = false
	return export.NewReporter(cmd.OutOrStdout(), cfg).HandleList(args[0], itineraries)
}
