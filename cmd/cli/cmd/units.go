// Package cmd - units command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dimensional/core/catalog"
	"dimensional/core/output"
	"dimensional/internal/config"
	"dimensional/internal/logging"
)

var showNotes bool

// unitsCmd lists the standard catalog
var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the standard units grouped by dimension",
	Args:  cobra.NoArgs,
	RunE:  runUnits,
}

func init() {
	unitsCmd.Flags().BoolVar(&showNotes, "notes", false, "include catalog notes")
}

func runUnits(cmd *cobra.Command, args []string) error {
	f, err := output.ParseFormat(format())
	if err != nil {
		return err
	}

	c := catalog.Standard()
	stats := c.Stats()
	logging.Named("units").Debug("Listing catalog",
		zap.Int("entries", stats.Total),
		zap.Int("dimensions", stats.Dimensions))

	notes := showNotes || config.Get().Output.ShowNotes
	return output.RenderUnits(cmd.OutOrStdout(), f, output.UnitGroups(c.Groups(), notes))
}
