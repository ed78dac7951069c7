// Package cmd - check command
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dimensional/core/catalog"
	"dimensional/core/output"
	"dimensional/internal/logging"
)

// checkCmd validates the catalog and runs the algebraic self checks
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the standard catalog and check the algebra's laws",
	Long: `Validate every catalog entry, then check over all of them that
multiplication commutes and associates, powers compose, u^1 = u and u^0 = 1,
and that converting between compatible units round-trips.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	f, err := output.ParseFormat(format())
	if err != nil {
		return err
	}

	log := logging.With(zap.String("command", "check"))
	startTime := time.Now()
	c := catalog.Standard()

	results := []catalog.PropertyResult{{
		Name:       "catalog validation",
		Violations: c.Validate(catalog.DefaultValidationRules()),
	}}
	results = append(results, c.CheckProperties(catalog.DefaultProperties())...)

	failed := 0
	for _, r := range results {
		if !r.Passed() {
			failed++
			log.Warn("Check failed", zap.String("check", r.Name), zap.Int("violations", len(r.Violations)))
		}
	}
	log.Info("Checks complete",
		zap.Int("checks", len(results)),
		zap.Int("failed", failed),
		zap.Duration("duration", time.Since(startTime)))

	if err := output.RenderCheck(cmd.OutOrStdout(), f, output.CheckRows(results)); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}
	return nil
}
