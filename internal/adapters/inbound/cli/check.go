package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fontcheck/fontcheck/internal/adapters/outbound/config"
	"github.com/fontcheck/fontcheck/internal/adapters/outbound/fontaine"
	"github.com/fontcheck/fontcheck/internal/adapters/outbound/fontdump"
	"github.com/fontcheck/fontcheck/internal/adapters/outbound/gitinfo"
	"github.com/fontcheck/fontcheck/internal/adapters/outbound/gwf"
	"github.com/fontcheck/fontcheck/internal/adapters/outbound/history"
	"github.com/fontcheck/fontcheck/internal/adapters/outbound/metastore"
	"github.com/fontcheck/fontcheck/internal/adapters/outbound/tui"
	"github.com/fontcheck/fontcheck/internal/application"
)

func newCheckService() *application.CheckService {
	return application.NewCheckService(
		fontdump.New(),
		metastore.New(),
		fontaine.New(),
		gwf.New(),
		gitinfo.New(),
		history.New(),
	)
}

func newCheckCmd() *cobra.Command {
	var (
		beforeDir   string
		autofix     bool
		skipNetwork bool
		jsonOutput  bool
		ciMode      bool
	)

	cmd := &cobra.Command{
		Use:   "check [family-dir]",
		Short: "Run the check catalog against a font family folder",
		Long:  "Run every conformance check against the fonts and METADATA of a family folder. Pass --before to also run the regression checks against a previous release.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			familyDir := "."
			if len(args) > 0 {
				familyDir = args[0]
			}

			cfg, err := config.New().Load(familyDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if autofix {
				cfg.Autofix = true
			}
			if skipNetwork {
				cfg.SkipNetwork = true
			}

			report, err := newCheckService().CheckFamily(cmd.Context(), familyDir, beforeDir, cfg)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if ciMode && report.HasErrors() {
				return fmt.Errorf("%d checks failed", report.Summary.Errors)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&beforeDir, "before", "", "Previous release folder for the regression checks")
	cmd.Flags().BoolVar(&autofix, "autofix", false, "Repair autofixable findings in place")
	cmd.Flags().BoolVar(&skipNetwork, "skip-network", false, "Skip the advisory network-backed checks")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if any check errors")

	return cmd
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [family-dir]",
		Short: "Show past run summaries for a family folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			familyDir := "."
			if len(args) > 0 {
				familyDir = args[0]
			}
			entries, err := history.New().Load(familyDir)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}
	return cmd
}
