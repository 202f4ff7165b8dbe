package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zigbeenet/zcl-gen/internal/generator"
	"github.com/zigbeenet/zcl-gen/internal/ui"
	"github.com/zigbeenet/zcl-gen/pkg/log"
)

var (
	checkFlags genFlags
	showDiff   bool
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the generated sources match the schema",
	Long: `check generates every unit in memory and compares the result against the
output directory. It exits non-zero when a file is missing, differs or is stale.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCheck(cmd.Context(), configPath, checkFlags); err != nil {
			ui.PrintError("Error", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkFlags.language, "lang", "l", "", "Target language (csharp, go)")
	checkCmd.Flags().StringVarP(&checkFlags.output, "out", "o", "", "Output directory to compare against")
	checkCmd.Flags().BoolVar(&showDiff, "diff", true, "Print a unified diff for changed files")
	rootCmd.AddCommand(checkCmd)
}

// runCheck reports drift between a fresh in-memory generation and the
// committed output directory.
//
// Returns:
//   - error: when any file drifted or the run itself failed.
func runCheck(ctx context.Context, path string, flags genFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(path, flags)
	if err != nil {
		return err
	}
	logger, err := log.Init(cfg.Logging.Path, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	files, err := discover(cfg)
	if err != nil {
		return err
	}

	sink := generator.NewMemorySink()
	g, err := newGenerator(cfg, sink, logger, false)
	if err != nil {
		return err
	}
	report, err := g.Run(ctx, files)
	if err != nil {
		return err
	}
	if err := report.Err(); err != nil {
		return fmt.Errorf("generation failed, cannot compare: %w", err)
	}

	drifts, err := generator.Check(cfg.Gen.Output, sink)
	if err != nil {
		return err
	}

	ui.PrintHeader(fmt.Sprintf("Checking %s", cfg.Gen.Output))
	if len(drifts) == 0 {
		ui.PrintSuccess("Up to date", fmt.Sprintf("%d files", len(sink.Paths())))
		return nil
	}
	for _, d := range drifts {
		ui.PrintError(string(d.Kind), d.Path)
		if showDiff && d.Diff != "" {
			ui.PrintDiff(d.Diff)
		}
	}
	return fmt.Errorf("%d generated files are out of date; run zcl-gen generate", len(drifts))
}
