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
	generateFlags genFlags
	// noManifest disables writing manifest.yaml. Set via --no-manifest.
	noManifest bool
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate sources from the ZCL XML schema",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(cmd.Context(), configPath, generateFlags); err != nil {
			ui.PrintError("Error", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateFlags.language, "lang", "l", "", "Target language (csharp, go)")
	generateCmd.Flags().StringVarP(&generateFlags.output, "out", "o", "", "Output directory")
	generateCmd.Flags().IntVarP(&generateFlags.workers, "workers", "w", 0, "Units generated in parallel (default: number of CPUs)")
	generateCmd.Flags().BoolVar(&noManifest, "no-manifest", false, "Do not write manifest.yaml")
	rootCmd.AddCommand(generateCmd)
}

// runGenerate loads the configuration, generates every unit into the output
// directory and prints a summary.
//
// Returns:
//   - error: configuration or run failure, or a summary of failed units.
func runGenerate(ctx context.Context, path string, flags genFlags) error {
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

	g, err := newGenerator(cfg, generator.DirSink{Root: cfg.Gen.Output}, logger, noManifest)
	if err != nil {
		return err
	}

	ui.PrintHeader(fmt.Sprintf("Generating %s sources for %s", cfg.Gen.Language, cfg.Project.Name))
	var report *generator.Report
	err = ui.RunSpinner(fmt.Sprintf("Processing %d schema files...", len(files)), func() error {
		var runErr error
		report, runErr = g.Run(ctx, files)
		return runErr
	})
	if err != nil {
		return err
	}

	printReport(report, cfg.Gen.Output)
	if failed := len(report.Failed()) + len(report.FileErrors); failed > 0 {
		return fmt.Errorf("%d of %d units failed, %d schema files unreadable",
			len(report.Failed()), len(report.Results), len(report.FileErrors))
	}
	return nil
}

func printReport(report *generator.Report, output string) {
	for _, f := range report.FileErrors {
		ui.PrintError("Schema", f.Err.Error())
	}
	for _, res := range report.Failed() {
		ui.PrintError("Unit", res.Err.Error())
	}
	ui.PrintSuccess("Written", fmt.Sprintf("%d files in %s", report.Count(generator.StatusWritten), output))
	if n := report.Count(generator.StatusSkipped); n > 0 {
		ui.PrintWarning("Skipped", fmt.Sprintf("%d empty units", n))
	}
}
