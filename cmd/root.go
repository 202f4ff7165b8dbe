package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zigbeenet/zcl-gen/internal/ui"
)

var (
	// configPath is the --config flag. Empty means search the working directory.
	configPath string
	noColor    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "zcl-gen",
	Short: "Generate ZigBee cluster library sources from ZCL XML definitions",
	Long: `zcl-gen reads ZigBee Cluster Library definitions (clusters, commands,
attributes and constants) from XML files and generates C# or Go sources for them.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || os.Getenv("NO_COLOR") != "" {
			ui.DisableColor()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// init initializes the root command and its flags.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (default: zcl-gen.yaml or zcl-gen.toml in the working directory)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}
