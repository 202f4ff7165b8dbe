package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zigbeenet/zcl-gen/internal/config"
	"github.com/zigbeenet/zcl-gen/internal/render"
	"github.com/zigbeenet/zcl-gen/internal/templates"
	"github.com/zigbeenet/zcl-gen/internal/ui"
)

var (
	initYes   bool
	initForce bool
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a zcl-gen.yaml configuration",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if err := runInit(dir, initYes, initForce); err != nil {
			ui.PrintError("Error", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Accept the defaults without prompting")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration")
	rootCmd.AddCommand(initCmd)
}

// initAnswers is the data handed to zcl-gen.yaml.tmpl.
type initAnswers struct {
	ProjectName   string
	SchemaDir     string
	Language      string
	Output        string
	RootNamespace string
	GoPackage     string
}

var nonProjectChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func defaultAnswers(dir string) initAnswers {
	name := "zigbee"
	if abs, err := filepath.Abs(dir); err == nil {
		if base := nonProjectChars.ReplaceAllString(filepath.Base(abs), "-"); strings.Trim(base, "-") != "" {
			name = strings.Trim(base, "-")
		}
	}
	return initAnswers{
		ProjectName:   name,
		SchemaDir:     "schema",
		Language:      "csharp",
		Output:        "generated",
		RootNamespace: "ZigBeeNet",
		GoPackage:     "clusters",
	}
}

func askAnswers(a initAnswers) (initAnswers, error) {
	var err error
	if a.ProjectName, err = ui.Prompt("Project name", a.ProjectName); err != nil {
		return a, err
	}
	if a.Language, err = ui.Select("Target language", render.Languages(), a.Language); err != nil {
		return a, err
	}
	if a.SchemaDir, err = ui.Prompt("Schema directory", a.SchemaDir); err != nil {
		return a, err
	}
	if a.Output, err = ui.Prompt("Output directory", a.Output); err != nil {
		return a, err
	}
	if a.RootNamespace, err = ui.Prompt("Root namespace", a.RootNamespace); err != nil {
		return a, err
	}
	if a.Language == "go" {
		if a.GoPackage, err = ui.Prompt("Go package", a.GoPackage); err != nil {
			return a, err
		}
	}
	return a, nil
}

// runInit writes zcl-gen.yaml into dir and creates the schema directory.
//
// Parameters:
//   - dir: target directory, created when missing
//   - yes: skip the prompts and use the defaults
//   - force: overwrite an existing configuration
//
// Returns:
//   - error: An error if a configuration exists or writing fails.
func runInit(dir string, yes, force bool) error {
	dest := filepath.Join(dir, config.FileNames[0])
	if !force {
		if existing, err := config.Find(dir); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", existing)
		}
	}

	answers := defaultAnswers(dir)
	if !yes {
		var err error
		if answers, err = askAnswers(answers); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Join(dir, answers.SchemaDir), 0755); err != nil {
		return err
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := templates.Execute(f, "zcl-gen.yaml.tmpl", answers); err != nil {
		return err
	}

	// The written file must load; a bad answer is reported now, not at generate time.
	if _, err := config.Load(dest); err != nil {
		return fmt.Errorf("generated configuration is invalid: %w", err)
	}

	ui.PrintSuccess("Created", dest)
	fmt.Fprintln(ui.Out, "Next steps:")
	fmt.Fprintf(ui.Out, "  copy the ZCL XML files into %s\n", filepath.Join(dir, answers.SchemaDir))
	fmt.Fprintln(ui.Out, "  zcl-gen generate")
	return nil
}
