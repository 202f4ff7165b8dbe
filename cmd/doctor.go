package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zigbeenet/zcl-gen/internal/schema"
	"github.com/zigbeenet/zcl-gen/internal/types"
	"github.com/zigbeenet/zcl-gen/internal/ui"
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the configuration, the schema and the target toolchain",
	Run: func(cmd *cobra.Command, args []string) {
		problems, err := runDoctor(configPath)
		if err != nil {
			ui.PrintError("Error", err.Error())
			os.Exit(1)
		}
		if problems > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// toolchains maps a target language to the executables that can build its
// output. Missing toolchains are warnings, not problems.
var toolchains = map[string][]string{
	"csharp": {"dotnet", "msbuild", "csc"},
	"go":     {"go"},
}

// runDoctor loads the configuration and every schema file and reports each
// unreadable file and unknown type tag.
//
// Returns:
//   - int: the number of problems found
//   - error: the configuration could not be loaded
func runDoctor(path string) (int, error) {
	ui.PrintHeader("Checking project...")

	cfg, err := loadConfig(path, genFlags{})
	if err != nil {
		return 0, err
	}
	ui.PrintSuccess("Config", cfg.Project.Name)

	checkToolchain(cfg.Gen.Language)

	catalog, err := cfg.Catalog()
	if err != nil {
		return 0, err
	}

	files, err := discover(cfg)
	if err != nil {
		ui.PrintError("Schema", err.Error())
		return 1, nil
	}

	problems := 0
	for _, f := range files {
		doc, err := schema.Load(f)
		if err != nil {
			ui.PrintError("Schema", err.Error())
			problems++
			continue
		}
		for _, msg := range unknownTags(doc, catalog) {
			ui.PrintError("Type", fmt.Sprintf("%s: %s", f, msg))
			problems++
		}
	}

	if problems == 0 {
		ui.PrintSuccess("Schema", fmt.Sprintf("%d files", len(files)))
	}
	return problems, nil
}

// checkToolchain returns the first toolchain executable for lang found in
// PATH, or "" after printing a warning.
func checkToolchain(lang string) string {
	lang = strings.ToLower(lang)
	for _, exe := range toolchains[lang] {
		if p, err := exec.LookPath(exe); err == nil {
			ui.PrintSuccess("Toolchain", p)
			return p
		}
	}
	ui.PrintWarning("Toolchain", fmt.Sprintf("no %s toolchain found in PATH", lang))
	return ""
}

// unknownTags lists every type tag in doc the catalog cannot resolve.
// Attributes and fields must name a type; a constant set may omit it.
func unknownTags(doc *schema.Document, catalog *types.Catalog) []string {
	var out []string
	check := func(tag, where string, required bool) {
		if strings.TrimSpace(tag) == "" {
			if required {
				out = append(out, where+": no type")
			}
			return
		}
		if _, err := catalog.Resolve(tag); err != nil {
			out = append(out, fmt.Sprintf("%s: %v", where, err))
		}
	}

	if c := doc.Cluster; c != nil {
		for _, a := range c.Attributes {
			check(a.Type, "attribute "+a.Name, true)
		}
		for _, cmd := range c.Commands {
			for _, fld := range cmd.Fields {
				check(fld.Type, "field "+cmd.Name+"."+fld.Name, true)
			}
		}
		for _, set := range c.Constants {
			check(set.Type, "constant "+set.Class, false)
		}
	}
	for _, set := range doc.Constants {
		check(set.Type, "constant "+set.Class, false)
	}
	return out
}
