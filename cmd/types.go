package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zigbeenet/zcl-gen/internal/config"
	"github.com/zigbeenet/zcl-gen/internal/types"
	"github.com/zigbeenet/zcl-gen/internal/ui"
)

var typesJSON bool

// typesCmd represents the types command.
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the schema type tags and the types they map to",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTypes(cmd.OutOrStdout(), configPath, typesJSON); err != nil {
			ui.PrintError("Error", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	typesCmd.Flags().BoolVar(&typesJSON, "json", false, "Print the catalog as JSON")
	rootCmd.AddCommand(typesCmd)
}

type typeRow struct {
	Tag    string `json:"tag"`
	Host   string `json:"host"`
	Go     string `json:"go"`
	Wire   uint8  `json:"wire,omitempty"`
	Analog bool   `json:"analog,omitempty"`
}

// runTypes prints the type catalog. With a configuration available the
// types section is applied; otherwise the built-in catalog is listed.
func runTypes(w io.Writer, path string, asJSON bool) error {
	catalog := types.Default()
	if path == "" {
		path, _ = config.Find(".")
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if catalog, err = cfg.Catalog(); err != nil {
			return err
		}
	}

	all := catalog.All()
	rows := make([]typeRow, len(all))
	for i, info := range all {
		rows[i] = typeRow{Tag: info.Tag, Host: info.HostType, Go: info.GoType, Wire: info.WireCode, Analog: info.Analog}
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TAG\tHOST\tGO\tWIRE")
	for _, r := range rows {
		wire := "-"
		if r.Wire != 0 {
			wire = fmt.Sprintf("0x%02x", r.Wire)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Tag, r.Host, r.Go, wire)
	}
	return tw.Flush()
}
