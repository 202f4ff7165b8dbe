package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zigbeenet/zcl-gen/internal/builder"
)

func validConfig() *Config {
	cfg := &Config{Project: ProjectConfig{Name: "zigbee"}}
	ApplyDefaults(cfg)
	return cfg
}

func TestValidate_Gen(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError string
	}{
		{
			name:      "defaults",
			mutate:    func(*Config) {},
			wantError: "",
		},
		{
			name:      "go language, mixed case",
			mutate:    func(c *Config) { c.Gen.Language = "Go" },
			wantError: "",
		},
		{
			name:      "unknown language",
			mutate:    func(c *Config) { c.Gen.Language = "java" },
			wantError: "language \"java\" is not supported",
		},
		{
			name:      "namespace with space",
			mutate:    func(c *Config) { c.Gen.RootNamespace = "ZigBee Net" },
			wantError: "root_namespace \"ZigBee Net\" is not a dotted identifier",
		},
		{
			name:      "namespace with empty segment",
			mutate:    func(c *Config) { c.Gen.ClusterNamespace = "ZigBeeNet..Clusters" },
			wantError: "cluster_namespace",
		},
		{
			name:      "dotted namespace",
			mutate:    func(c *Config) { c.Gen.ClusterNamespace = "My.Zcl.Clusters" },
			wantError: "",
		},
		{
			name:      "bad import",
			mutate:    func(c *Config) { c.Gen.Imports = []string{"System", "1Bad"} },
			wantError: "import \"1Bad\"",
		},
		{
			name:      "fields as property source",
			mutate:    func(c *Config) { c.Gen.CommandProperties = "fields" },
			wantError: "",
		},
		{
			name:      "unknown property source",
			mutate:    func(c *Config) { c.Gen.CommandProperties = "both" },
			wantError: "invalid command_properties",
		},
		{
			name:      "negative workers",
			mutate:    func(c *Config) { c.Gen.Workers = -1 },
			wantError: "workers must not be negative",
		},
		{
			name:      "crlf",
			mutate:    func(c *Config) { c.Gen.LineEnding = "CRLF" },
			wantError: "",
		},
		{
			name:      "cr line ending",
			mutate:    func(c *Config) { c.Gen.LineEnding = "cr" },
			wantError: "invalid line_ending",
		},
		{
			name:      "huge indent",
			mutate:    func(c *Config) { c.Gen.Indent = 40 },
			wantError: "indent must be between 0 and 16",
		},
		{
			name:      "go package with dash",
			mutate:    func(c *Config) { c.Gen.Go.Package = "zcl-clusters" },
			wantError: "go package",
		},
		{
			name:      "bad include pattern",
			mutate:    func(c *Config) { c.Schema.Include = []string{"[abc"} },
			wantError: "invalid glob pattern",
		},
		{
			name:      "bad exclude pattern",
			mutate:    func(c *Config) { c.Schema.Exclude = []string{"{a,b"} },
			wantError: "invalid glob pattern",
		},
		{
			name:      "go type with whitespace",
			mutate:    func(c *Config) { c.Types = map[string]TypeOverride{"UTCTIME": {Go: "time. Time"}} },
			wantError: "contains whitespace",
		},
		{
			name:      "invalid logging level",
			mutate:    func(c *Config) { c.Logging.Level = "verbose" },
			wantError: "invalid logging level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantError != "" {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantError)
				} else if !strings.Contains(err.Error(), tt.wantError) {
					t.Errorf("Validate() error = %v, want substring %q", err, tt.wantError)
				}
			} else {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			}
		})
	}
}

func TestValidate_ProjectName(t *testing.T) {
	tests := []struct {
		name      string
		projName  string
		wantError string
	}{
		{
			name:      "valid name",
			projName:  "MyProject_v1",
			wantError: "",
		},
		{
			name:      "valid name with hyphens",
			projName:  "zigbee-clusters",
			wantError: "",
		},
		{
			name:      "invalid space",
			projName:  "My Project",
			wantError: "project name must only contain alphanumeric characters, underscores, and hyphens",
		},
		{
			name:      "invalid dot",
			projName:  "My.Project",
			wantError: "project name must only contain alphanumeric characters, underscores, and hyphens",
		},
		{
			name:      "empty name",
			projName:  "",
			wantError: "project name cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Project.Name = tt.projName

			err := Validate(cfg)
			if tt.wantError != "" {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantError)
				} else if !strings.Contains(err.Error(), tt.wantError) {
					t.Errorf("Validate() error = %v, want substring %q", err, tt.wantError)
				}
			} else {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Schema.Dir != "schema" {
		t.Errorf("Schema.Dir = %q, want schema", cfg.Schema.Dir)
	}
	if len(cfg.Schema.Include) != 1 || cfg.Schema.Include[0] != "**/*.xml" {
		t.Errorf("Schema.Include = %v, want [**/*.xml]", cfg.Schema.Include)
	}
	if cfg.Gen.Language != "csharp" {
		t.Errorf("Gen.Language = %q, want csharp", cfg.Gen.Language)
	}
	if cfg.Gen.Output != "generated" {
		t.Errorf("Gen.Output = %q, want generated", cfg.Gen.Output)
	}
	if cfg.Gen.CommandProperties != "attributes" {
		t.Errorf("Gen.CommandProperties = %q, want attributes", cfg.Gen.CommandProperties)
	}
	if cfg.Gen.Indent != 4 || cfg.Gen.LineEnding != "lf" {
		t.Errorf("layout = (%d, %q), want (4, lf)", cfg.Gen.Indent, cfg.Gen.LineEnding)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}

	// Explicit values survive.
	cfg = &Config{Gen: GenConfig{Language: "go", Output: "out"}}
	ApplyDefaults(cfg)
	if cfg.Gen.Language != "go" || cfg.Gen.Output != "out" {
		t.Errorf("ApplyDefaults overwrote explicit values: %+v", cfg.Gen)
	}
}

const yamlConfig = `project:
  name: zigbee
schema:
  dir: xml
  exclude: ["drafts/**"]
gen:
  language: go
  output: out
  root_namespace: Zcl
  imports: []
  command_properties: fields
  workers: 2
  emit_empty: true
  strict_literals: true
  line_ending: crlf
  indent: 2
  go:
    package: zcl
types:
  UTCTIME:
    go: uint32
  UNSIGNED_8_BIT_INTEGER:
    analog: false
logging:
  level: debug
`

const tomlConfig = `[project]
name = "zigbee"

[schema]
dir = "xml"

[gen]
language = "csharp"
general_cluster = "GENERAL"
lenient_source = true

[types.CUSTOM_TAG]
host = "MyType"
wire = 66
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "zcl-gen.yaml", yamlConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	dir := filepath.Dir(path)

	if cfg.Schema.Dir != filepath.Join(dir, "xml") {
		t.Errorf("Schema.Dir = %q, want it resolved against the config file", cfg.Schema.Dir)
	}
	if cfg.Gen.Output != filepath.Join(dir, "out") {
		t.Errorf("Gen.Output = %q", cfg.Gen.Output)
	}
	if cfg.Gen.Imports == nil || len(cfg.Gen.Imports) != 0 {
		t.Errorf("Gen.Imports = %#v, want empty non-nil", cfg.Gen.Imports)
	}

	b := cfg.BuilderOptions()
	if b.RootNamespace != "Zcl" || b.ClusterNamespace != builder.DefaultOptions().ClusterNamespace {
		t.Errorf("namespaces = (%q, %q)", b.RootNamespace, b.ClusterNamespace)
	}
	if len(b.Imports) != 0 {
		t.Errorf("Imports = %v, want none", b.Imports)
	}
	if b.CommandProperties != builder.PropertiesFromFields || !b.AllowEmpty || b.LiteralValidator == nil {
		t.Errorf("builder flags not mapped: %+v", b)
	}

	r := cfg.RenderOptions()
	if r.Indent != "  " || r.LineEnding != "\r\n" || r.GoPackage != "zcl" {
		t.Errorf("RenderOptions() = %+v", r)
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error: %v", err)
	}
	info, err := catalog.Resolve("UTCTIME")
	if err != nil {
		t.Fatalf("Resolve(UTCTIME) error: %v", err)
	}
	if info.GoType != "uint32" || info.HostType != "DateTime" {
		t.Errorf("UTCTIME = %+v, want go override with built-in host type", info)
	}
	if info.WireCode != 0xe2 || !info.Analog {
		t.Errorf("UTCTIME = %+v, want built-in wire code and analog flag", info)
	}

	u8, err := catalog.Resolve("UNSIGNED_8_BIT_INTEGER")
	if err != nil {
		t.Fatalf("Resolve(UNSIGNED_8_BIT_INTEGER) error: %v", err)
	}
	if u8.WireCode != 0x20 || u8.Analog {
		t.Errorf("UNSIGNED_8_BIT_INTEGER = %+v, want analog turned off", u8)
	}
}

func TestLoad_TOML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "zcl-gen.toml", tomlConfig))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Gen.Language != "csharp" || !cfg.Gen.LenientSource {
		t.Errorf("Gen = %+v", cfg.Gen)
	}
	if cfg.Gen.Output == "" || cfg.Logging.Level != "info" {
		t.Errorf("defaults not applied: %+v", cfg)
	}

	b := cfg.BuilderOptions()
	if !b.LenientSource || b.LiteralValidator != nil {
		t.Errorf("builder flags = %+v", b)
	}
	if len(b.Imports) != len(builder.DefaultOptions().Imports) {
		t.Errorf("Imports = %v, want defaults", b.Imports)
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog() error: %v", err)
	}
	info, err := catalog.Resolve("CUSTOM_TAG")
	if err != nil {
		t.Fatalf("Resolve(CUSTOM_TAG) error: %v", err)
	}
	if info.HostType != "MyType" || info.GoType != "MyType" || info.WireCode != 66 || info.Analog {
		t.Errorf("CUSTOM_TAG = %+v", info)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		wantError string
	}{
		{
			name:      "unknown extension",
			file:      "zcl-gen.json",
			content:   "{}",
			wantError: "unsupported configuration format",
		},
		{
			name:      "broken yaml",
			file:      "zcl-gen.yaml",
			content:   "project: [",
			wantError: "failed to parse",
		},
		{
			name:      "broken toml",
			file:      "zcl-gen.toml",
			content:   "[project\nname = 1",
			wantError: "failed to parse",
		},
		{
			name:      "invalid values",
			file:      "zcl-gen.yaml",
			content:   "project:\n  name: x\ngen:\n  language: cobol\n",
			wantError: "language \"cobol\" is not supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			if err == nil {
				t.Fatalf("Load() expected error containing %q, got nil", tt.wantError)
			}
			if !strings.Contains(err.Error(), tt.wantError) {
				t.Errorf("Load() error = %v, want substring %q", err, tt.wantError)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	if _, err := Find(dir); err == nil {
		t.Error("Find() in an empty directory succeeded")
	}

	if err := os.WriteFile(filepath.Join(dir, "zcl-gen.toml"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "zcl-gen.yaml"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	got, err := Find(dir)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if filepath.Base(got) != "zcl-gen.yaml" {
		t.Errorf("Find() = %q, want the yaml file first", got)
	}
}
