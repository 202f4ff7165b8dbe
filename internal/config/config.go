package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/zigbeenet/zcl-gen/internal/builder"
	"github.com/zigbeenet/zcl-gen/internal/naming"
	"github.com/zigbeenet/zcl-gen/internal/render"
	"github.com/zigbeenet/zcl-gen/internal/types"
)

// FileNames are the configuration files Find looks for, in order.
var FileNames = []string{"zcl-gen.yaml", "zcl-gen.yml", "zcl-gen.toml"}

// Config represents the top-level configuration structure parsed from
// zcl-gen.yaml or zcl-gen.toml. It defines the project metadata, where the
// schema lives, how code is generated and how the tool logs.
type Config struct {
	// Project contains metadata about the project.
	Project ProjectConfig `yaml:"project" toml:"project"`
	// Schema locates the ZCL XML definitions.
	Schema SchemaConfig `yaml:"schema" toml:"schema"`
	// Gen contains settings for code generation.
	Gen GenConfig `yaml:"gen" toml:"gen"`
	// Types overrides or extends the built-in type catalog, keyed by schema
	// type tag.
	Types map[string]TypeOverride `yaml:"types" toml:"types"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// ProjectConfig contains basic project metadata.
type ProjectConfig struct {
	// Name is the name of the project.
	Name string `yaml:"name" toml:"name"`
}

// SchemaConfig selects the schema files to load.
type SchemaConfig struct {
	// Dir is the directory holding the XML files.
	Dir string `yaml:"dir" toml:"dir"`
	// Include are doublestar patterns relative to Dir. Defaults to **/*.xml.
	Include []string `yaml:"include" toml:"include"`
	// Exclude are doublestar patterns removed from the include set.
	Exclude []string `yaml:"exclude" toml:"exclude"`
}

// GenConfig controls the code generation process.
type GenConfig struct {
	// Language is the target renderer ("csharp" or "go").
	Language string `yaml:"language" toml:"language"`
	// Output is the root directory for generated files.
	Output string `yaml:"output" toml:"output"`
	// RootNamespace holds the global constant enums.
	RootNamespace string `yaml:"root_namespace" toml:"root_namespace"`
	// ClusterNamespace holds the cluster classes.
	ClusterNamespace string `yaml:"cluster_namespace" toml:"cluster_namespace"`
	// Imports replaces the default import list of class files. An empty list
	// emits none.
	Imports []string `yaml:"imports" toml:"imports"`
	// BaseType is the base class of generated commands.
	BaseType string `yaml:"base_type" toml:"base_type"`
	// DirectionType is the enum naming the command direction.
	DirectionType string `yaml:"direction_type" toml:"direction_type"`
	// GeneralCluster is the pseudo cluster whose commands are generic.
	GeneralCluster string `yaml:"general_cluster" toml:"general_cluster"`
	// CommandProperties is "attributes" or "fields".
	CommandProperties string `yaml:"command_properties" toml:"command_properties"`
	// Workers bounds concurrent units. Zero uses every CPU.
	Workers int `yaml:"workers" toml:"workers"`
	// EmitEmpty generates enums without values and clusters without
	// attributes instead of skipping them.
	EmitEmpty bool `yaml:"emit_empty" toml:"emit_empty"`
	// LenientSource treats unknown command sources as client.
	LenientSource bool `yaml:"lenient_source" toml:"lenient_source"`
	// StrictLiterals rejects code values that are not integers fitting their
	// type.
	StrictLiterals bool `yaml:"strict_literals" toml:"strict_literals"`
	// LineEnding is "lf" or "crlf".
	LineEnding string `yaml:"line_ending" toml:"line_ending"`
	// Indent is the number of spaces per level.
	Indent int `yaml:"indent" toml:"indent"`
	// Go contains Go-specific generation settings.
	Go GoConfig `yaml:"go" toml:"go"`
}

// GoConfig contains Go-specific code generation settings.
type GoConfig struct {
	// Package is the package name for the generated Go code.
	Package string `yaml:"package" toml:"package"`
}

// TypeOverride describes one catalog entry. Omitted keys keep the built-in
// values of the tag.
type TypeOverride struct {
	Host   string `yaml:"host" toml:"host"`
	Go     string `yaml:"go" toml:"go"`
	Wire   *uint8 `yaml:"wire" toml:"wire"`
	Analog *bool  `yaml:"analog" toml:"analog"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level" toml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path" toml:"path"`
}

// Find returns the first configuration file from FileNames present in dir.
func Find(dir string) (string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no configuration file found in %s (looked for %s)", dir, strings.Join(FileNames, ", "))
}

// Load reads the configuration at path, applies defaults and validates it.
// Relative paths inside the file are resolved against the file's directory.
//
// Parameters:
//   - path: a .yaml, .yml or .toml file
//
// Returns:
//   - *Config: the ready-to-use configuration
//   - error: read, parse or validation failure
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ApplyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

// Parse decodes data in the format named by ext (".yaml", ".yml" or ".toml").
// No defaults are applied.
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported configuration format %q", ext)
	}
	return &cfg, nil
}

func (c *Config) resolve(base string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	c.Schema.Dir = abs(c.Schema.Dir)
	c.Gen.Output = abs(c.Gen.Output)
	c.Logging.Path = abs(c.Logging.Path)
}

var projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Validate checks the configuration for errors, such as unknown languages,
// malformed namespaces or invalid glob patterns.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	if config.Project.Name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if !projectNamePattern.MatchString(config.Project.Name) {
		return fmt.Errorf("project name must only contain alphanumeric characters, underscores, and hyphens")
	}

	for _, p := range append(slices.Clone(config.Schema.Include), config.Schema.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("schema: invalid glob pattern %q", p)
		}
	}

	gen := config.Gen
	if gen.Language != "" && !slices.Contains(render.Languages(), strings.ToLower(gen.Language)) {
		return fmt.Errorf("gen: language %q is not supported (allowed: %s)", gen.Language, strings.Join(render.Languages(), ", "))
	}
	for key, ns := range map[string]string{"root_namespace": gen.RootNamespace, "cluster_namespace": gen.ClusterNamespace} {
		if ns != "" && !validNamespace(ns) {
			return fmt.Errorf("gen: %s %q is not a dotted identifier", key, ns)
		}
	}
	for _, imp := range gen.Imports {
		if !validNamespace(imp) {
			return fmt.Errorf("gen: import %q is not a dotted identifier", imp)
		}
	}
	switch gen.CommandProperties {
	case "", string(builder.PropertiesFromAttributes), string(builder.PropertiesFromFields):
		// ok
	default:
		return fmt.Errorf("gen: invalid command_properties: %s (allowed: attributes, fields)", gen.CommandProperties)
	}
	if gen.Workers < 0 {
		return fmt.Errorf("gen: workers must not be negative")
	}
	switch strings.ToLower(gen.LineEnding) {
	case "", "lf", "crlf":
		// ok
	default:
		return fmt.Errorf("gen: invalid line_ending: %s (allowed: lf, crlf)", gen.LineEnding)
	}
	if gen.Indent < 0 || gen.Indent > 16 {
		return fmt.Errorf("gen: indent must be between 0 and 16")
	}
	if gen.Go.Package != "" && !naming.IsIdentifier(gen.Go.Package) {
		return fmt.Errorf("gen: go package %q is not an identifier", gen.Go.Package)
	}

	for tag, t := range config.Types {
		if tag == "" {
			return fmt.Errorf("types: empty type tag")
		}
		if t.Go != "" && strings.ContainsAny(t.Go, " \t") {
			return fmt.Errorf("types: %s: go type %q contains whitespace", tag, t.Go)
		}
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	return nil
}

func validNamespace(ns string) bool {
	for _, seg := range strings.Split(ns, ".") {
		if !naming.IsIdentifier(seg) {
			return false
		}
	}
	return true
}

// ApplyDefaults sets default values for configuration fields that are missing.
//
// Parameters:
//   - config: The Config object to modify.
func ApplyDefaults(config *Config) {
	if config.Schema.Dir == "" {
		config.Schema.Dir = "schema"
	}
	if len(config.Schema.Include) == 0 {
		config.Schema.Include = []string{"**/*.xml"}
	}

	if config.Gen.Language == "" {
		config.Gen.Language = "csharp"
	}
	if config.Gen.Output == "" {
		config.Gen.Output = "generated"
	}
	if config.Gen.CommandProperties == "" {
		config.Gen.CommandProperties = string(builder.PropertiesFromAttributes)
	}
	if config.Gen.LineEnding == "" {
		config.Gen.LineEnding = "lf"
	}
	if config.Gen.Indent == 0 {
		config.Gen.Indent = 4
	}

	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

// BuilderOptions maps the gen section onto builder options. Unset values
// keep the ZigBeeNet defaults.
func (c *Config) BuilderOptions() builder.Options {
	opts := builder.DefaultOptions()
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&opts.RootNamespace, c.Gen.RootNamespace)
	set(&opts.ClusterNamespace, c.Gen.ClusterNamespace)
	set(&opts.BaseType, c.Gen.BaseType)
	set(&opts.DirectionType, c.Gen.DirectionType)
	set(&opts.GeneralCluster, c.Gen.GeneralCluster)
	if c.Gen.Imports != nil {
		opts.Imports = c.Gen.Imports
	}
	if c.Gen.CommandProperties != "" {
		opts.CommandProperties = builder.PropertySource(c.Gen.CommandProperties)
	}
	opts.LenientSource = c.Gen.LenientSource
	opts.AllowEmpty = c.Gen.EmitEmpty
	if c.Gen.StrictLiterals {
		opts.LiteralValidator = builder.IntegerLiterals
	}
	return opts
}

// RenderOptions maps the layout settings onto renderer options.
func (c *Config) RenderOptions() render.Options {
	opts := render.DefaultOptions()
	if c.Gen.Indent > 0 {
		opts.Indent = strings.Repeat(" ", c.Gen.Indent)
	}
	if strings.EqualFold(c.Gen.LineEnding, "crlf") {
		opts.LineEnding = "\r\n"
	}
	opts.GoPackage = c.Gen.Go.Package
	return opts
}

// Catalog returns the built-in catalog with the types section layered on top.
func (c *Config) Catalog() (*types.Catalog, error) {
	base := types.Default()
	if len(c.Types) == 0 {
		return base, nil
	}
	overrides := make(map[string]types.Override, len(c.Types))
	for tag, t := range c.Types {
		overrides[tag] = types.Override{
			HostType: t.Host,
			GoType:   t.Go,
			WireCode: t.Wire,
			Analog:   t.Analog,
		}
	}
	return base.WithOverrides(overrides)
}
