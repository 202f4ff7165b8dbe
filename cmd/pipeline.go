package cmd

import (
	"fmt"
	"log/slog"

	"github.com/zigbeenet/zcl-gen/internal/builder"
	"github.com/zigbeenet/zcl-gen/internal/config"
	"github.com/zigbeenet/zcl-gen/internal/generator"
	"github.com/zigbeenet/zcl-gen/internal/render"
)

// genFlags are command line overrides of the gen section.
type genFlags struct {
	language string
	output   string
	workers  int
}

// loadConfig reads the configuration named by path, or the one found in the
// working directory when path is empty, and applies flag overrides.
func loadConfig(path string, flags genFlags) (*config.Config, error) {
	if path == "" {
		found, err := config.Find(".")
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flags.language != "" {
		cfg.Gen.Language = flags.language
	}
	if flags.output != "" {
		cfg.Gen.Output = flags.output
	}
	if flags.workers > 0 {
		cfg.Gen.Workers = flags.workers
	}
	return cfg, nil
}

// newGenerator wires catalog, builder and renderer from cfg into a Generator
// writing to sink.
func newGenerator(cfg *config.Config, sink generator.Sink, logger *slog.Logger, skipManifest bool) (*generator.Generator, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("type catalog: %w", err)
	}
	r, err := render.Lookup(cfg.Gen.Language, cfg.RenderOptions())
	if err != nil {
		return nil, err
	}
	b := builder.New(catalog, cfg.BuilderOptions())
	return generator.New(b, r, sink, logger, generator.Options{
		Workers:      cfg.Gen.Workers,
		SkipManifest: skipManifest,
	}), nil
}

// discover lists the schema files selected by cfg. Finding none is an error.
func discover(cfg *config.Config) ([]string, error) {
	files, err := generator.Discover(cfg.Schema.Dir, cfg.Schema.Include, cfg.Schema.Exclude)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no schema files found in %s", cfg.Schema.Dir)
	}
	return files, nil
}
