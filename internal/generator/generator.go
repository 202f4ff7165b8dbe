// Package generator drives a generation run: it loads schema documents,
// expands them into units, builds and renders each unit concurrently and
// hands the results to a Sink.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/zigbeenet/zcl-gen/internal/builder"
	"github.com/zigbeenet/zcl-gen/internal/render"
	"github.com/zigbeenet/zcl-gen/internal/schema"
)

// Options contains optional settings for a run.
type Options struct {
	// Workers bounds the number of units processed at once. Zero means
	// GOMAXPROCS.
	Workers int
	// SkipManifest disables writing manifest.yaml.
	SkipManifest bool
}

// Generator runs the schema to source pipeline.
type Generator struct {
	builder  *builder.Builder
	renderer render.Renderer
	sink     Sink
	logger   *slog.Logger
	opts     Options
}

// New creates a Generator. A nil logger discards log output.
func New(b *builder.Builder, r render.Renderer, sink Sink, logger *slog.Logger, opts Options) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{builder: b, renderer: r, sink: sink, logger: logger, opts: opts}
}

// Status is the outcome of one unit.
type Status string

const (
	StatusWritten Status = "written"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// UnitResult is the outcome of one unit.
type UnitResult struct {
	Unit   builder.UnitID
	Source string
	Path   string
	Status Status
	Err    error
}

// FileError is a schema file that could not be loaded.
type FileError struct {
	Path string
	Err  error
}

// Report summarizes a run. Results are in plan order.
type Report struct {
	RunID      string
	Results    []UnitResult
	FileErrors []FileError
}

// Count returns the number of results with status s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Failed returns the failed units.
func (r *Report) Failed() []UnitResult {
	var out []UnitResult
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			out = append(out, res)
		}
	}
	return out
}

// Err joins every file and unit failure, or returns nil when the run was
// clean.
func (r *Report) Err() error {
	var errs []error
	for _, f := range r.FileErrors {
		errs = append(errs, f.Err)
	}
	for _, res := range r.Failed() {
		errs = append(errs, res.Err)
	}
	return errors.Join(errs...)
}

// Run loads files, generates every unit and writes the outputs to the sink.
// Failures are confined to their file or unit and recorded in the report.
// The returned error is non-nil only when the run itself could not complete,
// e.g. because ctx was cancelled or the manifest could not be written.
//
// Parameters:
//   - ctx: cancels outstanding units
//   - files: schema files, usually from Discover
//
// Returns:
//   - *Report: per-unit results, also on error
//   - error: a run-level failure
func (g *Generator) Run(ctx context.Context, files []string) (*Report, error) {
	report := &Report{RunID: uuid.NewString()}
	logger := g.logger.With("run", report.RunID, "lang", g.renderer.Language())
	logger.Info("generation started", "files", len(files))

	var docs []*schema.Document
	for _, path := range files {
		doc, err := schema.Load(path)
		if err != nil {
			logger.Error("schema load failed", "file", path, "error", err)
			report.FileErrors = append(report.FileErrors, FileError{Path: path, Err: err})
			continue
		}
		docs = append(docs, doc)
	}

	units := Plan(docs, g.builder, g.renderer.Extension())
	report.Results = make([]UnitResult, len(units))

	workers := g.opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, u := range units {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report.Results[i] = g.process(logger, u)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return report, fmt.Errorf("generation interrupted: %w", err)
	}

	if !g.opts.SkipManifest {
		if err := g.writeManifest(report); err != nil {
			return report, err
		}
	}

	logger.Info("generation finished",
		"written", report.Count(StatusWritten),
		"skipped", report.Count(StatusSkipped),
		"failed", report.Count(StatusFailed),
		"file_errors", len(report.FileErrors))
	return report, nil
}

// process builds, renders and writes one unit. It never returns an error:
// failures are part of the result so siblings keep running.
func (g *Generator) process(logger *slog.Logger, u Unit) UnitResult {
	res := UnitResult{Unit: u.ID, Source: u.Source, Path: u.Path}

	ns, err := u.Build(g.builder)
	if err != nil {
		if errors.Is(err, builder.ErrEmptyUnit) {
			logger.Debug("unit skipped", "unit", u.ID.String(), "reason", "empty")
			res.Status = StatusSkipped
			return res
		}
		logger.Warn("unit failed", "unit", u.ID.String(), "file", u.Source, "error", err)
		res.Status, res.Err = StatusFailed, err
		return res
	}

	out, err := g.renderer.Render(ns)
	if err != nil {
		err = &builder.UnitError{Unit: u.ID, Err: err}
		logger.Warn("unit render failed", "unit", u.ID.String(), "error", err)
		res.Status, res.Err = StatusFailed, err
		return res
	}

	if err := g.sink.Write(u.Path, out); err != nil {
		err = &builder.UnitError{Unit: u.ID, Err: err}
		logger.Error("unit write failed", "unit", u.ID.String(), "path", u.Path, "error", err)
		res.Status, res.Err = StatusFailed, err
		return res
	}

	logger.Debug("unit written", "unit", u.ID.String(), "path", u.Path, "bytes", len(out))
	res.Status = StatusWritten
	return res
}

func (g *Generator) writeManifest(report *Report) error {
	var paths []string
	for _, res := range report.Results {
		if res.Status == StatusWritten {
			paths = append(paths, res.Path)
		}
	}
	data, err := NewManifest(g.renderer.Language(), paths).Encode()
	if err != nil {
		return err
	}
	if err := g.sink.Write(ManifestName, data); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
