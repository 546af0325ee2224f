package app

import (
	"context"
	"fmt"

	"github.com/vk/regbuild/internal/catalog"
	"github.com/vk/regbuild/internal/ctxlog"
	"github.com/vk/regbuild/internal/fsutil"
	"github.com/vk/regbuild/internal/merge"
	"github.com/vk/regbuild/internal/model"
	"github.com/vk/regbuild/internal/registry"
	"github.com/vk/regbuild/internal/synth"
)

// Result is the outcome of one build.
type Result struct {
	Document *registry.Document
	Stats    *merge.Stats
	Findings []registry.Finding
	// Written lists the files the document was persisted to, in write order.
	Written []string
}

// Build loads the index, templates and existing registry, merges them, and
// persists the result unless persist is false or the config is a dry run.
func (a *App) Build(ctx context.Context, persist bool) (*Result, error) {
	ctx = ctxlog.With(a.context(ctx), "command", a.config.Command)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build started.")

	index, err := a.loadIndex(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("Index loaded.", "categories", len(index.Categories))

	set, err := a.loadTemplates(ctx)
	if err != nil {
		return nil, err
	}
	s, err := synth.New(set)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare synthesizer: %w", err)
	}
	logger.Debug("Templates loaded.", "templates", len(set.Templates), "extensions", len(set.Extensions))

	existing, err := registry.LoadFile(a.config.ExistingPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing registry: %w", err)
	}
	logger.Debug("Existing registry loaded.", "path", a.config.ExistingPath, "records", existing.Len())

	doc, stats := merge.Merge(ctx, index, existing, s)
	logger.Info("Registry merged.",
		"total", stats.Total,
		"from_existing", stats.FromExisting,
		"created", stats.Created,
		"retained", stats.Retained,
		"dropped", stats.Dropped,
	)

	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("merged registry cannot be written: %w", err)
	}

	findings := registry.Lint(doc)
	for _, f := range findings {
		logger.Warn("Registry record needs attention.", "key", f.Key, "problem", f.Message)
	}

	res := &Result{Document: doc, Stats: stats, Findings: findings}
	if !persist || a.config.DryRun {
		logger.Debug("Persistence skipped.", "dry_run", a.config.DryRun)
		return res, nil
	}

	data, err := registry.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode registry: %w", err)
	}
	paths := a.outputPaths()
	if err := fsutil.WriteFilesAtomic(paths, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write registry: %w", err)
	}
	for _, path := range paths {
		logger.Info("Registry written.", "path", path, "bytes", len(data))
	}
	res.Written = paths
	return res, nil
}

func (a *App) loadIndex(ctx context.Context) (*model.Index, error) {
	if a.config.IndexPath == "" {
		return catalog.Builtin(), nil
	}
	index, err := a.loader.LoadIndex(ctx, a.config.IndexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load index: %w", err)
	}
	return index, nil
}

func (a *App) loadTemplates(ctx context.Context) (*model.TemplateSet, error) {
	var (
		set *model.TemplateSet
		err error
	)
	if a.config.TemplatesPath == "" {
		set, err = a.loader.ParseTemplates(ctx, catalog.TemplatesFile, catalog.Templates())
	} else {
		set, err = a.loader.LoadTemplates(ctx, a.config.TemplatesPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	return set, nil
}

// outputPaths returns the full artifact first, then the client-facing one.
func (a *App) outputPaths() []string {
	var paths []string
	if a.config.FullOutputPath != "" {
		paths = append(paths, a.config.FullOutputPath)
	}
	if a.config.OutputPath != "" && a.config.OutputPath != a.config.FullOutputPath {
		paths = append(paths, a.config.OutputPath)
	}
	return paths
}
