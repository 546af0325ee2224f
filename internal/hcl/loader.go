package hcl

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/regbuild/internal/ctxlog"
	"github.com/vk/regbuild/internal/fsutil"
	"github.com/vk/regbuild/internal/model"
	"github.com/vk/regbuild/internal/schema"
)

// ErrNoFiles is returned when a configured path contains no .hcl files.
var ErrNoFiles = errors.New("no .hcl files found")

// Loader reads index and template files.
type Loader struct{}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadIndex reads every .hcl file under the given paths and merges their
// `category` blocks into one index. Files are processed in lexical order and
// blocks in declaration order; a category declared twice is extended.
func (l *Loader) LoadIndex(ctx context.Context, paths ...string) (*model.Index, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL index loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}

	parser := hclparse.NewParser()
	index := &model.Index{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.IndexFile
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, c := range root.Categories {
			ids, err := translateCategory(c)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			index.Add(c.Name, ids...)
		}
		logger.Debug("Loaded index file.", "file", file, "categories", len(root.Categories))
	}

	logger.Debug("HCL index loading complete.", "categories", len(index.Categories))
	return index, nil
}

// LoadTemplates reads every .hcl file under the given paths into a single
// template set.
func (l *Loader) LoadTemplates(ctx context.Context, paths ...string) (*model.TemplateSet, error) {
	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}

	parser := hclparse.NewParser()
	set := model.NewTemplateSet()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if err := l.decodeTemplates(ctx, file, hclFile, set); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// ParseTemplates decodes a template set from in-memory source, such as the
// embedded defaults. filename is only used in diagnostics.
func (l *Loader) ParseTemplates(ctx context.Context, filename string, src []byte) (*model.TemplateSet, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	set := model.NewTemplateSet()
	if err := l.decodeTemplates(ctx, filename, hclFile, set); err != nil {
		return nil, err
	}
	return set, nil
}

func (l *Loader) decodeTemplates(ctx context.Context, filename string, hclFile *hcl.File, set *model.TemplateSet) error {
	logger := ctxlog.FromContext(ctx)

	var root schema.TemplatesFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	for _, t := range root.Templates {
		if _, exists := set.Templates[t.Name]; exists {
			return fmt.Errorf("in %s: template %q declared more than once", filename, t.Name)
		}
		tpl, err := translateTemplate(ctx, t)
		if err != nil {
			return fmt.Errorf("in %s: %w", filename, err)
		}
		set.Templates[t.Name] = tpl
	}
	for _, e := range root.Extensions {
		if _, exists := set.Extensions[e.Identifier]; exists {
			return fmt.Errorf("in %s: extension %q declared more than once", filename, e.Identifier)
		}
		ext, err := translateExtension(ctx, e)
		if err != nil {
			return fmt.Errorf("in %s: %w", filename, err)
		}
		set.Extensions[e.Identifier] = ext
	}

	logger.Debug("Loaded template file.", "file", filename, "templates", len(root.Templates), "extensions", len(root.Extensions))
	return nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl
// files found, without duplicates.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
			for _, p := range found {
				add(p)
			}
		} else if filepath.Ext(path) == ".hcl" {
			add(path)
		}
	}

	if len(allFiles) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoFiles, paths)
	}
	return allFiles, nil
}
