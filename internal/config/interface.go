package config

import (
	"context"

	"github.com/vk/regbuild/internal/model"
)

// Loader is the interface for a format-specific loader of index and template
// sources.
type Loader interface {
	// LoadIndex reads the category index from files or directories.
	LoadIndex(ctx context.Context, paths ...string) (*model.Index, error)

	// LoadTemplates reads a template set from files or directories.
	LoadTemplates(ctx context.Context, paths ...string) (*model.TemplateSet, error)

	// ParseTemplates reads a template set from in-memory source. filename is
	// only used in diagnostics.
	ParseTemplates(ctx context.Context, filename string, src []byte) (*model.TemplateSet, error)
}
