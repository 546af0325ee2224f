package merge

import (
	"context"

	"github.com/vk/regbuild/internal/ctxlog"
	"github.com/vk/regbuild/internal/model"
	"github.com/vk/regbuild/internal/registry"
)

// Synthesizer builds a record for an identifier that has none.
type Synthesizer interface {
	Synthesize(identifier, category string) model.Definition
}

// Merge builds the merged document from index and existing. A nil existing
// document is treated as empty. The context only supplies the logger.
func Merge(ctx context.Context, index *model.Index, existing *registry.Document, synth Synthesizer) (*registry.Document, *Stats) {
	logger := ctxlog.FromContext(ctx)
	if existing == nil {
		existing = registry.New()
	}
	if index == nil {
		index = &model.Index{}
	}

	merged := registry.New()
	stats := &Stats{Categories: make([]CategoryStats, 0, len(index.Categories))}

	for _, category := range index.Categories {
		cs := CategoryStats{Name: category.Name, Listed: len(category.Identifiers)}
		for _, id := range category.Identifiers {
			switch {
			case merged.Has(id):
				stats.Duplicates++
				logger.Debug("Identifier already placed, skipping repeat.", "identifier", id, "category", category.Name)
			case merged.CopyFrom(existing, id):
				cs.FromExisting++
				stats.FromExisting++
			default:
				merged.Set(id, synth.Synthesize(id, category.Name))
				cs.Created++
				stats.Created++
				logger.Debug("Synthesized definition.", "identifier", id, "category", category.Name)
			}
		}
		stats.Categories = append(stats.Categories, cs)
	}

	for _, key := range existing.Keys() {
		if merged.Has(key) {
			continue
		}
		if !registry.ValidIdentifier(key) {
			stats.Dropped++
			logger.Debug("Dropping existing entry with invalid identifier.", "key", key)
			continue
		}
		merged.CopyFrom(existing, key)
		stats.FromExisting++
		stats.Retained++
		logger.Debug("Retained existing definition not in index.", "identifier", key)
	}

	stats.Total = merged.Len()
	return merged, stats
}
