package registry

import (
	"strings"

	"github.com/vk/regbuild/internal/model"
)

// Find returns the record stored under name. It fails with ErrNotFound for
// an absent name and with the decode error for a record that is present but
// not a definition.
func (d *Document) Find(name string) (model.Definition, error) {
	return d.Get(name)
}

// Search returns, in document order, the records whose name or description
// contains keyword, ignoring case. Records that cannot be decoded are
// skipped.
func (d *Document) Search(keyword string) []model.Definition {
	needle := strings.ToLower(keyword)
	return d.filter(func(def model.Definition) bool {
		return strings.Contains(strings.ToLower(def.Name), needle) ||
			strings.Contains(strings.ToLower(def.Description), needle)
	})
}

// ByCategory returns, in document order, the records whose category is
// exactly category.
func (d *Document) ByCategory(category string) []model.Definition {
	return d.filter(func(def model.Definition) bool {
		return def.Category == category
	})
}

func (d *Document) filter(keep func(model.Definition) bool) []model.Definition {
	var out []model.Definition
	for _, key := range d.keys {
		def, err := d.Get(key)
		if err != nil {
			continue
		}
		if keep(def) {
			out = append(out, def)
		}
	}
	return out
}
