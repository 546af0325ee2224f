package model

// Category is one named group of identifiers. Identifier order is kept as
// declared so generated output stays reviewable.
type Category struct {
	Name        string
	Identifiers []string
}

// Index maps category names to identifier lists, in declaration order. An
// identifier may appear in several categories, or more than once in one.
type Index struct {
	Categories []Category
}

// Add appends identifiers to the named category, creating it at the end of
// the index if it does not exist yet.
func (x *Index) Add(name string, identifiers ...string) {
	for i := range x.Categories {
		if x.Categories[i].Name == name {
			x.Categories[i].Identifiers = append(x.Categories[i].Identifiers, identifiers...)
			return
		}
	}
	ids := make([]string, len(identifiers))
	copy(ids, identifiers)
	x.Categories = append(x.Categories, Category{Name: name, Identifiers: ids})
}

// Names returns the category names in index order.
func (x *Index) Names() []string {
	names := make([]string, 0, len(x.Categories))
	for _, c := range x.Categories {
		names = append(names, c.Name)
	}
	return names
}

// Clone returns a deep copy of the index.
func (x *Index) Clone() *Index {
	out := &Index{Categories: make([]Category, len(x.Categories))}
	for i, c := range x.Categories {
		ids := make([]string, len(c.Identifiers))
		copy(ids, c.Identifiers)
		out.Categories[i] = Category{Name: c.Name, Identifiers: ids}
	}
	return out
}
