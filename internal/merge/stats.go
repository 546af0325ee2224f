package merge

// CategoryStats counts the outcome for one index category.
type CategoryStats struct {
	Name string
	// Listed is the length of the category's identifier list, repeats
	// included.
	Listed       int
	FromExisting int
	Created      int
}

// Stats summarises a merge for operator reporting.
type Stats struct {
	// Total is the number of keys in the merged document.
	Total int
	// FromExisting counts records copied from the existing document,
	// Retained included.
	FromExisting int
	Created      int
	// Retained counts existing records kept although the index does not
	// list them.
	Retained int
	// Dropped counts existing keys discarded by the validity rule.
	Dropped int
	// Duplicates counts index occurrences skipped because the identifier
	// had already been placed.
	Duplicates int
	Categories []CategoryStats
}

// Category returns the stats of the named category.
func (s *Stats) Category(name string) (CategoryStats, bool) {
	for _, c := range s.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return CategoryStats{}, false
}
