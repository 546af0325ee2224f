package registry

// ValidIdentifier reports whether key can name an API: it must be non-empty
// and consist of single-byte ASCII characters only. Multi-byte keys, such as
// category labels left behind by manual edits, are not API identifiers.
func ValidIdentifier(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		if key[i] >= 0x80 {
			return false
		}
	}
	return true
}
