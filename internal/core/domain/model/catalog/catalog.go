package catalog

// Catalog is the read-only lookup from item code to Entry.
// The zero value is an empty catalog.
type Catalog struct {
	entries map[string]Entry
}

// NewCatalog indexes entries by code. A later entry with the same code
// replaces an earlier one, matching a re-listed row in the source sheet.
func NewCatalog(entries ...Entry) Catalog {
	indexed := make(map[string]Entry, len(entries))
	for _, entry := range entries {
		indexed[entry.Code()] = entry
	}
	return Catalog{entries: indexed}
}

// Lookup finds an entry by code, ignoring case and surrounding whitespace.
func (c Catalog) Lookup(code string) (Entry, bool) {
	entry, ok := c.entries[NormalizeCode(code)]
	return entry, ok
}

// Len returns the number of distinct item codes.
func (c Catalog) Len() int {
	return len(c.entries)
}
