package customer

import "strings"

// Directory is the read-only lookup from lower-cased customer name to Record.
// The zero value is an empty directory.
type Directory struct {
	records map[string]Record
}

// NewDirectory indexes records by lower-cased name; later records win.
func NewDirectory(records ...Record) Directory {
	indexed := make(map[string]Record, len(records))
	for _, record := range records {
		indexed[strings.ToLower(record.Name())] = record
	}
	return Directory{records: indexed}
}

// Lookup finds a record by name, ignoring case.
func (d Directory) Lookup(name string) (Record, bool) {
	record, ok := d.records[strings.ToLower(name)]
	return record, ok
}

// Len returns the number of known customers.
func (d Directory) Len() int {
	return len(d.records)
}
