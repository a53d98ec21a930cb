package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"
)

// NewCustomerFile appends formatted customer names to a one-column CSV
// file, creating it on first use.
type NewCustomerFile struct {
	mu   sync.Mutex
	path string
}

// NewNewCustomerFile creates a log writing to path.
func NewNewCustomerFile(path string) *NewCustomerFile {
	return &NewCustomerFile{path: path}
}

// Append writes one row holding formattedName.
func (l *NewCustomerFile) Append(_ context.Context, formattedName string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open new customer file: %w", err)
	}

	w := csv.NewWriter(f)
	if err = w.Write([]string{formattedName}); err != nil {
		_ = f.Close()
		return fmt.Errorf("write new customer: %w", err)
	}
	w.Flush()
	if err = w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush new customer: %w", err)
	}

	return f.Close()
}
