package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/kernel"
	"orderbot/internal/pkg/errs"
)

const (
	minCatalogColumns = 3
	maxCatalogColumns = 5
)

// catalogPriceColumns maps column positions to the size they price.
var catalogPriceColumns = []struct {
	index int
	size  kernel.Size
}{
	{index: 2, size: kernel.SizeWhole},
	{index: 3, size: kernel.SizeHalf},
	{index: 4, size: kernel.SizeQuarter},
}

// LoadCatalog reads the catalog file at path. A missing or unreadable file
// is logged and yields an empty catalog.
func LoadCatalog(path string, logger *slog.Logger) catalog.Catalog {
	logger = logger.With("component", "catalog_loader", "file", path)

	f, err := os.Open(path)
	if err != nil {
		logger.Error("Failed to open catalog file", "error", err)
		return catalog.NewCatalog()
	}
	defer f.Close()

	cat := ReadCatalog(f, logger)
	logger.Info("Catalog loaded", "entries", cat.Len())
	return cat
}

// ReadCatalog parses catalog rows from r. The first record is a header and
// is skipped. Rows that cannot be parsed are logged and skipped.
func ReadCatalog(r io.Reader, logger *slog.Logger) catalog.Catalog {
	reader := csv.NewReader(skipBOM(r))
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if !errors.Is(err, io.EOF) {
			logger.Error("Failed to read catalog header", "error", err)
		}
		return catalog.NewCatalog()
	}

	var entries []catalog.Entry
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line, _ := reader.FieldPos(0)
			logger.Error("Skipping unreadable catalog row", "line", line, "error", err)
			continue
		}

		entry, err := parseCatalogRecord(record)
		if err != nil {
			line, _ := reader.FieldPos(0)
			logger.Error("Skipping catalog row", "line", line, "error", err)
			continue
		}
		entries = append(entries, entry)
	}

	return catalog.NewCatalog(entries...)
}

func parseCatalogRecord(record []string) (catalog.Entry, error) {
	if len(record) < minCatalogColumns || len(record) > maxCatalogColumns {
		return catalog.Entry{}, errs.NewValueIsOutOfRangeError("columns", len(record), minCatalogColumns, maxCatalogColumns)
	}

	prices := make(map[kernel.Size]int64, len(catalogPriceColumns))
	for _, col := range catalogPriceColumns {
		if col.index >= len(record) {
			break
		}
		raw := strings.TrimSpace(record[col.index])
		if raw == "" {
			continue
		}

		price, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return catalog.Entry{}, fmt.Errorf("item %s: price for size %s: %w", record[0], col.size, err)
		}
		prices[col.size] = price
	}

	return catalog.NewEntry(record[0], strings.TrimSpace(record[1]), prices)
}
