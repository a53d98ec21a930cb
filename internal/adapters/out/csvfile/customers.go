package csvfile

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"orderbot/internal/core/domain/model/customer"
)

const (
	columnName         = "name"
	columnShippingName = "shipping_name"
	columnAddress      = "address"
	columnUSPS         = "usps"
)

// LoadCustomers reads the customer directory file at path. A missing or
// unreadable file is logged and yields an empty directory.
func LoadCustomers(path string, logger *slog.Logger) customer.Directory {
	logger = logger.With("component", "customer_loader", "file", path)

	f, err := os.Open(path)
	if err != nil {
		logger.Error("Failed to open customer file", "error", err)
		return customer.NewDirectory()
	}
	defer f.Close()

	dir := ReadCustomers(f, logger)
	logger.Info("Customers loaded", "customers", dir.Len())
	return dir
}

// ReadCustomers parses customer rows from r, locating columns by the header
// names. Columns missing from a row read as empty.
func ReadCustomers(r io.Reader, logger *slog.Logger) customer.Directory {
	reader := csv.NewReader(skipBOM(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			logger.Error("Failed to read customer header", "error", err)
		}
		return customer.NewDirectory()
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	if _, ok := columns[columnName]; !ok {
		logger.Error("Customer file has no name column", "header", header)
		return customer.NewDirectory()
	}

	field := func(record []string, column string) string {
		i, ok := columns[column]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var records []customer.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line, _ := reader.FieldPos(0)
			logger.Error("Skipping unreadable customer row", "line", line, "error", err)
			continue
		}

		rec, err := customer.NewRecord(
			field(row, columnName),
			field(row, columnShippingName),
			strings.ReplaceAll(field(row, columnAddress), `\n`, "\n"),
			parseUSPS(field(row, columnUSPS)) == 1,
		)
		if err != nil {
			line, _ := reader.FieldPos(0)
			logger.Error("Skipping customer row", "line", line, "error", err)
			continue
		}
		records = append(records, rec)
	}

	return customer.NewDirectory(records...)
}

// parseUSPS reads the carrier flag. Anything that is not an integer counts as 0.
func parseUSPS(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return v
}
