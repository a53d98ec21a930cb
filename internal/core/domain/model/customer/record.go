package customer

import (
	"errors"
	"strings"
	"unicode"

	"orderbot/internal/pkg/errs"
	"orderbot/internal/pkg/guard"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrRecordIsNotConstructed is returned when a zero-value Record is used.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record holds the shipping data of a known customer.
type Record struct {
	name           string
	shippingName   string
	address        string
	specialCarrier bool
	guard          guard.ConstructorGuard
}

// NewRecord builds a customer record. Only the name is mandatory; the
// shipping name may be empty and the address may span several lines.
func NewRecord(name, shippingName, address string, specialCarrier bool) (Record, error) {
	if strings.TrimSpace(name) == "" {
		return Record{}, errs.NewValueIsRequiredError("name")
	}

	return Record{
		name:           name,
		shippingName:   shippingName,
		address:        address,
		specialCarrier: specialCarrier,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the record was created through NewRecord.
func (r Record) Validate() error {
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// Name returns the name the record is filed under.
func (r Record) Name() string {
	return r.name
}

// ShippingName returns the name printed above the address, possibly empty.
func (r Record) ShippingName() string {
	return r.shippingName
}

// Address returns the multi-line postal address.
func (r Record) Address() string {
	return r.address
}

// SpecialCarrier reports whether parcels for this customer go by the special carrier.
func (r Record) SpecialCarrier() bool {
	return r.specialCarrier
}

// FormatName trims a customer name and title-cases it. Every run of letters
// starts a new word, so any non-letter (space, apostrophe, hyphen or digit)
// is a word boundary: "  jane DOE " becomes "Jane Doe" and "o'brien" becomes
// "O'Brien".
func FormatName(raw string) string {
	title := cases.Title(language.Und)
	trimmed := strings.TrimSpace(raw)

	var b strings.Builder
	b.Grow(len(trimmed))

	start := -1
	for i, r := range trimmed {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(title.String(trimmed[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(title.String(trimmed[start:]))
	}

	return b.String()
}
