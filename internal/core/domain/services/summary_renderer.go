package services

import (
	"fmt"
	"strings"
	"time"

	"orderbot/internal/core/domain/model/catalog"
	"orderbot/internal/core/domain/model/customer"
	"orderbot/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

var (
	// SmallOrderThreshold is the subtotal at or below which shipping is charged.
	SmallOrderThreshold = decimal.NewFromInt(500)
	// SmallShippingCharge is the flat shipping charge for small orders.
	SmallShippingCharge = decimal.NewFromInt(25)
)

// FreeItemMaxQuantity is the total quantity at or below which the order earns a free item.
const FreeItemMaxQuantity = 1.0

// SummaryRenderer renders the receipt of an order session. It never mutates
// the session, so rendering twice yields the same text apart from the date.
//
// Receipt layout:
//
//	10/15
//	#
//	Jane Doe
//
//	#S755 / 2.0 P Widget = $40
//
//	Small Shipping $25
//
//	Total: $65
//
//	Address:
//
//	12 Main St
//	Springfield
//
//	Paid:
type SummaryRenderer struct {
	catalog   catalog.Catalog
	directory customer.Directory
	now       func() time.Time
}

// NewSummaryRenderer creates a renderer reading item names from cat, addresses
// from dir and the receipt date from now.
func NewSummaryRenderer(cat catalog.Catalog, dir customer.Directory, now func() time.Time) SummaryRenderer {
	return SummaryRenderer{
		catalog:   cat,
		directory: dir,
		now:       now,
	}
}

// Render produces the receipt text for session.
func (r SummaryRenderer) Render(session *order.Session) string {
	var b strings.Builder

	customerName := customer.FormatName(session.CustomerName())
	fmt.Fprintf(&b, "%s\n#\n%s\n\n", r.now().Format("01/02"), customerName)

	for _, item := range session.Items() {
		entry, _ := r.catalog.Lookup(item.Code())
		fmt.Fprintf(&b, "#%s / %s P %s = %s\n",
			item.Code(), item.Quantity(), entry.Name(), FormatPrice(item.Total()))
	}

	subtotal := session.Subtotal()
	total := subtotal
	if subtotal.LessThanOrEqual(SmallOrderThreshold) {
		fmt.Fprintf(&b, "\nSmall Shipping %s\n", FormatPrice(SmallShippingCharge))
		total = subtotal.Add(SmallShippingCharge)
	}

	if session.TotalQuantity() <= FreeItemMaxQuantity {
		b.WriteString("1 Free Edible\n")
	}

	fmt.Fprintf(&b, "\nTotal: %s\n\nAddress:\n", FormatPrice(total))

	// Looked up by the formatted name, unlike order start which uses the raw one.
	if record, ok := r.directory.Lookup(strings.ToLower(customerName)); ok {
		if record.SpecialCarrier() {
			b.WriteString("!! USPS !!\n\n")
		} else {
			b.WriteString("\n")
		}

		if record.ShippingName() != "" {
			fmt.Fprintf(&b, "%s\n\n", record.ShippingName())
		}
		fmt.Fprintf(&b, "%s\n", record.Address())
	}

	b.WriteString("\nPaid:\n")
	return b.String()
}

// FormatPrice renders a dollar amount rounded to the nearest whole dollar,
// with halves rounded up: 12.5 -> "$13".
func FormatPrice(amount decimal.Decimal) string {
	return "$" + amount.Round(0).String()
}
