// Package services contains the stateless domain services of the order bot:
// PriceResolver picks the package size and price for a requested quantity and
// SummaryRenderer turns a finished order session into the receipt text.
package services
