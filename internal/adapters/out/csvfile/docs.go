// Package csvfile loads the item catalog and the customer directory from
// comma-separated files and appends unseen customers to a CSV log.
//
// Loading never fails hard. A missing file yields an empty catalog or
// directory, and a malformed row is skipped. Both are reported through the
// logger so the bot keeps serving with whatever data it could read.
//
// # Catalog file
//
//	code,name,price_1_0,price_0_5,price_0_25
//	S755,Blue Dream,300,160,90
//	X100,Only Whole,120
//
// # Customer file
//
//	name,shipping_name,address,usps
//	Jane Doe,Jane D.,1 Main St\nSpringfield,1
//
// The two-character sequence \n inside an address becomes a line break.
package csvfile
