// Package ledger holds the quantity reconciliation rules for garment orders.
//
// A size ledger fixes how many units of each size were ordered. Units then move
// through batch allocation, picking, QC review and dispatch. Every function here
// is pure: callers load rows, convert them into ledger values and persist the
// result themselves.
package ledger
