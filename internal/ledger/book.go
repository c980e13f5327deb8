// Package ledger holds the book model built from a GnuCash document and
// renders it as a journal for the ledger and hledger command-line tools.
package ledger

import "fmt"

// Book is a fully loaded document: every commodity, account, and
// transaction, in source order. It is built once and read-only afterwards.
type Book struct {
	Commodities  []*Commodity
	Accounts     *Accounts
	Transactions []*Transaction

	// UseSymbols records whether commodity identifiers were replaced by
	// display symbols when the book was loaded. Rendering follows it, so
	// amounts are always formatted the way the identifiers were built.
	UseSymbols bool
}

// LookupError reports an account or parent reference that does not resolve
// in the account registry.
type LookupError struct {
	ID string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown account id %q", e.ID)
}
