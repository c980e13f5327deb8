// Package gnucash loads an uncompressed GnuCash XML export into a
// ledger.Book.
//
// GnuCash namespaces every element (gnc:, act:, trn:, split:, cmdty:, ts:)
// but the local names are unambiguous within each parent element, so the
// struct tags below match on local names only. Compressed exports are not
// supported; GnuCash must be set to save uncompressed XML.
package gnucash

import "fmt"

// StructuralError reports a required field missing from the source
// document.
type StructuralError struct {
	Element string
	Field   string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s is missing required field %s", e.Element, e.Field)
}

type document struct {
	Book book `xml:"book"`
}

type book struct {
	Commodities  []commodity   `xml:"commodity"`
	Accounts     []account     `xml:"account"`
	Transactions []transaction `xml:"transaction"`
}

type commodity struct {
	Space string `xml:"space"`
	ID    string `xml:"id"`
	Name  string `xml:"name"`
}

type account struct {
	Name        string `xml:"name"`
	ID          string `xml:"id"`
	Type        string `xml:"type"`
	Description string `xml:"description"`
	Parent      string `xml:"parent"`
	Commodity   string `xml:"commodity>id"`
}

type transaction struct {
	Currency    string  `xml:"currency>id"`
	DatePosted  string  `xml:"date-posted>date"`
	Description string  `xml:"description"`
	Splits      []split `xml:"splits>split"`
}

type split struct {
	ReconciledState string `xml:"reconciled-state"`
	Value           string `xml:"value"`
	Quantity        string `xml:"quantity"`
	Account         string `xml:"account"`
	Memo            string `xml:"memo"`
}
