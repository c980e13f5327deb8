package gnucash

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/gnc2ledger-dev/gnc2ledger/internal/amount"
	"github.com/gnc2ledger-dev/gnc2ledger/internal/currency"
	"github.com/gnc2ledger-dev/gnc2ledger/internal/ledger"
)

// reconciledMarker is the reconciled-state text GnuCash writes for splits
// matched against a statement.
const reconciledMarker = "y"

// dateLayouts are the timestamp shapes GnuCash writes, most specific first.
var dateLayouts = []string{
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// Load decodes a GnuCash XML export and builds the book model. Processing
// order is fixed: commodities, then accounts (registered immediately, so a
// parent may appear after its child), then transactions, whose splits mark
// their accounts used. With useSymbols set, commodity identifiers are
// replaced by display symbols wherever one is known.
func Load(r io.Reader, useSymbols bool) (*ledger.Book, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing gnucash xml: %w", err)
	}

	b := &ledger.Book{Accounts: ledger.NewAccounts(), UseSymbols: useSymbols}

	for _, c := range doc.Book.Commodities {
		b.Commodities = append(b.Commodities, newCommodity(c, useSymbols))
	}

	for _, a := range doc.Book.Accounts {
		acct, err := newAccount(a, useSymbols)
		if err != nil {
			return nil, err
		}
		b.Accounts.Register(acct)
	}

	for i, t := range doc.Book.Transactions {
		txn, err := newTransaction(t, b.Accounts, useSymbols)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		b.Transactions = append(b.Transactions, txn)
	}

	return b, nil
}

func newCommodity(c commodity, useSymbols bool) *ledger.Commodity {
	id := c.ID
	if useSymbols {
		id = currency.Symbol(id)
	}
	return &ledger.Commodity{Space: c.Space, ID: id, Name: c.Name}
}

func newAccount(a account, useSymbols bool) (*ledger.Account, error) {
	if a.ID == "" {
		return nil, &StructuralError{Element: "account", Field: "id"}
	}
	if a.Name == "" {
		return nil, &StructuralError{Element: "account", Field: "name"}
	}
	if a.Type == "" {
		return nil, &StructuralError{Element: "account", Field: "type"}
	}

	cmdty := a.Commodity
	if useSymbols && cmdty != "" {
		cmdty = currency.Symbol(cmdty)
	}

	return &ledger.Account{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Type:        a.Type,
		ParentID:    a.Parent,
		Commodity:   cmdty,
	}, nil
}

func newTransaction(t transaction, accounts *ledger.Accounts, useSymbols bool) (*ledger.Transaction, error) {
	if t.DatePosted == "" {
		return nil, &StructuralError{Element: "transaction", Field: "date-posted"}
	}
	date, err := parseDate(t.DatePosted)
	if err != nil {
		return nil, err
	}

	if t.Currency == "" {
		return nil, &StructuralError{Element: "transaction", Field: "currency"}
	}
	cmdty := t.Currency
	if useSymbols {
		cmdty = currency.Symbol(cmdty)
	}

	txn := &ledger.Transaction{
		Date:        date,
		Description: t.Description,
		Commodity:   cmdty,
	}
	for i, s := range t.Splits {
		sp, err := newSplit(s, accounts)
		if err != nil {
			return nil, fmt.Errorf("split %d: %w", i+1, err)
		}
		txn.Splits = append(txn.Splits, sp)
	}
	return txn, nil
}

func newSplit(s split, accounts *ledger.Accounts) (*ledger.Split, error) {
	if s.ReconciledState == "" {
		return nil, &StructuralError{Element: "split", Field: "reconciled-state"}
	}
	if s.Account == "" {
		return nil, &StructuralError{Element: "split", Field: "account"}
	}
	if err := accounts.MarkUsed(s.Account); err != nil {
		return nil, err
	}
	acct, _ := accounts.Get(s.Account)

	if s.Value == "" {
		return nil, &StructuralError{Element: "split", Field: "value"}
	}
	value, err := amount.Decode(s.Value)
	if err != nil {
		return nil, err
	}

	if s.Quantity == "" {
		return nil, &StructuralError{Element: "split", Field: "quantity"}
	}
	quantity, err := amount.Decode(s.Quantity)
	if err != nil {
		return nil, err
	}

	return &ledger.Split{
		Account:    acct,
		Value:      value,
		Quantity:   quantity,
		Reconciled: s.ReconciledState == reconciledMarker,
		Memo:       s.Memo,
	}, nil
}

func parseDate(raw string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var parsed time.Time
		parsed, err = time.Parse(layout, raw)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing transaction date %q: %w", raw, err)
}
