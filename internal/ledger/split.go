package ledger

import (
	"strings"
	"unicode/utf8"

	"github.com/gnc2ledger-dev/gnc2ledger/internal/amount"
)

// amountColumn is where the amount field is right-aligned to, measured in
// characters across the flag, account name, and amount.
const amountColumn = 76

// Split is one leg of a transaction. Value is the signed amount in the
// transaction's commodity; Quantity is the signed amount in the account's
// native commodity and only matters when the two commodities differ. Both
// are decimal strings straight from the rational decoder.
type Split struct {
	Account    *Account
	Value      string
	Quantity   string
	Reconciled bool
	Memo       string
}

// Line renders the split as a single posting line. In the same-commodity
// case the value is shown once, grouped with two fraction digits. When the
// account's commodity differs, the line carries an @@ total-price
// annotation: the quantity keeps its sign and the transaction-commodity
// side is always shown non-negative.
func (s *Split) Line(reg *Accounts, txnCommodity string, opts Options) (string, error) {
	var value string
	if txnCommodity == s.Account.Commodity {
		formatted, err := amount.Format(s.Value, opts.thousandsSep())
		if err != nil {
			return "", err
		}
		if opts.UseSymbols {
			value = txnCommodity + formatted
		} else {
			value = formatted + " " + txnCommodity
		}
	} else {
		price := strings.TrimPrefix(s.Value, "-")
		if opts.UseSymbols {
			value = s.Account.Commodity + s.Quantity + " @@ " + txnCommodity + price
		} else {
			value = s.Quantity + " " + s.Account.Commodity + " @@ " + price + " " + txnCommodity
		}
	}

	flag := ""
	if s.Reconciled && !opts.AllCleared {
		flag = "* "
	}

	name, err := reg.FullName(s.Account)
	if err != nil {
		return "", err
	}

	// One separating space always, plus padding up to the alignment column.
	// Over-long name/amount combinations clamp to the single space.
	gap := amountColumn - len(flag) - utf8.RuneCountInString(name) - utf8.RuneCountInString(value)
	if gap < 0 {
		gap = 0
	}

	line := "    " + flag + name + " " + strings.Repeat(" ", gap) + value
	if s.Memo != "" && opts.PayeeMetadata {
		line += "  ; Payee: " + s.Memo
	}
	return line, nil
}
