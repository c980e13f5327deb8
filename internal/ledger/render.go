package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Options controls how a Book is rendered. The zero value renders every
// section, with ISO dates, currency codes, and comma-grouped amounts.
type Options struct {
	// UseSymbols formats amounts with a prefixed symbol instead of a
	// suffixed code. Render overwrites it from Book.UseSymbols, since the
	// identifier substitution already happened at load time and the two
	// must agree.
	UseSymbols bool

	// AllCleared marks every transaction as cleared and suppresses the
	// per-split reconciliation flags.
	AllCleared bool

	// PayeeMetadata appends split memos as "; Payee:" annotations.
	PayeeMetadata bool

	// EmacsHeader prepends a ledger-mode modeline block naming Filename.
	EmacsHeader bool
	Filename    string

	SkipCommodities  bool
	SkipAccounts     bool
	SkipTransactions bool

	// DateFormat is a strftime-style pattern; empty means %Y-%m-%d.
	DateFormat string

	// ThousandsSep groups integer digits in amounts; empty means ",".
	ThousandsSep string

	// Now stamps the emacs header; nil means time.Now.
	Now func() time.Time
}

func (o Options) thousandsSep() string {
	if o.ThousandsSep == "" {
		return ","
	}
	return o.ThousandsSep
}

func (o Options) formatDate(t time.Time) string {
	f := o.DateFormat
	if f == "" {
		f = "%Y-%m-%d"
	}
	return strftime(t, f)
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// Render assembles the journal text: an optional editor header, commodity
// directives, directives for the accounts at least one split touched, and
// transactions sorted ascending by date. The sort is stable, so equal dates
// keep their source order.
func Render(b *Book, opts Options) (string, error) {
	opts.UseSymbols = b.UseSymbols

	var out strings.Builder

	if opts.EmacsHeader {
		out.WriteString(emacsHeader(opts.Filename, opts.now()))
	}

	if !opts.SkipCommodities {
		out.WriteString(";; Commodity Definitions\n\n")
		for _, c := range b.Commodities {
			out.WriteString("\n")
			out.WriteString(c.Directive())
		}
	}

	if !opts.SkipAccounts {
		out.WriteString("\n\n;; Account Definitions\n\n")
		for _, a := range b.Accounts.All() {
			if !a.Used {
				continue
			}
			block, err := b.Accounts.Directive(a)
			if err != nil {
				return "", err
			}
			out.WriteString("\n")
			out.WriteString(block)
		}
	}

	if !opts.SkipTransactions {
		out.WriteString("\n\n;;Transactions\n\n")
		txns := make([]*Transaction, len(b.Transactions))
		copy(txns, b.Transactions)
		sort.SliceStable(txns, func(i, j int) bool {
			return txns[i].Date.Before(txns[j].Date)
		})
		for _, t := range txns {
			block, err := t.Block(b.Accounts, opts)
			if err != nil {
				return "", err
			}
			out.WriteString("\n")
			out.WriteString(block)
		}
	}

	return out.String(), nil
}

// emacsHeader returns a modeline block that puts Emacs buffers into
// ledger-mode.
func emacsHeader(filename string, now time.Time) string {
	return fmt.Sprintf(
		";; -*- Mode: ledger -*- \n"+
			";; \n"+
			";; Filename: %s \n"+
			";; Description: GnuCash transaction journal converted with gnc2ledger\n"+
			";; Time-stamp: <%s> \n\n\n",
		filename, now.Format("2006-01-02"),
	)
}
