package ledger

import (
	"strings"
	"time"
)

// Transaction is a dated, described set of splits sharing one commodity.
// Splits keep their source order.
type Transaction struct {
	Date        time.Time
	Description string
	Commodity   string
	Splits      []*Split
}

// Block renders the transaction as a multi-line journal entry ending in a
// newline. The `* ` cleared marker on the header line appears iff the whole
// render was requested as cleared, in which case the per-split flags are
// suppressed in favor of it.
func (t *Transaction) Block(reg *Accounts, opts Options) (string, error) {
	var b strings.Builder
	b.WriteString(opts.formatDate(t.Date))
	b.WriteString(" ")
	if opts.AllCleared {
		b.WriteString("* ")
	}
	b.WriteString(t.Description)
	b.WriteString("\n")

	for _, s := range t.Splits {
		line, err := s.Line(reg, t.Commodity, opts)
		if err != nil {
			return "", err
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String(), nil
}
