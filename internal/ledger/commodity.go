package ledger

import "fmt"

// Commodity is a currency or security declared by the source document. When
// the book was loaded in symbol mode the ID already carries the display
// symbol instead of the code.
type Commodity struct {
	Space string // namespace, e.g. ISO4217 or CURRENCY
	ID    string
	Name  string
}

// Directive returns the two-line commodity declaration block.
func (c *Commodity) Directive() string {
	return fmt.Sprintf("commodity %s\n    note %s (%s:%s)\n", c.ID, c.Name, c.Space, c.ID)
}
