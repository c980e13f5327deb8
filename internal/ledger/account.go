package ledger

import "fmt"

// RootType is the synthetic top of the account hierarchy. Root accounts are
// never rendered and contribute no prefix to descendant full names.
const RootType = "ROOT"

// Account is one node of the account hierarchy. ParentID is a reference
// into the shared registry rather than an owned subtree; the empty string
// marks an account with no parent. Used flips to true the first time a
// split references the account.
type Account struct {
	ID          string
	Name        string
	Description string
	Type        string // ASSET, EXPENSE, ROOT, ...
	ParentID    string
	Commodity   string // native commodity identifier, may be empty
	Used        bool
}

// Accounts is an id-keyed registry preserving document order. Parent links
// resolve through it, so forward references in the source are tolerated.
type Accounts struct {
	order []string
	byID  map[string]*Account
}

// NewAccounts returns an empty registry.
func NewAccounts() *Accounts {
	return &Accounts{byID: make(map[string]*Account)}
}

// Register adds an account. A duplicate id replaces the earlier entry;
// GnuCash guarantees GUID uniqueness, so this is not checked.
func (r *Accounts) Register(a *Account) {
	if _, ok := r.byID[a.ID]; !ok {
		r.order = append(r.order, a.ID)
	}
	r.byID[a.ID] = a
}

// Get returns the account with the given id.
func (r *Accounts) Get(id string) (*Account, bool) {
	a, ok := r.byID[id]
	return a, ok
}

// All returns the accounts in registration order.
func (r *Accounts) All() []*Account {
	out := make([]*Account, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// MarkUsed flags an account as referenced by a split.
func (r *Accounts) MarkUsed(id string) error {
	a, ok := r.byID[id]
	if !ok {
		return &LookupError{ID: id}
	}
	a.Used = true
	return nil
}

// FullName computes the colon-delimited qualified name by walking parent
// links through the registry. A root-typed parent ends the walk without
// contributing a prefix. The source tree is assumed acyclic; a cycle in
// parent links would recurse forever.
func (r *Accounts) FullName(a *Account) (string, error) {
	if a.ParentID == "" {
		return a.Name, nil
	}
	parent, ok := r.byID[a.ParentID]
	if !ok {
		return "", &LookupError{ID: a.ParentID}
	}
	if parent.Type == RootType {
		return a.Name, nil
	}
	prefix, err := r.FullName(parent)
	if err != nil {
		return "", err
	}
	return prefix + ":" + a.Name, nil
}

// Directive returns the two-line account declaration block.
func (r *Accounts) Directive(a *Account) (string, error) {
	name, err := r.FullName(a)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("account %s\n    note %s (type: %s)\n", name, a.Description, a.Type), nil
}
