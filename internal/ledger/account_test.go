package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccounts() *Accounts {
	reg := NewAccounts()
	reg.Register(&Account{ID: "root", Name: "Root Account", Type: RootType})
	reg.Register(&Account{ID: "assets", Name: "Assets", Type: "ASSET", ParentID: "root", Commodity: "USD"})
	reg.Register(&Account{ID: "checking", Name: "Checking", Type: "BANK", ParentID: "assets", Commodity: "USD", Description: "Main checking"})
	reg.Register(&Account{ID: "expenses", Name: "Expenses", Type: "EXPENSE", ParentID: "root", Commodity: "USD"})
	return reg
}

func TestFullName(t *testing.T) {
	reg := newTestAccounts()

	checking, ok := reg.Get("checking")
	require.True(t, ok)
	name, err := reg.FullName(checking)
	require.NoError(t, err)
	assert.Equal(t, "Assets:Checking", name)
}

func TestFullName_RootNeverPrefixes(t *testing.T) {
	reg := newTestAccounts()

	assets, ok := reg.Get("assets")
	require.True(t, ok)
	name, err := reg.FullName(assets)
	require.NoError(t, err)
	assert.Equal(t, "Assets", name)

	// Deeper nesting still omits the root segment.
	reg.Register(&Account{ID: "travel", Name: "Travel", Type: "EXPENSE", ParentID: "expenses"})
	reg.Register(&Account{ID: "hotels", Name: "Hotels", Type: "EXPENSE", ParentID: "travel"})
	hotels, _ := reg.Get("hotels")
	name, err = reg.FullName(hotels)
	require.NoError(t, err)
	assert.Equal(t, "Expenses:Travel:Hotels", name)
}

func TestFullName_NoParent(t *testing.T) {
	reg := NewAccounts()
	reg.Register(&Account{ID: "orphan", Name: "Orphan", Type: "ASSET"})

	orphan, _ := reg.Get("orphan")
	name, err := reg.FullName(orphan)
	require.NoError(t, err)
	assert.Equal(t, "Orphan", name)
}

func TestFullName_DanglingParent(t *testing.T) {
	reg := NewAccounts()
	reg.Register(&Account{ID: "lost", Name: "Lost", Type: "ASSET", ParentID: "nowhere"})

	lost, _ := reg.Get("lost")
	_, err := reg.FullName(lost)
	require.Error(t, err)
	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "nowhere", lerr.ID)
}

func TestMarkUsed(t *testing.T) {
	reg := newTestAccounts()

	require.NoError(t, reg.MarkUsed("checking"))
	checking, _ := reg.Get("checking")
	assert.True(t, checking.Used)

	err := reg.MarkUsed("missing")
	require.Error(t, err)
	var lerr *LookupError
	assert.ErrorAs(t, err, &lerr)
}

func TestRegister_OrderAndReplacement(t *testing.T) {
	reg := NewAccounts()
	reg.Register(&Account{ID: "a", Name: "First"})
	reg.Register(&Account{ID: "b", Name: "Second"})
	reg.Register(&Account{ID: "a", Name: "Replaced"})

	all := reg.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Replaced", all[0].Name)
	assert.Equal(t, "Second", all[1].Name)
}

func TestAccountDirective(t *testing.T) {
	reg := newTestAccounts()

	checking, _ := reg.Get("checking")
	block, err := reg.Directive(checking)
	require.NoError(t, err)
	assert.Equal(t, "account Assets:Checking\n    note Main checking (type: BANK)\n", block)
}
