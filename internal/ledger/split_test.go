package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLine_CodeMode(t *testing.T) {
	reg := newTestAccounts()
	checking, _ := reg.Get("checking")
	s := &Split{Account: checking, Value: "1234.56", Quantity: "1234.56"}

	line, err := s.Line(reg, "USD", Options{})
	require.NoError(t, err)

	// "Assets:Checking" (15) + "1,234.56 USD" (12) leaves 49 padding spaces
	// to the alignment column, plus the one fixed separator.
	want := "    Assets:Checking" + strings.Repeat(" ", 50) + "1,234.56 USD"
	assert.Equal(t, want, line)
}

func TestSplitLine_SymbolMode(t *testing.T) {
	reg := NewAccounts()
	reg.Register(&Account{ID: "checking", Name: "Checking", Type: "BANK", Commodity: "$"})
	checking, _ := reg.Get("checking")
	s := &Split{Account: checking, Value: "1234.56", Quantity: "1234.56"}

	line, err := s.Line(reg, "$", Options{UseSymbols: true})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(line, "$1,234.56"), line)
	assert.NotContains(t, line, "@@")
}

func TestSplitLine_NegativeAmount(t *testing.T) {
	reg := newTestAccounts()
	checking, _ := reg.Get("checking")
	s := &Split{Account: checking, Value: "-5.00", Quantity: "-5.00"}

	line, err := s.Line(reg, "USD", Options{})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(line, "-5.00 USD"), line)
}

func TestSplitLine_CurrencyConversion(t *testing.T) {
	reg := NewAccounts()
	reg.Register(&Account{ID: "eur", Name: "Cash", Type: "CASH", Commodity: "EUR"})
	acct, _ := reg.Get("eur")
	s := &Split{Account: acct, Value: "-110.00", Quantity: "100.00"}

	line, err := s.Line(reg, "USD", Options{})
	require.NoError(t, err)

	// The transaction-commodity side of an @@ annotation is always shown
	// non-negative; the sign rides on the quantity side only.
	assert.True(t, strings.HasSuffix(line, "100.00 EUR @@ 110.00 USD"), line)
	assert.Equal(t, 1, strings.Count(line, "@@"))
}

func TestSplitLine_CurrencyConversionSymbols(t *testing.T) {
	reg := NewAccounts()
	reg.Register(&Account{ID: "eur", Name: "Cash", Type: "CASH", Commodity: "€"})
	acct, _ := reg.Get("eur")
	s := &Split{Account: acct, Value: "-110.00", Quantity: "100.00"}

	line, err := s.Line(reg, "$", Options{UseSymbols: true})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(line, "€100.00 @@ $110.00"), line)
}

func TestSplitLine_ReconciledFlag(t *testing.T) {
	reg := newTestAccounts()
	checking, _ := reg.Get("checking")
	s := &Split{Account: checking, Value: "10.00", Quantity: "10.00", Reconciled: true}

	line, err := s.Line(reg, "USD", Options{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, "    * Assets:Checking"), line)

	// Under a blanket cleared render the transaction header carries the
	// marker instead.
	line, err = s.Line(reg, "USD", Options{AllCleared: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, "    Assets:Checking"), line)
}

func TestSplitLine_FlagShiftsPadding(t *testing.T) {
	reg := newTestAccounts()
	checking, _ := reg.Get("checking")
	plain := &Split{Account: checking, Value: "10.00", Quantity: "10.00"}
	flagged := &Split{Account: checking, Value: "10.00", Quantity: "10.00", Reconciled: true}

	p, err := plain.Line(reg, "USD", Options{})
	require.NoError(t, err)
	f, err := flagged.Line(reg, "USD", Options{})
	require.NoError(t, err)

	// The flag eats into the padding so both amounts end on the same column.
	assert.Equal(t, len(p), len(f))
	assert.True(t, strings.HasSuffix(p, "10.00 USD"))
	assert.True(t, strings.HasSuffix(f, "10.00 USD"))
}

func TestSplitLine_PayeeMemo(t *testing.T) {
	reg := newTestAccounts()
	checking, _ := reg.Get("checking")
	s := &Split{Account: checking, Value: "10.00", Quantity: "10.00", Memo: "ACME Corp"}

	line, err := s.Line(reg, "USD", Options{PayeeMetadata: true})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(line, "  ; Payee: ACME Corp"), line)

	line, err = s.Line(reg, "USD", Options{})
	require.NoError(t, err)
	assert.NotContains(t, line, "Payee")
}

func TestSplitLine_OverlongNameClampsToSingleSpace(t *testing.T) {
	reg := NewAccounts()
	longName := strings.Repeat("Subaccount", 10)
	reg.Register(&Account{ID: "long", Name: longName, Type: "EXPENSE", Commodity: "USD"})
	acct, _ := reg.Get("long")
	s := &Split{Account: acct, Value: "10.00", Quantity: "10.00"}

	line, err := s.Line(reg, "USD", Options{})
	require.NoError(t, err)
	assert.Equal(t, "    "+longName+" 10.00 USD", line)
}

func TestSplitLine_DanglingAccountParent(t *testing.T) {
	reg := NewAccounts()
	reg.Register(&Account{ID: "lost", Name: "Lost", Type: "ASSET", ParentID: "nowhere", Commodity: "USD"})
	acct, _ := reg.Get("lost")
	s := &Split{Account: acct, Value: "10.00", Quantity: "10.00"}

	_, err := s.Line(reg, "USD", Options{})
	require.Error(t, err)
	var lerr *LookupError
	assert.ErrorAs(t, err, &lerr)
}
