package divtrack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/divlab/divtrack/date"
	"github.com/shopspring/decimal"
)

// Side is a typed string identifying the direction of a transaction.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// ParseSide parses a side from its string form. It is lenient about case and
// accepts the single-letter forms found in uploaded files.
func ParseSide(s string) (Side, error) {
	switch s {
	case "buy", "Buy", "BUY", "b", "B":
		return Buy, nil
	case "sell", "Sell", "SELL", "s", "S":
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction side %q (want buy or sell)", s)
	}
}

// Transaction is a user-entered buy or sell record. It lives for the session
// only and is never persisted beyond the session file or an export.
type Transaction struct {
	Date      date.Date
	Quantity  Quantity // always positive; the side carries the sign
	UnitPrice Money    // price per share as entered by the user
	Side      Side
}

// NewBuy creates a buy transaction.
func NewBuy(day date.Date, quantity Quantity, unitPrice Money) Transaction {
	return Transaction{Date: day, Quantity: quantity, UnitPrice: unitPrice, Side: Buy}
}

// NewSell creates a sell transaction.
func NewSell(day date.Date, quantity Quantity, unitPrice Money) Transaction {
	return Transaction{Date: day, Quantity: quantity, UnitPrice: unitPrice, Side: Sell}
}

// SignedQuantity returns the quantity negated for sells, for net-position
// arithmetic in aggregate totals.
func (t Transaction) SignedQuantity() Quantity {
	if t.Side == Sell {
		return t.Quantity.Neg()
	}
	return t.Quantity
}

func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date && t.Quantity.Equal(o.Quantity) &&
		t.UnitPrice.Equal(o.UnitPrice) && t.Side == o.Side
}

// Validate checks the transaction's fields. It sets the date to today if it's
// zero, and requires a positive quantity, a positive unit price and a known
// side.
func (t Transaction) Validate() (Transaction, error) {
	if t.Date.IsZero() {
		t.Date = date.Today()
	}
	if !t.Quantity.IsPositive() {
		return t, fmt.Errorf("transaction quantity must be positive, got %s", t.Quantity)
	}
	if !t.UnitPrice.IsPositive() {
		return t, fmt.Errorf("transaction unit price must be positive, got %s", t.UnitPrice.StringFixed())
	}
	if t.Side != Buy && t.Side != Sell {
		return t, fmt.Errorf("transaction side must be %q or %q, got %q", Buy, Sell, t.Side)
	}
	return t, nil
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.Date)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.UnitPrice.value)
	w.Optional("currency", t.UnitPrice.cur)
	w.Append("side", t.Side)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// It handles the persisted structure where amount and currency are separate
// fields. The price decodes as a decimal, which accepts both the bare and the
// quoted number forms.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		Date     date.Date       `json:"date"`
		Quantity Quantity        `json:"quantity"`
		Price    decimal.Decimal `json:"price"`
		Currency string          `json:"currency"`
		Side     Side            `json:"side"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.Date = temp.Date
	t.Quantity = temp.Quantity
	t.UnitPrice = M(temp.Price, temp.Currency)
	t.Side = temp.Side
	return nil
}

// TransactionResult is the evaluation of one transaction against the dividend
// and price series. Derived data, recomputed whenever the series change.
type TransactionResult struct {
	Transaction        Transaction
	ResolvedPrice      Money
	FromMarket         bool  // false when the entered unit price was used as fallback
	TotalDividendSince Money // per-share dividend total since the transaction date
	Return             Percent
	HasReturn          bool
}

// TotalDividend returns the dividend income on the position: the per-share
// total scaled by the signed quantity.
func (r TransactionResult) TotalDividend() Money {
	return r.TotalDividendSince.Mul(r.Transaction.SignedQuantity())
}

// Ledger holds the session's transaction list. It is owned by the calling
// session and passed explicitly; there is no process-wide instance.
type Ledger struct {
	transactions []Transaction
}

// NewLedger returns an empty ledger.
func NewLedger(transactions ...Transaction) *Ledger {
	return &Ledger{transactions: transactions}
}

// Append validates the transaction and adds it to the ledger.
func (l *Ledger) Append(tx Transaction) error {
	tx, err := tx.Validate()
	if err != nil {
		return err
	}
	l.transactions = append(l.transactions, tx)
	return nil
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns the ledger's transactions in entry order.
func (l *Ledger) Transactions() []Transaction {
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Evaluate computes a TransactionResult for every transaction in the ledger.
//
// Each transaction is evaluated independently and order-insensitively; no
// cross-transaction netting of open position is performed. A failed price
// lookup (absent or provider error) degrades that single transaction to its
// entered unit price instead of aborting the batch.
func (l *Ledger) Evaluate(ctx context.Context, ticker string, events DividendHistory, rv *Resolver) []TransactionResult {
	results := make([]TransactionResult, 0, len(l.transactions))
	for _, tx := range l.transactions {
		results = append(results, evaluate(ctx, ticker, tx, events, rv))
	}
	return results
}

func evaluate(ctx context.Context, ticker string, tx Transaction, events DividendHistory, rv *Resolver) TransactionResult {
	res := TransactionResult{Transaction: tx}

	price, ok, err := rv.Resolve(ctx, ticker, tx.Date)
	if err != nil {
		log.Printf("price lookup for %s on %s failed, falling back to entered price: %v", ticker, tx.Date, err)
		ok = false
	}
	if ok {
		res.ResolvedPrice, res.FromMarket = price, true
	} else {
		res.ResolvedPrice = tx.UnitPrice
	}

	res.TotalDividendSince = events.Since(tx.Date).Sum()

	if res.ResolvedPrice.IsPositive() {
		res.Return = res.TotalDividendSince.PercentOf(res.ResolvedPrice)
		res.HasReturn = true
	}
	return res
}

// GrandTotal sums the dividend income of all results, respecting the buy/sell
// sign of each quantity.
func GrandTotal(results []TransactionResult) Money {
	var total Money
	for _, r := range results {
		total = total.Add(r.TotalDividend())
	}
	return total
}

// ErrNoTransactions is returned by callers that need a non-empty ledger.
var ErrNoTransactions = errors.New("ledger has no transactions")
