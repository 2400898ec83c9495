package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// DefaultCurrency is used wherever the storefront quotes a bare price.
var DefaultCurrency = currency.INR

func NewMoney(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: DefaultCurrency}
}

func MoneyFromFloat(amount float64) Money {
	return NewMoney(decimal.NewFromFloat(amount))
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) Mul(qty int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(qty))),
		Currency: m.Currency,
	}
}

// Add sums two amounts. A zero-value receiver adopts the other side's
// currency so that folds can start from Money{}.
func (m Money) Add(other Money) Money {
	cur := m.Currency
	if cur == (currency.Unit{}) {
		cur = other.Currency
	}
	return Money{
		Amount:   m.Amount.Add(other.Amount),
		Currency: cur,
	}
}

type moneyJSON struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	cur := m.Currency
	if cur == (currency.Unit{}) {
		cur = DefaultCurrency
	}
	return json.Marshal(moneyJSON{Amount: m.Amount, Currency: cur.String()})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	parsedCurrency, err := currency.ParseISO(raw.Currency)
	if err != nil {
		return fmt.Errorf("currency[%s] is not valid: %w", raw.Currency, err)
	}

	m.Amount = raw.Amount
	m.Currency = parsedCurrency
	return nil
}
