package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

// String renders the amount with the ISO code and the currency's standard scale, e.g. "USD 20.00".
func (m Money) String() string {
	scale, _ := currency.Standard.Rounding(m.Currency)
	return fmt.Sprintf("%s %s", m.Currency.String(), m.Amount.StringFixed(int32(scale)))
}

// Display renders the amount with a localized currency symbol.
func (m Money) Display(tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(m.Currency.Amount(m.Amount.InexactFloat64())))
}
