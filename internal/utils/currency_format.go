package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatCOP renders an amount in Colombian pesos, e.g. "$1.234.567,89".
func FormatCOP(amount decimal.Decimal) string {
	cur := money.GetCurrency(money.COP)
	minor := amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction)).IntPart()
	return cur.Formatter().Format(minor)
}
