package response

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// DisplayBRL formats an amount for pt-BR display, e.g. "R$ 1.234,50".
func DisplayBRL(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return brPrinter.Sprint(currency.Symbol(currency.BRL.Amount(f)))
}
