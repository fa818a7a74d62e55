// Package format renders prices and dates the way the Brazilian front end
// shows them: BRL currency with comma decimals and long-form pt-BR dates.
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

var weekdaysPtBR = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

var monthsPtBR = [...]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}

// Currency renders a BRL amount, e.g. 250.0 -> "R$ 250,00"
func Currency(value decimal.Decimal) string {
	amount, _ := value.Float64()
	return printer.Sprintf("R$ %v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// LongDate renders an ISO date in the long pt-BR form,
// e.g. "2024-01-15" -> "segunda-feira, 15 de janeiro de 2024".
// Unparseable input is returned unchanged.
func LongDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return fmt.Sprintf("%s, %d de %s de %d",
		weekdaysPtBR[t.Weekday()], t.Day(), monthsPtBR[t.Month()], t.Year())
}
