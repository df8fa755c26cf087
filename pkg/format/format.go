package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// currencyPrefix é o símbolo do real seguido de espaço não separável, como no Intl pt-BR
const currencyPrefix = "R$\u00a0"

// Currency formata um valor monetário em reais no padrão pt-BR (ex: R$ 1.234,56)
func Currency(value decimal.Decimal) string {
	fixed := value.Abs().StringFixed(2)
	integer, cents := fixed[:len(fixed)-3], fixed[len(fixed)-2:]

	var b strings.Builder
	if value.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(currencyPrefix)
	b.WriteString(groupThousands(integer))
	b.WriteByte(',')
	b.WriteString(cents)
	return b.String()
}

// Percent formata um percentual com uma casa decimal e vírgula (ex: 57,1%)
func Percent(value decimal.Decimal) string {
	return strings.Replace(value.StringFixed(1), ".", ",", 1) + "%"
}

// Date formata uma data no padrão dd/mm/aaaa
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// DateTime formata data e hora no padrão dd/mm/aaaa hh:mm
func DateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
