package budget

import (
	"context"
	"fmt"
	"math"
	"strings"

	"travelplanner/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ValueResolver values a crypto amount in USD.
type ValueResolver interface {
	ResolveValue(ctx context.Context, coinID string, amount decimal.Decimal) (decimal.Decimal, error)
}

// Formatter turns a BudgetSpec into the budget description embedded in prompts.
type Formatter struct {
	resolver ValueResolver
}

func NewFormatter(resolver ValueResolver) *Formatter {
	return &Formatter{resolver: resolver}
}

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// Format renders spec, resolving the USD value first for crypto budgets.
// Price resolver errors are returned unchanged.
func (f *Formatter) Format(ctx context.Context, spec models.BudgetSpec) (string, error) {
	switch spec.Kind {
	case models.BudgetFiat:
		return FormatFiat(spec.Amount, spec.CurrencyCode), nil
	case models.BudgetCrypto:
		if spec.Coin == nil || spec.Coin.ID == "" {
			return "", models.NewValidationError("coinId", "Please select a cryptocurrency.")
		}
		value, err := f.resolver.ResolveValue(ctx, spec.Coin.ID, spec.Amount)
		if err != nil {
			return "", err
		}
		return FormatCrypto(spec.Amount, coinLabel(spec.Coin), value), nil
	default:
		return "", fmt.Errorf("unsupported budget kind %q", spec.Kind)
	}
}

// FormatFiat renders "<amount> <CODE>" with no symbol translation.
func FormatFiat(amount decimal.Decimal, currencyCode string) string {
	return amount.String() + " " + currencyCode
}

// FormatCrypto renders a resolved crypto budget, rounding the USD value to
// whole dollars with thousands grouping.
func FormatCrypto(amount decimal.Decimal, coinName string, usdValue decimal.Decimal) string {
	return fmt.Sprintf("approx. $%s USD (from %s %s)", groupDollars(usdValue.Round(0)), amount.String(), coinName)
}

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// groupDollars formats a whole-dollar value. Values outside int64 are grouped
// from their decimal string.
func groupDollars(whole decimal.Decimal) string {
	if whole.Abs().LessThanOrEqual(maxInt64) {
		return usPrinter.Sprintf("%d", whole.IntPart())
	}
	digits := whole.Abs().String()
	var b strings.Builder
	if whole.IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func coinLabel(coin *models.Coin) string {
	if coin.Name != "" {
		return coin.Name
	}
	return coin.ID
}
