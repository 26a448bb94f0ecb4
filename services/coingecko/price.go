package coingecko

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// PriceSource returns the unit USD price of a normalized coin id.
type PriceSource interface {
	USDPrice(ctx context.Context, coinID string) (float64, error)
}

// PriceResolver values a crypto amount in USD.
type PriceResolver struct {
	source PriceSource
}

func NewPriceResolver(source PriceSource) *PriceResolver {
	return &PriceResolver{source: source}
}

// ResolveValue returns unitPrice * amount, unrounded.
func (r *PriceResolver) ResolveValue(ctx context.Context, coinID string, amount decimal.Decimal) (decimal.Decimal, error) {
	id := strings.ToLower(strings.TrimSpace(coinID))
	if id == "" {
		return decimal.Zero, ErrUnknownCoin
	}

	unitPrice, err := r.source.USDPrice(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(unitPrice).Mul(amount), nil
}
