package budget

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"travelplanner/models"
	"travelplanner/services/coingecko"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	value decimal.Decimal
	err   error
	calls int
}

func (s *stubResolver) ResolveValue(ctx context.Context, coinID string, amount decimal.Decimal) (decimal.Decimal, error) {
	s.calls++
	return s.value, s.err
}

func TestFormat_Fiat(t *testing.T) {
	resolver := &stubResolver{}
	f := NewFormatter(resolver)

	got, err := f.Format(context.Background(), models.BudgetSpec{
		Kind:         models.BudgetFiat,
		Amount:       decimal.NewFromInt(1500),
		CurrencyCode: "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, "1500 USD", got)
	assert.Zero(t, resolver.calls, "fiat budgets never call the price service")
}

func TestFormat_FiatKeepsDecimals(t *testing.T) {
	assert.Equal(t, "99.5 JPY", FormatFiat(decimal.RequireFromString("99.50"), "JPY"))
}

func TestFormat_Crypto(t *testing.T) {
	f := NewFormatter(&stubResolver{value: decimal.NewFromInt(100000)})

	got, err := f.Format(context.Background(), models.BudgetSpec{
		Kind:   models.BudgetCrypto,
		Amount: decimal.NewFromInt(2),
		Coin:   &models.Coin{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
	})
	require.NoError(t, err)
	assert.Equal(t, "approx. $100,000 USD (from 2 Bitcoin)", got)
}

func TestFormatCrypto_RoundsAndGroups(t *testing.T) {
	pattern := regexp.MustCompile(`^approx\. \$\d{1,3}(,\d{3})* USD \(from \S+ .+\)$`)

	cases := map[string]string{
		"1234567.49": "approx. $1,234,567 USD (from 0.5 Ether)",
		"999.5":      "approx. $1,000 USD (from 0.5 Ether)",
		"12.4":       "approx. $12 USD (from 0.5 Ether)",
		"0.2":        "approx. $0 USD (from 0.5 Ether)",
		"0.4":        "approx. $0 USD (from 0.5 Ether)",
		"0.5":        "approx. $1 USD (from 0.5 Ether)",
	}
	for value, want := range cases {
		got := FormatCrypto(decimal.RequireFromString("0.5"), "Ether", decimal.RequireFromString(value))
		assert.Equal(t, want, got)
		assert.Regexp(t, pattern, got)
	}
}

func TestFormat_CryptoPropagatesResolverErrors(t *testing.T) {
	for _, sentinel := range []error{coingecko.ErrUnknownCoin, coingecko.ErrServiceUnavailable} {
		f := NewFormatter(&stubResolver{err: sentinel})

		_, err := f.Format(context.Background(), models.BudgetSpec{
			Kind:   models.BudgetCrypto,
			Amount: decimal.NewFromInt(1),
			Coin:   &models.Coin{ID: "x", Name: "X"},
		})
		assert.True(t, errors.Is(err, sentinel))
	}
}

func TestFormat_CryptoWithoutCoin(t *testing.T) {
	resolver := &stubResolver{}
	f := NewFormatter(resolver)

	_, err := f.Format(context.Background(), models.BudgetSpec{Kind: models.BudgetCrypto, Amount: decimal.NewFromInt(1)})
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Zero(t, resolver.calls)
}

func TestFormatCrypto_BeyondInt64(t *testing.T) {
	cases := []struct {
		amount, value, want string
	}{
		{"100000000000000000000", "5000000000000000000000000", "approx. $5,000,000,000,000,000,000,000,000 USD (from 100000000000000000000 Bitcoin)"},
		{"1", "9223372036854775807", "approx. $9,223,372,036,854,775,807 USD (from 1 Bitcoin)"},
		{"1", "9223372036854775807.6", "approx. $9,223,372,036,854,775,808 USD (from 1 Bitcoin)"},
		{"1", "123456789012345678901234.5", "approx. $123,456,789,012,345,678,901,235 USD (from 1 Bitcoin)"},
	}
	for _, tc := range cases {
		got := FormatCrypto(decimal.RequireFromString(tc.amount), "Bitcoin", decimal.RequireFromString(tc.value))
		assert.Equal(t, tc.want, got)
	}
}

func TestFormat_CryptoTinyAmountRoundsToZero(t *testing.T) {
	f := NewFormatter(&stubResolver{value: decimal.RequireFromString("0.4")})

	got, err := f.Format(context.Background(), models.BudgetSpec{
		Kind:   models.BudgetCrypto,
		Amount: decimal.RequireFromString("0.00001"),
		Coin:   &models.Coin{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
	})
	require.NoError(t, err)
	assert.Equal(t, "approx. $0 USD (from 0.00001 Bitcoin)", got)
}
