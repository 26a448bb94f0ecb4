package budget

import (
	"strings"
	"unicode"

	"travelplanner/models"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a fiat budget names no currency.
const DefaultCurrency = "USD"

// Parse validates the budget fields of a planner form and builds a BudgetSpec.
// Every failure is a *models.ValidationError.
func Parse(form models.PlanForm) (models.BudgetSpec, error) {
	raw := strings.TrimSpace(form.BudgetAmount)
	if raw == "" {
		return models.BudgetSpec{}, models.NewValidationError("budgetAmount", "Please enter a budget amount.")
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		return models.BudgetSpec{}, models.NewValidationError("budgetAmount", "Please enter a valid, positive budget amount.")
	}

	switch models.BudgetKind(strings.ToLower(strings.TrimSpace(form.BudgetType))) {
	case models.BudgetFiat, "":
		code := strings.ToUpper(strings.TrimSpace(form.FiatCurrency))
		if code == "" {
			code = DefaultCurrency
		}
		if !isCurrencyCode(code) {
			return models.BudgetSpec{}, models.NewValidationError("fiatCurrency", "Please choose a valid currency.")
		}
		return models.BudgetSpec{Kind: models.BudgetFiat, Amount: amount, CurrencyCode: code}, nil

	case models.BudgetCrypto:
		id := strings.TrimSpace(form.CoinID)
		if id == "" {
			return models.BudgetSpec{}, models.NewValidationError("coinId", "Please select a cryptocurrency.")
		}
		coin := &models.Coin{
			ID:     id,
			Symbol: strings.TrimSpace(form.CoinSymbol),
			Name:   strings.TrimSpace(form.CoinName),
		}
		return models.BudgetSpec{Kind: models.BudgetCrypto, Amount: amount, Coin: coin}, nil

	default:
		return models.BudgetSpec{}, models.NewValidationError("budgetType", "Please choose a budget type.")
	}
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r > unicode.MaxASCII || !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
