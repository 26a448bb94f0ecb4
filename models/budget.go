package models

import "github.com/shopspring/decimal"

// BudgetKind distinguishes fiat from crypto budgets.
type BudgetKind string

const (
	BudgetFiat   BudgetKind = "fiat"
	BudgetCrypto BudgetKind = "crypto"
)

// BudgetSpec is the validated budget of one submission attempt.
// Fiat specs carry CurrencyCode; crypto specs carry Coin.
type BudgetSpec struct {
	Kind         BudgetKind      `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode,omitempty"`
	Coin         *Coin           `json:"coin,omitempty"`
}
