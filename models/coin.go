package models

// Coin is one entry of the price service's coin directory.
type Coin struct {
	ID     string `json:"id"`     // stable lowercase identifier, e.g. "bitcoin"
	Symbol string `json:"symbol"` // ticker, e.g. "btc"
	Name   string `json:"name"`   // display name, e.g. "Bitcoin"
}
