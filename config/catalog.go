package config

// Interests offered as selectable tags on the planner form.
var Interests = []string{
	"History",
	"Food & Drink",
	"Nature",
	"Art & Culture",
	"Nightlife",
	"Adventure",
	"Shopping",
	"Relaxation",
	"Architecture",
	"Museums",
	"Beaches",
	"Local Markets",
}

// FiatCurrencies lists the currency codes offered for a fiat budget.
var FiatCurrencies = []string{
	"USD",
	"EUR",
	"GBP",
	"JPY",
	"CAD",
	"AUD",
	"CHF",
	"CNY",
	"INR",
	"NGN",
	"KES",
	"ZAR",
}
