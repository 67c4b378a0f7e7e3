package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a decimal value in a named currency.
type Amount struct {
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

// currencyExponents lists ISO 4217 currencies whose minor unit is not 2 digits.
var currencyExponents = map[string]int32{
	"BHD": 3, "CVE": 0, "DJF": 0, "GNF": 0, "IDR": 0, "JOD": 3,
	"JPY": 0, "KMF": 0, "KRW": 0, "KWD": 3, "LYD": 3, "OMR": 3,
	"PYG": 0, "RWF": 0, "TND": 3, "UGX": 0, "VND": 0, "VUV": 0,
	"XAF": 0, "XOF": 0, "XPF": 0,
}

// CurrencyExponent returns the number of minor-unit digits for currency.
func CurrencyExponent(currency string) int32 {
	if exp, ok := currencyExponents[strings.ToUpper(currency)]; ok {
		return exp
	}
	return 2
}

// FromMinorUnits converts a provider amount (e.g. 1250 EUR cents) to a decimal.
func FromMinorUnits(value int64, currency string) decimal.Decimal {
	return decimal.New(value, -CurrencyExponent(currency))
}

// ToMinorUnits converts a decimal amount to provider minor units, rounding half away from zero.
func ToMinorUnits(value decimal.Decimal, currency string) int64 {
	return value.Shift(CurrencyExponent(currency)).Round(0).IntPart()
}
