package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownPriceType = errors.New("unknown price type")
	ErrInvalidPair      = errors.New("invalid currency pair")
)

// Time is the Coinbase server time.
type Time struct {
	ISO   time.Time
	Epoch int64
}

type Currency struct {
	ID      string
	Name    string
	MinSize decimal.Decimal
}

// ExchangeRates maps currency codes to the amount of that currency one unit
// of Currency buys.
type ExchangeRates struct {
	Currency string
	Rates    map[string]decimal.Decimal
}

type PriceType string

const (
	PriceBuy  PriceType = "buy"
	PriceSell PriceType = "sell"
	PriceSpot PriceType = "spot"
)

var priceTypes = []PriceType{PriceBuy, PriceSell, PriceSpot}

// ParsePriceType is case-insensitive. Unlike the other enums there is no
// fallback since the value selects an endpoint.
func ParsePriceType(s string) (PriceType, error) {
	for _, pt := range priceTypes {
		if strings.EqualFold(string(pt), strings.TrimSpace(s)) {
			return pt, nil
		}
	}
	return "", fmt.Errorf("%w %q, available values: %v", ErrUnknownPriceType, s, priceTypes)
}

type Price struct {
	BaseCurrency   string
	TargetCurrency string
	Amount         decimal.Decimal
	PriceType      PriceType
}

// CurrencyPair is a BASE-TARGET pair such as BTC-EUR.
type CurrencyPair struct {
	Base   string
	Target string
}

func ParseCurrencyPair(s string) (CurrencyPair, error) {
	base, target, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok || base == "" || target == "" || strings.Contains(target, "-") {
		return CurrencyPair{}, fmt.Errorf("%w %q, expected BASE-TARGET", ErrInvalidPair, s)
	}
	return CurrencyPair{Base: strings.ToUpper(base), Target: strings.ToUpper(target)}, nil
}

func (p CurrencyPair) String() string {
	return p.Base + "-" + p.Target
}
