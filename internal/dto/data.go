package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ib-77/gocoinbase/pkg/coinbase/model"
)

type Time struct {
	ISO   time.Time `json:"iso"`
	Epoch int64     `json:"epoch"`
}

func (t Time) ToModel() model.Time {
	return model.Time{ISO: t.ISO.UTC(), Epoch: t.Epoch}
}

type Currency struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	MinSize decimal.Decimal `json:"min_size"`
}

func (c Currency) ToModel() model.Currency {
	return model.Currency{ID: c.ID, Name: c.Name, MinSize: c.MinSize}
}

func Currencies(cs []Currency) []model.Currency {
	return mapAll(cs, Currency.ToModel)
}

type ExchangeRates struct {
	Currency string                     `json:"currency"`
	Rates    map[string]decimal.Decimal `json:"rates"`
}

func (e ExchangeRates) ToModel() model.ExchangeRates {
	rates := make(map[string]decimal.Decimal, len(e.Rates))
	for k, v := range e.Rates {
		rates[k] = v
	}
	return model.ExchangeRates{Currency: e.Currency, Rates: rates}
}

type Price struct {
	Base     string          `json:"base"`
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

func (p Price) ToModel(priceType model.PriceType) model.Price {
	return model.Price{
		BaseCurrency:   p.Base,
		TargetCurrency: p.Currency,
		Amount:         p.Amount,
		PriceType:      priceType,
	}
}
