package coinbase

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/ib-77/gocoinbase/internal/dto"
	"github.com/ib-77/gocoinbase/internal/logging"
	"github.com/ib-77/gocoinbase/pkg/coinbase/model"
	"github.com/ib-77/gocoinbase/pkg/rop"
	"github.com/ib-77/gocoinbase/pkg/rop/core"
	"github.com/ib-77/gocoinbase/pkg/rop/lite"
	"github.com/ib-77/gocoinbase/pkg/rop/solo"
)

// DataService covers the public data endpoints; no credentials needed.
type DataService struct {
	client *Client
	log    *logging.Logger
}

func (s *DataService) get(ctx context.Context, path string) rop.Result[error, response] {
	return s.client.send(ctx, request{method: http.MethodGet, path: path})
}

// Time returns the API server time.
func (s *DataService) Time(ctx context.Context) rop.Result[error, model.Time] {
	return rop.Map(
		rop.FlatMap(s.get(ctx, s.client.cfg.Paths.Time), decodeData[dto.Time](s.log)),
		dto.Time.ToModel)
}

// Currencies lists the known fiat currencies.
func (s *DataService) Currencies(ctx context.Context) rop.Result[error, []model.Currency] {
	return rop.Map(
		rop.FlatMap(s.get(ctx, s.client.cfg.Paths.Currencies), decodeData[[]dto.Currency](s.log)),
		dto.Currencies)
}

// ExchangeRates returns the rates for currency, or for USD, the API default,
// when currency is blank.
func (s *DataService) ExchangeRates(ctx context.Context, currency string) rop.Result[error, model.ExchangeRates] {
	path := s.client.cfg.Paths.ExchangeRates
	if c := strings.TrimSpace(currency); c != "" {
		path += "?" + url.Values{"currency": {strings.ToUpper(c)}}.Encode()
	}
	return rop.Map(
		rop.FlatMap(s.get(ctx, path), decodeData[dto.ExchangeRates](s.log)),
		dto.ExchangeRates.ToModel)
}

// Price returns the buy, sell or spot price of one base unit in target.
func (s *DataService) Price(ctx context.Context, priceType model.PriceType, base, target string) rop.Result[error, model.Price] {
	pair := model.CurrencyPair{Base: strings.ToUpper(strings.TrimSpace(base)), Target: strings.ToUpper(strings.TrimSpace(target))}

	valid := solo.Validate(ctx, pair, func(_ context.Context, p model.CurrencyPair) (bool, string) {
		return p.Base != "" && p.Target != "", "base and target currencies are required"
	})
	query := solo.Try(ctx, valid, func(_ context.Context, p model.CurrencyPair) (priceQuery, error) {
		pt, err := model.ParsePriceType(string(priceType))
		return priceQuery{pair: p, priceType: pt}, err
	})
	query = rop.MapFailure(query, func(err error) error { return invalid("price %s: %v", pair, err) })

	return solo.Switch(ctx, query, func(ctx context.Context, q priceQuery) rop.Result[error, model.Price] {
		res := s.get(ctx, s.client.cfg.Paths.Prices+"/"+url.PathEscape(q.pair.String())+"/"+string(q.priceType))
		return rop.Map(
			rop.FlatMap(res, decodeData[dto.Price](s.log)),
			func(p dto.Price) model.Price { return p.ToModel(q.priceType) })
	})
}

type priceQuery struct {
	pair      model.CurrencyPair
	priceType model.PriceType
}

// Prices fetches one price per pair, at most Config.Workers at a time. The
// prices come back in the order of pairs; the first failing pair in that
// order decides the failure.
func (s *DataService) Prices(ctx context.Context, priceType model.PriceType, pairs ...model.CurrencyPair) rop.Result[error, []model.Price] {
	ctx = core.WithWorkerOptions(ctx, s.client.cfg.Workers)
	s.log.Debug("fetching prices", zap.Int("pairs", len(pairs)), zap.String("type", string(priceType)))

	return lite.Traverse(ctx, pairs, func(ctx context.Context, p model.CurrencyPair) rop.Result[error, model.Price] {
		return s.Price(ctx, priceType, p.Base, p.Target)
	}, 0)
}
