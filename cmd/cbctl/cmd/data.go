package cmd

import (
	"io"
	"maps"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/ib-77/gocoinbase/pkg/coinbase/model"
)

func (a *app) timeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "time",
		Short: "Show the Coinbase server time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return finish(cmd, a.client.Data().Time(cmd.Context()), func(w io.Writer, t model.Time) error {
				return printLine(w, "%s (epoch %d)", t.ISO.Format(time.RFC3339), t.Epoch)
			})
		},
	}
}

func (a *app) currenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List the known fiat currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return finish(cmd, a.client.Data().Currencies(cmd.Context()), func(w io.Writer, cs []model.Currency) error {
				rows := [][]string{{"ID", "Name", "Min size"}}
				for _, c := range cs {
					rows = append(rows, []string{c.ID, c.Name, c.MinSize.String()})
				}
				return renderTable(w, rows)
			})
		},
	}
}

func (a *app) ratesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates [CURRENCY]",
		Short: "Show exchange rates for a currency (USD by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			currency := ""
			if len(args) == 1 {
				currency = args[0]
			}
			return finish(cmd, a.client.Data().ExchangeRates(cmd.Context(), currency), func(w io.Writer, r model.ExchangeRates) error {
				rows := [][]string{{"1 " + r.Currency + " =", "Amount"}}
				for _, code := range slices.Sorted(maps.Keys(r.Rates)) {
					rows = append(rows, []string{code, r.Rates[code].String()})
				}
				return renderTable(w, rows)
			})
		},
	}
}

func (a *app) priceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "price TYPE PAIR",
		Short: "Show the buy, sell or spot price of a pair such as BTC-EUR",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			priceType, err := model.ParsePriceType(args[0])
			if err != nil {
				return report(cmd, err)
			}
			pair, err := model.ParseCurrencyPair(args[1])
			if err != nil {
				return report(cmd, err)
			}
			return finish(cmd, a.client.Data().Price(cmd.Context(), priceType, pair.Base, pair.Target), func(w io.Writer, p model.Price) error {
				return printLine(w, "%s %s-%s: %s", p.PriceType, p.BaseCurrency, p.TargetCurrency, p.Amount)
			})
		},
	}
}

func (a *app) pricesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prices TYPE PAIR...",
		Short: "Fetch several prices concurrently",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			priceType, err := model.ParsePriceType(args[0])
			if err != nil {
				return report(cmd, err)
			}
			pairs := make([]model.CurrencyPair, 0, len(args)-1)
			for _, arg := range args[1:] {
				pair, err := model.ParseCurrencyPair(arg)
				if err != nil {
					return report(cmd, err)
				}
				pairs = append(pairs, pair)
			}
			return finish(cmd, a.client.Data().Prices(cmd.Context(), priceType, pairs...), func(w io.Writer, ps []model.Price) error {
				rows := [][]string{{"Pair", "Type", "Amount"}}
				for _, p := range ps {
					rows = append(rows, []string{p.BaseCurrency + "-" + p.TargetCurrency, string(p.PriceType), p.Amount.String()})
				}
				return renderTable(w, rows)
			})
		},
	}
}
