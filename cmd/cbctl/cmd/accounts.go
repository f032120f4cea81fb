package cmd

import (
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ib-77/gocoinbase/pkg/coinbase/model"
	"github.com/ib-77/gocoinbase/pkg/rop"
)

func (a *app) accountsCmd() *cobra.Command {
	var all bool

	c := &cobra.Command{
		Use:   "accounts",
		Short: "List your accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var res rop.Result[error, []model.Account]
			if all {
				res = a.client.Accounts().All(cmd.Context())
			} else {
				res = rop.Map(a.client.Accounts().Page(cmd.Context()), func(p model.AccountsPage) []model.Account {
					if p.Pagination.HasNext() {
						pterm.Info.Println("More accounts available, use --all to list them.")
					}
					return p.Data
				})
			}
			return finish(cmd, res, func(w io.Writer, accounts []model.Account) error {
				rows := [][]string{{"ID", "Name", "Type", "Balance", "Primary"}}
				for _, acc := range accounts {
					rows = append(rows, []string{
						acc.ID,
						acc.Name,
						string(acc.Type),
						acc.Balance.Amount.String() + " " + acc.Balance.Currency,
						strconv.FormatBool(acc.Primary),
					})
				}
				return renderTable(w, rows)
			})
		},
	}
	c.Flags().BoolVar(&all, "all", false, "follow pagination and list every account")
	return c
}
