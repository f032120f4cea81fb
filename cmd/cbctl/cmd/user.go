package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ib-77/gocoinbase/pkg/coinbase/model"
	"github.com/ib-77/gocoinbase/pkg/rop"
)

func (a *app) userCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "user [ID]",
		Short: "Show the current user, or another user by id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var res rop.Result[error, model.User]
			if len(args) == 1 {
				res = a.client.User().ByID(cmd.Context(), args[0])
			} else {
				res = a.client.User().Current(cmd.Context())
			}
			return finish(cmd, res, func(w io.Writer, u model.User) error {
				return renderTable(w, [][]string{
					{"Field", "Value"},
					{"ID", u.ID},
					{"Name", u.Name},
					{"Username", u.Username.GetOrElse("-")},
					{"Email", u.Email},
					{"Location", u.ProfileLocation.GetOrElse("-")},
					{"Time zone", u.TimeZone},
					{"Native currency", u.NativeCurrency},
					{"Country", u.Country.Name},
				})
			})
		},
	}
}

func (a *app) authsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auths",
		Short: "Show what the configured API key is allowed to do",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return finish(cmd, a.client.User().Authorizations(cmd.Context()), func(w io.Writer, au model.Authorizations) error {
				return printLine(w, "%s: %s", au.Method, strings.Join(au.Scopes, ", "))
			})
		},
	}
}
