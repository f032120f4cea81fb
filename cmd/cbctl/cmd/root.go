package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ib-77/gocoinbase/internal/logging"
	"github.com/ib-77/gocoinbase/pkg/coinbase"
	"github.com/ib-77/gocoinbase/pkg/rop"
	"github.com/ib-77/gocoinbase/pkg/rop/solo"
)

type app struct {
	configPath string
	verbose    bool

	log    *logging.Logger
	client *coinbase.Client
}

func init() {
	// status lines go to stderr so stdout stays clean for piping
	pterm.SetDefaultOutput(os.Stderr)
	pterm.Success.Writer = os.Stderr
	pterm.Info.Writer = os.Stderr
	pterm.Error.Writer = os.Stderr
	pterm.Warning.Writer = os.Stderr
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "cbctl",
		Short:         "Query the Coinbase API from the command line.",
		Long:          `cbctl reads public market data and, with an API key, your Coinbase user and accounts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file path (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log requests at debug level")

	root.AddCommand(
		a.timeCmd(),
		a.currenciesCmd(),
		a.ratesCmd(),
		a.priceCmd(),
		a.pricesCmd(),
		a.userCmd(),
		a.authsCmd(),
		a.accountsCmd(),
	)
	return root
}

// Execute runs root and prints any error the command did not report itself,
// such as a bad flag or argument count.
func Execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	var done reportedError
	if err != nil && !errors.As(err, &done) {
		pterm.Error.WithWriter(root.ErrOrStderr()).Println(err)
	}
	return err
}

// reportedError marks an error already shown to the user.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

func report(cmd *cobra.Command, err error, args ...any) error {
	pterm.Error.WithWriter(cmd.ErrOrStderr()).Println(append(args, err)...)
	return reportedError{err}
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := coinbase.LoadConfig(a.configPath)
	if err != nil {
		return report(cmd, err, "Failed to load config:")
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}

	a.log, err = logging.New(cfg.Log)
	if err != nil {
		return report(cmd, err, "Failed to set up logging:")
	}

	a.client, err = coinbase.New(cfg, coinbase.WithLogger(a.log))
	if err != nil {
		return report(cmd, err, "Failed to build client:")
	}
	return nil
}

func (a *app) teardown() error {
	if a.log != nil {
		defer a.log.AtExit()
	}
	if a.client != nil {
		return a.client.Close()
	}
	return nil
}

// finish prints the outcome of a call and turns a failure into the command
// error.
func finish[T any](cmd *cobra.Command, result rop.Result[error, T], show func(w io.Writer, v T) error) error {
	return solo.Finally(cmd.Context(), result,
		func(_ context.Context, v T) error {
			return show(cmd.OutOrStdout(), v)
		},
		func(_ context.Context, err error) error {
			return report(cmd, err)
		},
		func(_ context.Context, err error) error {
			pterm.Warning.WithWriter(cmd.ErrOrStderr()).Println("Cancelled:", err)
			return reportedError{err}
		})
}

func renderTable(w io.Writer, rows [][]string) error {
	return pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(rows).Render()
}

func printLine(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format+"\n", args...)
	return err
}
