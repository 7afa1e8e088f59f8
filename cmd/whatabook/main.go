package main

import (
	"fmt"
	"os"

	"whatabook/internal/app"
	"whatabook/internal/menu"
	"whatabook/internal/sqlstore"
	"whatabook/internal/whatabook"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "whatabook",
		Short:        "Whatabook - book store wishlist menu",
		Long:         `Browse the Whatabook catalog and store locations, and manage a customer's wishlist.`,
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Settings file (default $WHATABOOK_CONFIG or ./config.yaml)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also write logs to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	env, err := app.Setup(configPath, verbose)
	if err != nil {
		return err
	}
	defer env.Close()

	provider, err := env.OpenSQL(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", sqlstore.Describe(err), err)
	}
	defer provider.Close()

	repo, err := whatabook.NewStoreRepo(sqlstore.NewExecutor(provider), env.Settings.Queries[whatabook.Section])
	if err != nil {
		return err
	}

	ctl := menu.NewController(cmd.InOrStdin(), cmd.OutOrStdout())
	ctl.Describe = func(err error) string {
		return "Error: " + sqlstore.Describe(err)
	}
	return whatabook.NewConsole(whatabook.NewService(repo), ctl).Run(ctx)
}
