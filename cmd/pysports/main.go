package main

import (
	"context"
	"fmt"
	"os"

	"whatabook/internal/app"
	"whatabook/internal/pysports"
	"whatabook/internal/sqlstore"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pysports",
		Short:        "Pysports - team and player records",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Settings file (default $WHATABOOK_CONFIG or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Also write logs to stderr")

	rootCmd.AddCommand(
		reportCmd("teams", "Show every team", (*pysports.Service).GetTeams),
		reportCmd("players", "Show every player", (*pysports.Service).GetPlayers),
		reportCmd("roster", "Show every player with the team name", (*pysports.Service).GetRoster),
		addPlayerCmd(),
		movePlayerCmd(),
		deletePlayerCmd(),
	)
	return rootCmd
}

// withService opens the store for the duration of one command.
func withService(fn func(cmd *cobra.Command, args []string, svc *pysports.Service) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		env, err := app.Setup(configPath, verbose)
		if err != nil {
			return err
		}
		defer env.Close()

		provider, err := env.OpenSQL(cmd.Context())
		if err != nil {
			return fmt.Errorf("%s: %w", sqlstore.Describe(err), err)
		}
		defer provider.Close()

		repo, err := pysports.NewStoreRepo(sqlstore.NewExecutor(provider), env.Settings.Queries[pysports.Section])
		if err != nil {
			return err
		}
		return fn(cmd, args, pysports.NewService(repo))
	}
}

func reportCmd(use, short string, render func(*pysports.Service, context.Context) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: withService(func(cmd *cobra.Command, args []string, svc *pysports.Service) error {
			text, err := render(svc, cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}),
	}
}

func addPlayerCmd() *cobra.Command {
	var p pysports.Player
	cmd := &cobra.Command{
		Use:   "add-player",
		Short: "Add a player to a team",
		Args:  cobra.NoArgs,
		RunE: withService(func(cmd *cobra.Command, args []string, svc *pysports.Service) error {
			id, err := svc.InsertPlayer(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Inserted player %s %s with player_id %d\n", p.FirstName, p.LastName, id)
			return nil
		}),
	}
	cmd.Flags().StringVar(&p.FirstName, "first", "", "First name")
	cmd.Flags().StringVar(&p.LastName, "last", "", "Last name")
	cmd.Flags().Int64Var(&p.TeamID, "team", 0, "Team ID")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("last")
	_ = cmd.MarkFlagRequired("team")
	return cmd
}

func movePlayerCmd() *cobra.Command {
	var playerID, teamID int64
	cmd := &cobra.Command{
		Use:   "move-player",
		Short: "Move a player to another team",
		Args:  cobra.NoArgs,
		RunE: withService(func(cmd *cobra.Command, args []string, svc *pysports.Service) error {
			if err := svc.UpdatePlayerTeam(cmd.Context(), playerID, teamID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved player %d to team %d\n", playerID, teamID)
			return nil
		}),
	}
	cmd.Flags().Int64Var(&playerID, "player", 0, "Player ID")
	cmd.Flags().Int64Var(&teamID, "team", 0, "Team ID")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("team")
	return cmd
}

func deletePlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-player FIRST_NAME",
		Short: "Delete every player with the given first name",
		Args:  cobra.ExactArgs(1),
		RunE: withService(func(cmd *cobra.Command, args []string, svc *pysports.Service) error {
			n, err := svc.DeletePlayerByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d player(s) named %s\n", n, args[0])
			return nil
		}),
	}
}
