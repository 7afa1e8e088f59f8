package main

import (
	"fmt"
	"os"
	"strconv"

	"whatabook/internal/app"
	"whatabook/internal/docstore"
	"whatabook/internal/pytech"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "pytech",
		Short:        "Pytech - student documents",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Settings file (default $WHATABOOK_CONFIG or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Also write logs to stderr")

	rootCmd.AddCommand(findCmd(), findOneCmd(), insertCmd(), updateCmd(), deleteCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func withService(fn func(cmd *cobra.Command, args []string, svc *pytech.Service) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := app.Setup(configPath, verbose)
		if err != nil {
			return err
		}
		defer env.Close()

		provider, err := env.OpenDocument(ctx)
		if err != nil {
			return err
		}
		defer provider.Close(ctx)

		return fn(cmd, args, pytech.NewService(docstore.NewExecutor(provider)))
	}
}

func studentID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("student id %q is not a number", arg)
	}
	return id, nil
}

func findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find",
		Short: "Show every student",
		Args:  cobra.NoArgs,
		RunE: withService(func(cmd *cobra.Command, args []string, svc *pytech.Service) error {
			text, err := svc.Find(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}),
	}
}

func findOneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find-one STUDENT_ID",
		Short: "Show one student",
		Args:  cobra.ExactArgs(1),
		RunE: withService(func(cmd *cobra.Command, args []string, svc *pytech.Service) error {
			id, err := studentID(args[0])
			if err != nil {
				return err
			}
			text, err := svc.FindOne(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}),
	}
}

func insertCmd() *cobra.Command {
	var s pytech.Student
	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Insert a student",
		Args:  cobra.NoArgs,
		RunE: withService(func(cmd *cobra.Command, args []string, svc *pytech.Service) error {
			msg, err := svc.Insert(cmd.Context(), s)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		}),
	}
	cmd.Flags().Int64Var(&s.StudentID, "id", 0, "Student ID")
	cmd.Flags().StringVar(&s.FirstName, "first", "", "First name")
	cmd.Flags().StringVar(&s.LastName, "last", "", "Last name")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("last")
	return cmd
}

func updateCmd() *cobra.Command {
	var field, value string
	cmd := &cobra.Command{
		Use:   "update STUDENT_ID",
		Short: "Change the first or last name of a student",
		Args:  cobra.ExactArgs(1),
		RunE: withService(func(cmd *cobra.Command, args []string, svc *pytech.Service) error {
			id, err := studentID(args[0])
			if err != nil {
				return err
			}
			if err := svc.UpdateOne(cmd.Context(), id, field, value); err != nil {
				return err
			}
			text, err := svc.FindOne(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}),
	}
	cmd.Flags().StringVar(&field, "field", "last_name", "Field to change (first_name or last_name)")
	cmd.Flags().StringVar(&value, "value", "", "New value")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete STUDENT_ID",
		Short: "Delete a student",
		Args:  cobra.ExactArgs(1),
		RunE: withService(func(cmd *cobra.Command, args []string, svc *pytech.Service) error {
			id, err := studentID(args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteOne(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted student %d\n", id)
			return nil
		}),
	}
}
