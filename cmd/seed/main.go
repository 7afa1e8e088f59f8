package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"whatabook/internal/app"
	"whatabook/internal/dberr"
	"whatabook/internal/docstore"
	"whatabook/internal/pytech"

	"github.com/rs/zerolog/log"
)

// students are the documents every fresh pytech database starts with.
var students = []pytech.Student{
	{StudentID: 1007, FirstName: "Thor", LastName: "Oakenshield"},
	{StudentID: 1008, FirstName: "Peter", LastName: "Parker"},
	{StudentID: 1009, FirstName: "Bruce", LastName: "Banner"},
}

func main() {
	if err := run(context.Background(), os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed students")
	}
}

// run seeds the configured database. The log file and the client are closed
// before it returns, on success and on failure.
func run(ctx context.Context, out io.StringWriter) error {
	env, err := app.Setup("", os.Getenv("SEED_VERBOSE") != "")
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	defer env.Close()

	provider, err := env.OpenDocument(ctx)
	if err != nil {
		return fmt.Errorf("connect to document store: %w", err)
	}
	defer provider.Close(ctx)

	inserted, err := seed(ctx, pytech.NewService(docstore.NewExecutor(provider)), out)
	if err != nil {
		return err
	}
	log.Info().Int("inserted", inserted).Msg("Seeded students")
	return nil
}

// seed inserts the students that are not stored yet and prints one line per insert.
func seed(ctx context.Context, svc *pytech.Service, out io.StringWriter) (int, error) {
	inserted := 0
	for _, s := range students {
		_, err := svc.Student(ctx, s.StudentID)
		if err == nil {
			continue
		}
		if !errors.Is(err, dberr.ErrNotFound) {
			return inserted, err
		}

		msg, err := svc.Insert(ctx, s)
		if err != nil {
			return inserted, err
		}
		_, _ = out.WriteString(msg + "\n")
		inserted++
	}
	return inserted, nil
}
