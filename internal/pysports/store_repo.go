package pysports

import (
	"context"

	"whatabook/internal/catalog"
	"whatabook/internal/dberr"
	"whatabook/internal/store"
)

type StoreRepo struct {
	exec    store.Executor
	queries *catalog.Catalog
}

var _ Repository = (*StoreRepo)(nil)

func NewStoreRepo(exec store.Executor, overrides map[string]string) (*StoreRepo, error) {
	queries, err := catalog.New(Section, Queries, overrides)
	if err != nil {
		return nil, err
	}
	return &StoreRepo{exec: exec, queries: queries}, nil
}

func (r *StoreRepo) read(ctx context.Context, name string, args ...any) ([]store.Record, error) {
	q, err := r.queries.Query(name, args...)
	if err != nil {
		return nil, err
	}
	return r.exec.Read(ctx, q)
}

func (r *StoreRepo) write(ctx context.Context, name string, args ...any) (store.Result, error) {
	q, err := r.queries.Query(name, args...)
	if err != nil {
		return store.Result{}, err
	}
	return r.exec.Write(ctx, q)
}

func (r *StoreRepo) Teams(ctx context.Context) ([]Team, error) {
	records, err := r.read(ctx, qGetTeams)
	if err != nil {
		return nil, err
	}
	return store.Collect(records, TeamFromRecord)
}

func (r *StoreRepo) Players(ctx context.Context) ([]Player, error) {
	records, err := r.read(ctx, qGetPlayers)
	if err != nil {
		return nil, err
	}
	return store.Collect(records, PlayerFromRecord)
}

func (r *StoreRepo) Roster(ctx context.Context) ([]Roster, error) {
	records, err := r.read(ctx, qGetRoster)
	if err != nil {
		return nil, err
	}
	return store.Collect(records, RosterFromRecord)
}

func (r *StoreRepo) InsertPlayer(ctx context.Context, p Player) (int64, error) {
	res, err := r.write(ctx, qInsertPlayer, p.FirstName, p.LastName, p.TeamID)
	if err != nil {
		return 0, err
	}
	if res.InsertedID == nil {
		return 0, nil
	}
	id, err := store.AsInt64(res.InsertedID)
	if err != nil {
		return 0, dberr.Malformed("pysports.InsertPlayer", "inserted id: %v", err)
	}
	return id, nil
}

// UpdatePlayerTeam returns the number of rows changed.
func (r *StoreRepo) UpdatePlayerTeam(ctx context.Context, playerID, teamID int64) (int64, error) {
	res, err := r.write(ctx, qUpdatePlayerTeam, teamID, playerID)
	if err != nil {
		return 0, err
	}
	return res.Affected, nil
}

func (r *StoreRepo) DeletePlayersNamed(ctx context.Context, firstName string) (int64, error) {
	res, err := r.write(ctx, qDeletePlayerNamed, firstName)
	if err != nil {
		return 0, err
	}
	return res.Affected, nil
}
