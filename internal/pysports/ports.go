package pysports

import "context"

// Repository defines the contract for team and player storage.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks whatabook/internal/pysports Repository
type Repository interface {
	Teams(ctx context.Context) ([]Team, error)
	Players(ctx context.Context) ([]Player, error)
	Roster(ctx context.Context) ([]Roster, error)
	InsertPlayer(ctx context.Context, p Player) (int64, error)
	UpdatePlayerTeam(ctx context.Context, playerID, teamID int64) (int64, error)
	DeletePlayersNamed(ctx context.Context, firstName string) (int64, error)
}
