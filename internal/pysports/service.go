package pysports

import (
	"context"
	"strings"

	"whatabook/internal/dberr"
	"whatabook/internal/report"
)

var (
	bannerTeams   = report.Banner("TEAM RECORDS")
	bannerPlayers = report.Banner("PLAYER RECORDS")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetTeams lists every team. No teams is reported as not found.
func (s *Service) GetTeams(ctx context.Context) (string, error) {
	teams, err := s.repo.Teams(ctx)
	if err != nil {
		return "", err
	}
	if len(teams) == 0 {
		return "", dberr.NotFound("pysports.GetTeams", "teams")
	}
	return report.Render(bannerTeams, teams), nil
}

func (s *Service) GetPlayers(ctx context.Context) (string, error) {
	players, err := s.repo.Players(ctx)
	if err != nil {
		return "", err
	}
	return report.Render(bannerPlayers, players), nil
}

// GetRoster lists every player with the name of the player's team.
func (s *Service) GetRoster(ctx context.Context) (string, error) {
	roster, err := s.repo.Roster(ctx)
	if err != nil {
		return "", err
	}
	return report.Render(bannerPlayers, roster), nil
}

// InsertPlayer adds a player and returns the generated id, or 0 when the driver
// does not report one.
func (s *Service) InsertPlayer(ctx context.Context, p Player) (int64, error) {
	const op = "pysports.InsertPlayer"
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	if p.FirstName == "" || p.LastName == "" {
		return 0, dberr.Validation(op, "first and last name are required")
	}
	if p.TeamID < 1 {
		return 0, dberr.Validation(op, "team id must be positive, got %d", p.TeamID)
	}
	return s.repo.InsertPlayer(ctx, p)
}

// UpdatePlayerTeam moves a player to another team. An unknown player is not found.
func (s *Service) UpdatePlayerTeam(ctx context.Context, playerID, teamID int64) error {
	n, err := s.repo.UpdatePlayerTeam(ctx, playerID, teamID)
	if err != nil {
		return err
	}
	if n == 0 {
		return dberr.NotFound("pysports.UpdatePlayerTeam", "player")
	}
	return nil
}

// DeletePlayerByName removes every player with the given first name and returns
// how many were removed.
func (s *Service) DeletePlayerByName(ctx context.Context, firstName string) (int64, error) {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return 0, dberr.Validation("pysports.DeletePlayerByName", "first name is required")
	}
	return s.repo.DeletePlayersNamed(ctx, firstName)
}
