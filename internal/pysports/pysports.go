// Package pysports reports on teams and players and edits the player roster.
package pysports

import (
	"fmt"

	"whatabook/internal/store"
)

type Team struct {
	ID     int64
	Name   string
	Mascot string
}

type Player struct {
	ID        int64
	FirstName string
	LastName  string
	TeamID    int64
}

// Roster is a player joined with the name of the player's team.
type Roster struct {
	PlayerID  int64
	FirstName string
	LastName  string
	TeamName  string
}

func (t Team) Format() string {
	return fmt.Sprintf("  Team ID: %d\n  Team Name: %s\n  Mascot: %s\n", t.ID, t.Name, t.Mascot)
}

func (p Player) Format() string {
	return fmt.Sprintf("  Player ID: %d\n  First Name: %s\n  Last Name: %s\n  Team ID: %d\n", p.ID, p.FirstName, p.LastName, p.TeamID)
}

func (r Roster) Format() string {
	return fmt.Sprintf("  Player ID: %d\n  First Name: %s\n  Last Name: %s\n  Team Name: %s\n", r.PlayerID, r.FirstName, r.LastName, r.TeamName)
}

// Record returns t in the column order of the teams table.
func (t Team) Record() store.Record {
	return store.NewRecord([]string{"team_id", "team_name", "mascot"}, t.ID, t.Name, t.Mascot)
}

func (p Player) Record() store.Record {
	return store.NewRecord([]string{"player_id", "first_name", "last_name", "team_id"}, p.ID, p.FirstName, p.LastName, p.TeamID)
}

// Record returns r in the column order of the roster join.
func (r Roster) Record() store.Record {
	return store.NewRecord([]string{"player_id", "first_name", "last_name", "team_name"}, r.PlayerID, r.FirstName, r.LastName, r.TeamName)
}

func TeamFromRecord(r store.Record) (Team, error) {
	const op = "pysports.TeamFromRecord"
	if err := r.Expect(op, 3); err != nil {
		return Team{}, err
	}
	var (
		t   Team
		err error
	)
	if t.ID, err = r.Int64(op, 0); err != nil {
		return Team{}, err
	}
	if t.Name, err = r.String(op, 1); err != nil {
		return Team{}, err
	}
	if t.Mascot, err = r.String(op, 2); err != nil {
		return Team{}, err
	}
	return t, nil
}

func PlayerFromRecord(r store.Record) (Player, error) {
	const op = "pysports.PlayerFromRecord"
	if err := r.Expect(op, 4); err != nil {
		return Player{}, err
	}
	var (
		p   Player
		err error
	)
	if p.ID, err = r.Int64(op, 0); err != nil {
		return Player{}, err
	}
	if p.FirstName, err = r.String(op, 1); err != nil {
		return Player{}, err
	}
	if p.LastName, err = r.String(op, 2); err != nil {
		return Player{}, err
	}
	if p.TeamID, err = r.Int64(op, 3); err != nil {
		return Player{}, err
	}
	return p, nil
}

func RosterFromRecord(r store.Record) (Roster, error) {
	const op = "pysports.RosterFromRecord"
	if err := r.Expect(op, 4); err != nil {
		return Roster{}, err
	}
	var (
		ro  Roster
		err error
	)
	if ro.PlayerID, err = r.Int64(op, 0); err != nil {
		return Roster{}, err
	}
	if ro.FirstName, err = r.String(op, 1); err != nil {
		return Roster{}, err
	}
	if ro.LastName, err = r.String(op, 2); err != nil {
		return Roster{}, err
	}
	if ro.TeamName, err = r.String(op, 3); err != nil {
		return Roster{}, err
	}
	return ro, nil
}
