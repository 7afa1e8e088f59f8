package pysports

import "whatabook/internal/catalog"

const Section = "pysports"

const (
	qGetTeams          = "get_teams"
	qGetPlayers        = "get_players"
	qGetRoster         = "get_roster"
	qInsertPlayer      = "insert_player"
	qUpdatePlayerTeam  = "update_player_team"
	qDeletePlayerNamed = "delete_player_by_name"
)

var Queries = []catalog.Template{
	{Name: qGetTeams, Text: "SELECT team_id, team_name, mascot FROM teams ORDER BY team_id"},
	{Name: qGetPlayers, Text: "SELECT player_id, first_name, last_name, team_id FROM players ORDER BY player_id"},
	{Name: qGetRoster, Text: "SELECT p.player_id, p.first_name, p.last_name, t.team_name " +
		"FROM players p INNER JOIN teams t ON p.team_id = t.team_id ORDER BY p.player_id"},
	{Name: qInsertPlayer, Text: "INSERT INTO players (first_name, last_name, team_id) VALUES (?, ?, ?)", Params: 3},
	{Name: qUpdatePlayerTeam, Text: "UPDATE players SET team_id = ? WHERE player_id = ?", Params: 2},
	{Name: qDeletePlayerNamed, Text: "DELETE FROM players WHERE first_name = ?", Params: 1},
}
