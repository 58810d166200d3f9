package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/comodds/protoslip/internal/pkg/enums"
	"github.com/comodds/protoslip/internal/pkg/models"
	"github.com/comodds/protoslip/internal/pkg/validation"
)

// LoadSQLite reads a catalog from a SQLite file produced by the ingestion
// collaborator. Expected schema:
//
//	CREATE TABLE matches (
//		id TEXT PRIMARY KEY,
//		group_key TEXT NOT NULL,
//		round TEXT,
//		game_number INTEGER NOT NULL,
//		sport TEXT NOT NULL,
//		league TEXT NOT NULL,
//		home_team TEXT NOT NULL,
//		away_team TEXT NOT NULL,
//		bet_type TEXT NOT NULL,
//		odds_home REAL NOT NULL,
//		odds_draw REAL,
//		odds_away REAL NOT NULL,
//		handicap TEXT,
//		under_over TEXT,
//		deadline TEXT NOT NULL, -- RFC3339
//		status TEXT NOT NULL
//	);
func LoadSQLite(ctx context.Context, path string) ([]models.Match, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT id, group_key, COALESCE(round, ''), game_number, sport, league,
		       home_team, away_team, bet_type, odds_home, odds_draw, odds_away,
		       COALESCE(handicap, ''), COALESCE(under_over, ''), deadline, status
		FROM matches
		ORDER BY game_number`)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	validator := validation.NewValidator()
	var matches []models.Match
	for rows.Next() {
		var (
			m        models.Match
			sport    string
			betType  string
			status   string
			draw     sql.NullFloat64
			deadline string
		)
		if err := rows.Scan(
			&m.ID, &m.GroupKey, &m.Round, &m.GameNumber, &sport, &m.League,
			&m.HomeTeam, &m.AwayTeam, &betType, &m.Odds.Home, &draw, &m.Odds.Away,
			&m.Handicap, &m.UnderOver, &deadline, &status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}

		m.Sport = enums.Sport(sport)
		m.BetType = enums.BetType(betType)
		m.Status = models.MatchStatus(status)
		if draw.Valid {
			m.Odds.Draw = draw.Float64
		}

		m.Deadline, err = time.Parse(time.RFC3339, deadline)
		if err != nil {
			return nil, fmt.Errorf("invalid deadline for match %s: %w", m.ID, err)
		}

		if err := validator.ValidateMatch(&m); err != nil {
			return nil, fmt.Errorf("catalog row %s: %w", m.ID, err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog rows: %w", err)
	}

	return matches, nil
}
