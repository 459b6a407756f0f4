// models/session.go
package models

import (
	"errors"
	"time"
)

const (
	TurnTeamA = "team_a"
	TurnTeamB = "team_b"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed" // terminal — only deletion may touch it
)

const (
	WinnerTeamA = "Team A"
	WinnerTeamB = "Team B"
	WinnerDraw  = "Draw"
)

// ErrGameCompleted is returned when a mutation is attempted on a session
// that has already finished.
var ErrGameCompleted = errors.New("game already completed")

type Player struct {
	ID       string `json:"id" gorm:"primaryKey"`
	TeamID   string `json:"-" gorm:"index;not null"`
	Name     string `json:"name" gorm:"not null"`
	Position int    `json:"-"` // join order within the roster
}

type Team struct {
	ID                string   `json:"-" gorm:"primaryKey"`
	Name              string   `json:"name"`
	Players           []Player `json:"players" gorm:"foreignKey:TeamID"`
	Score             int      `json:"score" gorm:"default:0"`
	CurrentActorIndex int      `json:"current_actor_index" gorm:"default:0"`
}

// CurrentActor returns the player whose turn it is to act, or nil for an
// empty roster. The index always wraps modulo the roster length, so a
// stale index after mid-game joins still resolves to a valid player.
func (t *Team) CurrentActor() *Player {
	if len(t.Players) == 0 {
		return nil
	}
	return &t.Players[t.CurrentActorIndex%len(t.Players)]
}

func (t *Team) advanceActor() {
	if n := len(t.Players); n > 0 {
		t.CurrentActorIndex = (t.CurrentActorIndex + 1) % n
	}
}

type GameSettings struct {
	TimerSeconds int    `json:"timer_seconds" gorm:"default:60"`
	TotalRounds  int    `json:"total_rounds" gorm:"default:10"`
	Difficulty   string `json:"difficulty" gorm:"default:'all'"` // all | easy | medium | hard
}

type Game struct {
	ID      string `json:"id" gorm:"primaryKey"`
	TeamAID string `json:"-"`
	TeamA   Team   `json:"team_a" gorm:"foreignKey:TeamAID;references:ID"`
	TeamBID string `json:"-"`
	TeamB   Team   `json:"team_b" gorm:"foreignKey:TeamBID;references:ID"`

	Settings GameSettings `json:"settings" gorm:"embedded;embeddedPrefix:settings_"`

	CurrentTurn  string `json:"current_turn" gorm:"default:'team_a'"` // team_a | team_b
	CurrentRound int    `json:"current_round" gorm:"default:1"`

	// Storage rows for the used-movie set; the JSON view is UsedMovieIDs.
	UsedMovies   []UsedMovie `json:"-" gorm:"foreignKey:GameID"`
	UsedMovieIDs []string    `json:"used_movie_ids" gorm:"-"`

	Status string `json:"status" gorm:"default:'active'"` // active | completed
	Winner string `json:"winner,omitempty"`               // set iff completed

	// ShareCode lets a second device locate and join the session.
	ShareCode string `json:"share_code" gorm:"uniqueIndex;not null"`

	ArchivedAt *time.Time `json:"-"` // set once the archive worker exported it

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UsedMovie records one consumed movie per game. The composite primary key
// makes the add idempotent: re-adding the same id is a conflict no-op.
type UsedMovie struct {
	GameID   string `gorm:"primaryKey"`
	MovieID  string `gorm:"primaryKey"`
	Position int    // insertion order
}

// ActingTeam returns the team whose turn it currently is.
func (g *Game) ActingTeam() *Team {
	if g.CurrentTurn == TurnTeamB {
		return &g.TeamB
	}
	return &g.TeamA
}

// ApplyTurnResult advances the session state after one acting turn:
// score the acting team when correct (skip and time-up both arrive as
// correct=false), rotate its actor, switch turns, and bump the round once
// both teams have acted. When the final round finishes, the session
// completes and the winner is fixed.
func (g *Game) ApplyTurnResult(correct bool) error {
	if g.Status != StatusActive {
		return ErrGameCompleted
	}

	acting := g.ActingTeam()
	if correct {
		acting.Score++
	}
	acting.advanceActor()

	// A round is one turn by each team; the counter moves only after
	// team_b so both teams play the same round number.
	if g.CurrentTurn == TurnTeamA {
		g.CurrentTurn = TurnTeamB
	} else {
		g.CurrentTurn = TurnTeamA
		g.CurrentRound++
	}

	if g.CurrentRound > g.Settings.TotalRounds {
		g.Status = StatusCompleted
		g.Winner = decideWinner(g.TeamA.Score, g.TeamB.Score)
	}
	return nil
}

func decideWinner(scoreA, scoreB int) string {
	switch {
	case scoreA > scoreB:
		return WinnerTeamA
	case scoreB > scoreA:
		return WinnerTeamB
	default:
		return WinnerDraw
	}
}
