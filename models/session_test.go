package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(teamA, teamB []string, totalRounds int) *Game {
	build := func(name string, names []string) Team {
		t := Team{ID: name, Name: name}
		for i, n := range names {
			t.Players = append(t.Players, Player{ID: n, TeamID: name, Name: n, Position: i})
		}
		return t
	}
	return &Game{
		ID:           "game-1",
		TeamA:        build("Team A", teamA),
		TeamB:        build("Team B", teamB),
		Settings:     GameSettings{TimerSeconds: 60, TotalRounds: totalRounds, Difficulty: DifficultyAll},
		CurrentTurn:  TurnTeamA,
		CurrentRound: 1,
		Status:       StatusActive,
		ShareCode:    "ABC123",
	}
}

func TestApplyTurnResultSingleRoundWin(t *testing.T) {
	g := newTestGame([]string{"A1"}, []string{"B1"}, 1)

	require.NoError(t, g.ApplyTurnResult(true))
	assert.Equal(t, 1, g.TeamA.Score)
	assert.Equal(t, TurnTeamB, g.CurrentTurn)
	assert.Equal(t, 1, g.CurrentRound, "round only advances after team_b's turn")
	assert.Equal(t, StatusActive, g.Status)

	require.NoError(t, g.ApplyTurnResult(false))
	assert.Equal(t, 0, g.TeamB.Score)
	assert.Equal(t, 2, g.CurrentRound)
	assert.Equal(t, StatusCompleted, g.Status)
	assert.Equal(t, WinnerTeamA, g.Winner)
}

func TestApplyTurnResultDraw(t *testing.T) {
	g := newTestGame([]string{"A1", "A2"}, []string{"B1", "B2"}, 3)

	// Both teams score in every round: 3-3 after all rounds.
	for round := 0; round < 3; round++ {
		require.NoError(t, g.ApplyTurnResult(true))
		require.NoError(t, g.ApplyTurnResult(true))
	}

	assert.Equal(t, 3, g.TeamA.Score)
	assert.Equal(t, 3, g.TeamB.Score)
	assert.Equal(t, StatusCompleted, g.Status)
	assert.Equal(t, WinnerDraw, g.Winner)
}

func TestApplyTurnResultCompletedIsTerminal(t *testing.T) {
	g := newTestGame([]string{"A1"}, []string{"B1"}, 1)
	require.NoError(t, g.ApplyTurnResult(false))
	require.NoError(t, g.ApplyTurnResult(true))
	require.Equal(t, StatusCompleted, g.Status)

	winner := g.Winner
	scoreB := g.TeamB.Score
	assert.ErrorIs(t, g.ApplyTurnResult(true), ErrGameCompleted)
	assert.Equal(t, winner, g.Winner, "winner never changes once set")
	assert.Equal(t, scoreB, g.TeamB.Score)
}

func TestApplyTurnResultRoundMonotonic(t *testing.T) {
	g := newTestGame([]string{"A1"}, []string{"B1", "B2"}, 5)

	prev := g.CurrentRound
	for g.Status == StatusActive {
		require.NoError(t, g.ApplyTurnResult(g.CurrentTurn == TurnTeamA))
		assert.GreaterOrEqual(t, g.CurrentRound, prev)
		if g.Status == StatusActive {
			assert.LessOrEqual(t, g.CurrentRound, g.Settings.TotalRounds)
		}
		prev = g.CurrentRound
	}
	assert.Equal(t, WinnerTeamA, g.Winner)
}

func TestActorRotationWraps(t *testing.T) {
	g := newTestGame([]string{"A1", "A2", "A3"}, []string{"B1"}, 10)

	require.Equal(t, "A1", g.TeamA.CurrentActor().Name)
	require.NoError(t, g.ApplyTurnResult(false)) // A1 acted
	require.NoError(t, g.ApplyTurnResult(false)) // B1 acted
	assert.Equal(t, "A2", g.TeamA.CurrentActor().Name)
	assert.Equal(t, "B1", g.TeamB.CurrentActor().Name, "single player keeps acting")

	require.NoError(t, g.ApplyTurnResult(false))
	require.NoError(t, g.ApplyTurnResult(false))
	require.NoError(t, g.ApplyTurnResult(false))
	assert.Equal(t, "A1", g.TeamA.CurrentActor().Name, "index wraps modulo roster length")
}

func TestMidGameJoinEntersRotation(t *testing.T) {
	g := newTestGame([]string{"A1"}, []string{"B1"}, 10)

	require.NoError(t, g.ApplyTurnResult(true)) // A1 acted, index wrapped back to 0
	g.TeamA.Players = append(g.TeamA.Players, Player{ID: "A2", TeamID: "Team A", Name: "A2", Position: 1})

	require.NoError(t, g.ApplyTurnResult(false)) // B1 acted
	assert.Equal(t, "A1", g.TeamA.CurrentActor().Name)
	require.NoError(t, g.ApplyTurnResult(false)) // A1 acted again
	require.NoError(t, g.ApplyTurnResult(false)) // B1 acted
	assert.Equal(t, "A2", g.TeamA.CurrentActor().Name, "joined player enters the rotation")
}

func TestDecideWinner(t *testing.T) {
	assert.Equal(t, WinnerTeamA, decideWinner(5, 3))
	assert.Equal(t, WinnerTeamB, decideWinner(2, 4))
	assert.Equal(t, WinnerDraw, decideWinner(0, 0))
}
