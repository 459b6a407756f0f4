package services

import (
	"testing"

	"charades-game-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimNames(t *testing.T) {
	assert.Empty(t, trimNames(nil))
	assert.Empty(t, trimNames([]string{"", "  ", "\t"}))
	assert.Equal(t, []string{"Asha", "Ravi"}, trimNames([]string{" Asha ", "", "Ravi"}))
}

func TestBuildTeam(t *testing.T) {
	team := buildTeam("Team A", []string{"Asha", "Ravi", "Meera"})

	assert.Equal(t, "Team A", team.Name)
	assert.Equal(t, 0, team.Score)
	assert.Equal(t, 0, team.CurrentActorIndex)
	require.Len(t, team.Players, 3)
	for i, p := range team.Players {
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, team.ID, p.TeamID)
		assert.Equal(t, i, p.Position, "players keep join order")
	}
	assert.Equal(t, "Asha", team.CurrentActor().Name)
}

func TestNormalizeSettingsDefaults(t *testing.T) {
	settings, err := normalizeSettings(0, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 60, settings.TimerSeconds)
	assert.Equal(t, 10, settings.TotalRounds)
	assert.Equal(t, models.DifficultyAll, settings.Difficulty)
}

func TestNormalizeSettingsRejectsInvalid(t *testing.T) {
	_, err := normalizeSettings(-5, 10, "all")
	assert.EqualError(t, err, "timer_seconds must be positive")

	_, err = normalizeSettings(60, -1, "all")
	assert.EqualError(t, err, "total_rounds must be positive")

	_, err = normalizeSettings(60, 10, "impossible")
	assert.Error(t, err)
}

func TestNormalizeSettingsKeepsExplicitValues(t *testing.T) {
	settings, err := normalizeSettings(90, 5, models.DifficultyHard)
	require.NoError(t, err)
	assert.Equal(t, 90, settings.TimerSeconds)
	assert.Equal(t, 5, settings.TotalRounds)
	assert.Equal(t, models.DifficultyHard, settings.Difficulty)
}
