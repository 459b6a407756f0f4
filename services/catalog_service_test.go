package services

import (
	"testing"

	"charades-game-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalog(t *testing.T) {
	movies := buildCatalog()
	require.Len(t, movies, len(hindiMovies))

	seen := make(map[string]struct{}, len(movies))
	for _, m := range movies {
		assert.NotEmpty(t, m.ID)
		assert.GreaterOrEqual(t, m.WordCount, 1)
		assert.Contains(t, []string{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard}, m.Difficulty)
		_, dup := seen[m.ID]
		assert.False(t, dup, "duplicate movie id %q", m.ID)
		seen[m.ID] = struct{}{}
	}
}

func TestBuildCatalogDerivation(t *testing.T) {
	movies := buildCatalog()
	byID := make(map[string]models.Movie)
	for _, m := range movies {
		byID[m.ID] = m
	}

	ddlj, ok := byID["dilwale-dulhania-le-jayenge"]
	require.True(t, ok)
	assert.Equal(t, 4, ddlj.WordCount)
	assert.Equal(t, 1995, ddlj.Year)
}

func TestFilterMoviesByDifficulty(t *testing.T) {
	movies := buildCatalog()

	hard := filterMovies(movies, models.DifficultyHard, nil)
	require.NotEmpty(t, hard)
	for _, m := range hard {
		assert.Equal(t, models.DifficultyHard, m.Difficulty)
	}

	all := filterMovies(movies, models.DifficultyAll, nil)
	assert.Len(t, all, len(movies))
}

func TestFilterMoviesNeverReturnsExcluded(t *testing.T) {
	movies := buildCatalog()
	exclude := map[string]struct{}{movies[0].ID: {}, movies[5].ID: {}}

	pool := filterMovies(movies, models.DifficultyAll, exclude)
	assert.Len(t, pool, len(movies)-2)
	for _, m := range pool {
		_, used := exclude[m.ID]
		assert.False(t, used, "excluded movie %q came back", m.ID)
	}
}

func TestFilterMoviesExhaustedPool(t *testing.T) {
	movies := buildCatalog()
	exclude := make(map[string]struct{})
	for _, m := range movies {
		if m.Difficulty == models.DifficultyHard {
			exclude[m.ID] = struct{}{}
		}
	}

	assert.Empty(t, filterMovies(movies, models.DifficultyHard, exclude))
	assert.NotEmpty(t, filterMovies(movies, models.DifficultyAll, exclude), "other difficulties still available")
}

func TestParseExcludeIDs(t *testing.T) {
	assert.Empty(t, parseExcludeIDs(""))

	ids := parseExcludeIDs("sholay, pk ,,3-idiots")
	assert.Len(t, ids, 3)
	assert.Contains(t, ids, "sholay")
	assert.Contains(t, ids, "pk")
	assert.Contains(t, ids, "3-idiots")
}
