// models/movie.go
package models

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyAll    = "all" // request-only value, never stored on a movie
)

// AllowedDifficulties are the values accepted by catalog and game requests.
var AllowedDifficulties = map[string]struct{}{
	DifficultyAll:    {},
	DifficultyEasy:   {},
	DifficultyMedium: {},
	DifficultyHard:   {},
}

// Movie is immutable reference data, seeded at startup and never mutated
// during gameplay.
type Movie struct {
	ID         string `json:"id" gorm:"primaryKey"` // slug of the title
	Title      string `json:"title" gorm:"not null"`
	Year       int    `json:"year"`
	Hero       string `json:"hero"`
	Heroine    string `json:"heroine"`
	WordCount  int    `json:"word_count"`
	Difficulty string `json:"difficulty" gorm:"index"` // easy | medium | hard
	Genre      string `json:"genre,omitempty"`
}
