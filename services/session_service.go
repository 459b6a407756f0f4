package services

import (
	"errors"
	"log"
	"strings"

	"charades-game-service/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionService owns game-session state: create, join, turn results,
// the used-movie pool, share-code lookup and deletion. One session has a
// single writer (the device driving the game), so handlers apply each
// transition in one transaction and return the updated snapshot.
type SessionService struct {
	DB *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{DB: db}
}

type CreateGameRequest struct {
	TeamAPlayers []string `json:"team_a_players"`
	TeamBPlayers []string `json:"team_b_players"`
	TimerSeconds int      `json:"timer_seconds"`
	TotalRounds  int      `json:"total_rounds"`
	Difficulty   string   `json:"difficulty"`
}

// CreateGame starts a new session: two fixed rosters (players may still be
// appended later via join), settings, team_a to act first in round 1.
func (s *SessionService) CreateGame(c *fiber.Ctx) error {
	var req CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	teamANames := trimNames(req.TeamAPlayers)
	teamBNames := trimNames(req.TeamBPlayers)
	if len(teamANames) == 0 || len(teamBNames) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "each team needs at least one player"})
	}

	settings, err := normalizeSettings(req.TimerSeconds, req.TotalRounds, req.Difficulty)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	shareCode, err := newShareCode(s.DB)
	if err != nil {
		log.Printf("[Session] Share code allocation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create game"})
	}

	game := &models.Game{
		ID:           uuid.NewString(),
		TeamA:        buildTeam("Team A", teamANames),
		TeamB:        buildTeam("Team B", teamBNames),
		Settings:     settings,
		CurrentTurn:  models.TurnTeamA,
		CurrentRound: 1,
		Status:       models.StatusActive,
		ShareCode:    shareCode,
	}

	if err := s.DB.Create(game).Error; err != nil {
		log.Printf("[Session] Create failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create game"})
	}

	game.UsedMovieIDs = []string{}
	return c.Status(fiber.StatusCreated).JSON(game)
}

// GetGame returns a session snapshot by id.
func (s *SessionService) GetGame(c *fiber.Ctx) error {
	game, err := s.loadGame(c.Params("id"))
	if err != nil {
		return s.gameLoadError(c, err)
	}
	return c.JSON(game)
}

// GetGameByShareCode resolves an active session from its share code, so a
// second device can find and join the match.
func (s *SessionService) GetGameByShareCode(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))

	var row models.Game
	err := s.DB.Select("id").
		Where("share_code = ? AND status = ?", code, models.StatusActive).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no active game with that share code"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
	}

	game, err := s.loadGame(row.ID)
	if err != nil {
		return s.gameLoadError(c, err)
	}
	return c.JSON(game)
}

type TurnResultRequest struct {
	Correct bool `json:"correct"`
}

// SubmitTurn records one acting turn. A skip and a client-side time-up are
// the same event: correct=false.
func (s *SessionService) SubmitTurn(c *fiber.Ctx) error {
	var req TurnResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	game, err := s.loadGame(c.Params("id"))
	if err != nil {
		return s.gameLoadError(c, err)
	}

	acting := game.ActingTeam()
	if err := game.ApplyTurnResult(req.Correct); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		teamUpdates := map[string]interface{}{
			"score":               acting.Score,
			"current_actor_index": acting.CurrentActorIndex,
		}
		if err := tx.Model(&models.Team{}).Where("id = ?", acting.ID).Updates(teamUpdates).Error; err != nil {
			return err
		}

		gameUpdates := map[string]interface{}{
			"current_turn":  game.CurrentTurn,
			"current_round": game.CurrentRound,
			"status":        game.Status,
			"winner":        game.Winner,
		}
		return tx.Model(&models.Game{}).Where("id = ?", game.ID).Updates(gameUpdates).Error
	})
	if err != nil {
		log.Printf("[Session] Turn update failed for game %s: %v", game.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to record turn"})
	}

	return c.JSON(game)
}

type JoinGameRequest struct {
	Team       string `json:"team"` // team_a | team_b
	PlayerName string `json:"player_name"`
}

// JoinGame appends a player to a roster. Mid-game joins are allowed; the
// new player enters the acting rotation going forward.
func (s *SessionService) JoinGame(c *fiber.Ctx) error {
	var req JoinGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	name := strings.TrimSpace(req.PlayerName)
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "player name is required"})
	}
	if req.Team != models.TurnTeamA && req.Team != models.TurnTeamB {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "team must be team_a or team_b"})
	}

	game, err := s.loadGame(c.Params("id"))
	if err != nil {
		return s.gameLoadError(c, err)
	}
	if game.Status != models.StatusActive {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": models.ErrGameCompleted.Error()})
	}

	team := &game.TeamA
	if req.Team == models.TurnTeamB {
		team = &game.TeamB
	}

	player := models.Player{
		ID:       uuid.NewString(),
		TeamID:   team.ID,
		Name:     name,
		Position: len(team.Players),
	}
	if err := s.DB.Create(&player).Error; err != nil {
		log.Printf("[Session] Join failed for game %s: %v", game.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to join game"})
	}

	team.Players = append(team.Players, player)
	return c.JSON(game)
}

// AddUsedMovie marks a catalog movie as consumed by this session. The add
// is idempotent: recording an already-present id is a no-op.
func (s *SessionService) AddUsedMovie(c *fiber.Ctx) error {
	movieID := strings.TrimSpace(c.Query("movie_id"))
	if movieID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "movie_id is required"})
	}

	var game models.Game
	if err := s.DB.Select("id", "status").First(&game, "id = ?", c.Params("id")).Error; err != nil {
		return s.gameLoadError(c, err)
	}
	if game.Status != models.StatusActive {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": models.ErrGameCompleted.Error()})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.UsedMovie{}).Where("game_id = ?", game.ID).Count(&count).Error; err != nil {
			return err
		}
		used := models.UsedMovie{GameID: game.ID, MovieID: movieID, Position: int(count)}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&used).Error
	})
	if err != nil {
		log.Printf("[Session] Used-movie insert failed for game %s: %v", game.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to record movie"})
	}

	return c.JSON(fiber.Map{"message": "movie added to used list"})
}

// ResetUsedMovies clears the session's used-movie pool. Administrative
// escape valve for when the catalog runs dry mid-game.
func (s *SessionService) ResetUsedMovies(c *fiber.Ctx) error {
	var game models.Game
	if err := s.DB.Select("id", "status").First(&game, "id = ?", c.Params("id")).Error; err != nil {
		return s.gameLoadError(c, err)
	}
	if game.Status != models.StatusActive {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": models.ErrGameCompleted.Error()})
	}

	if err := s.DB.Where("game_id = ?", game.ID).Delete(&models.UsedMovie{}).Error; err != nil {
		log.Printf("[Session] Pool reset failed for game %s: %v", game.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to reset movie pool"})
	}
	return c.JSON(fiber.Map{"message": "used movie pool reset"})
}

// DeleteGame removes a session and its rows. Deleting a missing id is not
// an error.
func (s *SessionService) DeleteGame(c *fiber.Ctx) error {
	id := c.Params("id")

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.Select("id", "team_a_id", "team_b_id").First(&game, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // idempotent
			}
			return err
		}
		return deleteGameRows(tx, &game)
	})
	if err != nil {
		log.Printf("[Session] Delete failed for game %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete game"})
	}

	return c.JSON(fiber.Map{"message": "game deleted", "id": id})
}

// GetStats reports catalog and session totals.
func (s *SessionService) GetStats(c *fiber.Ctx) error {
	counts := map[string]int64{}
	for _, difficulty := range []string{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard} {
		var n int64
		if err := s.DB.Model(&models.Movie{}).Where("difficulty = ?", difficulty).Count(&n).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch stats"})
		}
		counts[difficulty] = n
	}

	var totalMovies, totalGames int64
	if err := s.DB.Model(&models.Movie{}).Count(&totalMovies).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch stats"})
	}
	if err := s.DB.Model(&models.Game{}).Count(&totalGames).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch stats"})
	}

	return c.JSON(fiber.Map{
		"total_movies":  totalMovies,
		"easy_movies":   counts[models.DifficultyEasy],
		"medium_movies": counts[models.DifficultyMedium],
		"hard_movies":   counts[models.DifficultyHard],
		"total_games":   totalGames,
	})
}

// loadGame fetches a full session snapshot: rosters in join order and the
// used-movie set in insertion order.
func (s *SessionService) loadGame(id string) (*models.Game, error) {
	var game models.Game
	err := s.DB.
		Preload("TeamA.Players", playerOrder).
		Preload("TeamB.Players", playerOrder).
		Preload("UsedMovies", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&game, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	game.UsedMovieIDs = make([]string, 0, len(game.UsedMovies))
	for _, u := range game.UsedMovies {
		game.UsedMovieIDs = append(game.UsedMovieIDs, u.MovieID)
	}
	return &game, nil
}

func playerOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (s *SessionService) gameLoadError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "game not found"})
	}
	log.Printf("[Session] DB error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
}

// deleteGameRows removes a session and everything hanging off it.
func deleteGameRows(tx *gorm.DB, game *models.Game) error {
	if err := tx.Where("team_id IN ?", []string{game.TeamAID, game.TeamBID}).Delete(&models.Player{}).Error; err != nil {
		return err
	}
	if err := tx.Where("game_id = ?", game.ID).Delete(&models.UsedMovie{}).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.Game{}, "id = ?", game.ID).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", []string{game.TeamAID, game.TeamBID}).Delete(&models.Team{}).Error
}

func trimNames(names []string) []string {
	var out []string
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func buildTeam(name string, playerNames []string) models.Team {
	team := models.Team{ID: uuid.NewString(), Name: name}
	for i, n := range playerNames {
		team.Players = append(team.Players, models.Player{
			ID:       uuid.NewString(),
			TeamID:   team.ID,
			Name:     n,
			Position: i,
		})
	}
	return team
}

func normalizeSettings(timerSeconds, totalRounds int, difficulty string) (models.GameSettings, error) {
	if timerSeconds == 0 {
		timerSeconds = 60
	}
	if totalRounds == 0 {
		totalRounds = 10
	}
	if difficulty == "" {
		difficulty = models.DifficultyAll
	}

	if timerSeconds < 1 {
		return models.GameSettings{}, errors.New("timer_seconds must be positive")
	}
	if totalRounds < 1 {
		return models.GameSettings{}, errors.New("total_rounds must be positive")
	}
	if _, ok := models.AllowedDifficulties[difficulty]; !ok {
		return models.GameSettings{}, errors.New("invalid difficulty (use: all, easy, medium, hard)")
	}

	return models.GameSettings{
		TimerSeconds: timerSeconds,
		TotalRounds:  totalRounds,
		Difficulty:   difficulty,
	}, nil
}
