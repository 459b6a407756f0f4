package workers

import (
	"context"
	"log"
	"time"

	"charades-game-service/models"
	"charades-game-service/utils"

	"gorm.io/gorm"
)

// ArchiveClient exports finished sessions to the R2 archive bucket before
// the cleanup job prunes them from the database.
type ArchiveClient struct {
	DB *gorm.DB
}

func NewArchiveClient(db *gorm.DB) *ArchiveClient {
	return &ArchiveClient{DB: db}
}

// GameSummary is the JSON object written per archived session.
type GameSummary struct {
	GameID      string    `json:"game_id"`
	ShareCode   string    `json:"share_code"`
	Winner      string    `json:"winner"`
	TeamAScore  int       `json:"team_a_score"`
	TeamBScore  int       `json:"team_b_score"`
	TotalRounds int       `json:"total_rounds"`
	Difficulty  string    `json:"difficulty"`
	PlayerCount int       `json:"player_count"`
	MoviesUsed  int       `json:"movies_used"`
	CreatedAt   time.Time `json:"created_at"`
	CompletedAt time.Time `json:"completed_at"`
}

func (c *ArchiveClient) pendingGames() ([]models.Game, error) {
	var games []models.Game
	err := c.DB.
		Preload("TeamA.Players").
		Preload("TeamB.Players").
		Preload("UsedMovies").
		Where("status = ? AND archived_at IS NULL", models.StatusCompleted).
		Find(&games).Error
	return games, err
}

func (c *ArchiveClient) archive(ctx context.Context, game *models.Game) error {
	summary := GameSummary{
		GameID:      game.ID,
		ShareCode:   game.ShareCode,
		Winner:      game.Winner,
		TeamAScore:  game.TeamA.Score,
		TeamBScore:  game.TeamB.Score,
		TotalRounds: game.Settings.TotalRounds,
		Difficulty:  game.Settings.Difficulty,
		PlayerCount: len(game.TeamA.Players) + len(game.TeamB.Players),
		MoviesUsed:  len(game.UsedMovies),
		CreatedAt:   game.CreatedAt,
		CompletedAt: game.UpdatedAt,
	}

	if err := utils.UploadJSONToR2(ctx, "archives/"+game.ID+".json", summary); err != nil {
		return err
	}

	now := time.Now().UTC()
	return c.DB.Model(&models.Game{}).Where("id = ?", game.ID).
		Update("archived_at", &now).Error
}

// PollCompletedGames exports each newly completed session once. Failures
// are logged and retried on the next tick, never fatal.
func PollCompletedGames(ctx context.Context, client *ArchiveClient, pollInterval time.Duration) {
	log.Println("Starting session archive worker...")

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Session archive worker stopped.")
			return
		case <-ticker.C:
			games, err := client.pendingGames()
			if err != nil {
				log.Printf("[Archive] DB error: %v", err)
				continue
			}
			if len(games) == 0 {
				continue
			}

			for i := range games {
				if err := client.archive(ctx, &games[i]); err != nil {
					log.Printf("[Archive] Failed to archive game %s: %v", games[i].ID, err)
					// leave archived_at unset — retried next tick
					continue
				}
				log.Printf("[Archive] Exported game %s", games[i].ID)
			}
		}
	}
}
