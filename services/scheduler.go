// services/scheduler.go
package services

import (
	"log"
	"os"
	"strconv"
	"time"

	"charades-game-service/models"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// StartCleanupScheduler prunes completed sessions past the retention
// window so tables stay bounded. A pruned session is simply not found
// afterwards, which the session invariants already allow. Retention comes
// from CHARADES_RETENTION_HOURS (default 24).
func (s *SessionService) StartCleanupScheduler() {
	retention := 24 * time.Hour
	if raw := os.Getenv("CHARADES_RETENTION_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			retention = time.Duration(hours) * time.Hour
		} else {
			log.Printf("[Cleanup] Ignoring invalid CHARADES_RETENTION_HOURS=%q", raw)
		}
	}

	sched, _ := gocron.NewScheduler()
	sched.Start()

	// Every hour: drop completed sessions older than the retention window.
	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			cutoff := time.Now().Add(-retention)
			var games []models.Game
			err := s.DB.Select("id", "team_a_id", "team_b_id").
				Where("status = ? AND updated_at < ?", models.StatusCompleted, cutoff).
				Find(&games).Error
			if err != nil {
				log.Printf("[Cleanup] DB error: %v", err)
				return
			}

			for i := range games {
				game := games[i]
				err := s.DB.Transaction(func(tx *gorm.DB) error {
					return deleteGameRows(tx, &game)
				})
				if err != nil {
					log.Printf("[Cleanup] Failed to prune game %s: %v", game.ID, err)
					continue
				}
				log.Printf("[Cleanup] Pruned completed game %s", game.ID)
			}
		}),
	)
}
