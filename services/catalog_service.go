package services

import (
	"log"
	"math/rand"
	"strings"

	"charades-game-service/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CatalogService serves the read-only movie catalog. Marking a movie as
// used is the session's job, not the catalog's.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// GetAllMovies returns the catalog, optionally filtered by difficulty.
func (s *CatalogService) GetAllMovies(c *fiber.Ctx) error {
	difficulty := c.Query("difficulty", models.DifficultyAll)
	if _, ok := models.AllowedDifficulties[difficulty]; !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid difficulty (use: all, easy, medium, hard)"})
	}

	query := s.DB.Order("difficulty, title")
	if difficulty != models.DifficultyAll {
		query = query.Where("difficulty = ?", difficulty)
	}

	var movies []models.Movie
	if err := query.Find(&movies).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch movies"})
	}
	return c.JSON(movies)
}

// GetRandomMovie picks one movie uniformly at random from the catalog
// entries matching the requested difficulty and not in exclude_ids.
// An exhausted pool is a 404; the caller decides whether to reset the
// used-movie pool or surface the error.
func (s *CatalogService) GetRandomMovie(c *fiber.Ctx) error {
	difficulty := c.Query("difficulty", models.DifficultyAll)
	if _, ok := models.AllowedDifficulties[difficulty]; !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid difficulty (use: all, easy, medium, hard)"})
	}
	exclude := parseExcludeIDs(c.Query("exclude_ids"))

	var movies []models.Movie
	if err := s.DB.Find(&movies).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch movies"})
	}

	pool := filterMovies(movies, difficulty, exclude)
	if len(pool) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no movies available"})
	}
	return c.JSON(pool[rand.Intn(len(pool))])
}

// ReseedMovies wipes and re-inserts the built-in catalog. Administrative;
// gameplay never mutates movies.
func (s *CatalogService) ReseedMovies(c *fiber.Ctx) error {
	var count int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Movie{}).Error; err != nil {
			return err
		}
		movies := buildCatalog()
		count = int64(len(movies))
		return tx.Create(&movies).Error
	})
	if err != nil {
		log.Printf("[Catalog] Reseed failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to seed movies"})
	}
	return c.JSON(fiber.Map{"message": "movies seeded", "count": count})
}

// EnsureCatalog seeds the movies table at startup when it is empty.
func EnsureCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Movie{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	movies := buildCatalog()
	if err := db.Create(&movies).Error; err != nil {
		return err
	}
	log.Printf("[Catalog] Seeded %d movies", len(movies))
	return nil
}

// parseExcludeIDs splits a comma-separated id list into a lookup set.
func parseExcludeIDs(raw string) map[string]struct{} {
	exclude := make(map[string]struct{})
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			exclude[id] = struct{}{}
		}
	}
	return exclude
}

// filterMovies keeps catalog entries matching the difficulty (everything
// for "all") whose ids are not excluded.
func filterMovies(movies []models.Movie, difficulty string, exclude map[string]struct{}) []models.Movie {
	var pool []models.Movie
	for _, m := range movies {
		if difficulty != models.DifficultyAll && m.Difficulty != difficulty {
			continue
		}
		if _, used := exclude[m.ID]; used {
			continue
		}
		pool = append(pool, m)
	}
	return pool
}
