package services

import (
	"errors"
	"math/rand"

	"charades-game-service/models"

	"gorm.io/gorm"
)

// shareCodeAlphabet omits look-alike characters (0/O, 1/I/L) since codes
// get read aloud across the room.
const shareCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const shareCodeLength = 6

func randomShareCode() string {
	b := make([]byte, shareCodeLength)
	for i := range b {
		b[i] = shareCodeAlphabet[rand.Intn(len(shareCodeAlphabet))]
	}
	return string(b)
}

// newShareCode returns a code no stored session is using.
func newShareCode(db *gorm.DB) (string, error) {
	for attempt := 0; attempt < 10; attempt++ {
		code := randomShareCode()
		var count int64
		if err := db.Model(&models.Game{}).Where("share_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.New("could not allocate a unique share code")
}
