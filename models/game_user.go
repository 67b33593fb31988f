package models

import (
	"time"
)

// GameCodeTTL is how long a generated code stays valid. Redis enforces it
// with a key expiry; the hourly sweep prunes the rows afterwards.
const GameCodeTTL = 12 * time.Hour

// MaxLoginAttempts is the number of recorded attempts after which game-code
// logins are refused outright.
const MaxLoginAttempts = 5

type GameUser struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Email         string     `json:"email" gorm:"unique"`
	GameCodes     []GameCode `json:"gameCodes" gorm:"foreignKey:GameUserID;constraint:OnDelete:CASCADE"`
	LoginAttempt  int        `json:"loginAttempt"`
	NoOfGameCodes int        `json:"noOfGameCodes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type GameCode struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	GameUserID uint      `json:"game_user_id"`
	Code       string    `json:"code"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LockedOut reports whether the user has exhausted their login attempts.
func (u *GameUser) LockedOut() bool {
	return u.LoginAttempt >= MaxLoginAttempts
}

// Expired reports whether the code has outlived GameCodeTTL at the given time.
func (g *GameCode) Expired(now time.Time) bool {
	return now.Sub(g.CreatedAt) >= GameCodeTTL
}
