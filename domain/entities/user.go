package entities

import (
	"time"
)

// User represents a Discord user known to the bot.
// Users are created on first interaction and never deleted.
type User struct {
	ID             int64     `db:"user_id"`
	Username       string    `db:"username"`
	ConnectionDate time.Time `db:"connection_date"`
}
