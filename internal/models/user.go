package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a catalog account. Usernames are stored lowercase; lookups must
// fold input to lowercase before querying.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string    `gorm:"size:255;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
