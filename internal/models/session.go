package models

import (
	"time"
)

// Session represents a server-side login session. Only the SHA-256
// digest of the opaque token is stored; the raw token lives in the
// client cookie.
type Session struct {
	TokenHash string    `gorm:"size:64;primaryKey" json:"-"`
	UserID    string    `gorm:"type:uuid;index;not null" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Session model
func (Session) TableName() string {
	return "app_sessions"
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
