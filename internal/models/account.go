package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account represents a named bank account owned by a user. The short
// code is user-chosen and unique per user, not globally.
type Account struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"-"`
	UserID    string    `gorm:"type:uuid;uniqueIndex:idx_account_user_code;not null" json:"-"`
	Code      string    `gorm:"size:20;uniqueIndex:idx_account_user_code;not null" json:"code"`
	BankName  string    `gorm:"size:100;not null" json:"bank_name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Account model
func (Account) TableName() string {
	return "accounts"
}

// BeforeCreate assigns a UUID primary key
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
