package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transfer represents money moved to a named account within a month.
type Transfer struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        string    `gorm:"type:uuid;index;not null" json:"-"`
	MonthID       string    `gorm:"type:uuid;index;not null" json:"month_id"`
	ToAccountCode string    `gorm:"size:20;not null" json:"to_account_code"`
	Amount        float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	Note          *string   `gorm:"size:255" json:"note"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Month Month `gorm:"foreignKey:MonthID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Transfer model
func (Transfer) TableName() string {
	return "transfer_items"
}

// BeforeCreate assigns a UUID primary key
func (t *Transfer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
