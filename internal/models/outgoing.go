package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Outgoing represents a single expense item within a month. Recurring
// outgoings are copied forward when the next month is created.
type Outgoing struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;index;not null" json:"-"`
	MonthID     string    `gorm:"type:uuid;index;not null" json:"month_id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	DueDay      int       `gorm:"not null" json:"due_day"`
	AccountCode string    `gorm:"size:20;not null" json:"account_code"`
	Amount      float64   `gorm:"type:decimal(12,2);not null" json:"amount"`
	IsRecurring bool      `gorm:"not null" json:"is_recurring"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Month Month `gorm:"foreignKey:MonthID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Outgoing model
func (Outgoing) TableName() string {
	return "expense_items"
}

// BeforeCreate assigns a UUID primary key
func (o *Outgoing) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
