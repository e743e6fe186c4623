package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Month represents one tracked budget month for a user. StartingPoint
// is derived from wage and float and maintained on every write.
type Month struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        string    `gorm:"type:uuid;index;not null" json:"-"`
	MonthLabel    string    `gorm:"size:50;not null" json:"month_label"`
	Wage          float64   `gorm:"type:decimal(12,2);not null" json:"wage"`
	FloatAmount   float64   `gorm:"type:decimal(12,2);not null" json:"float_amount"`
	StartingPoint float64   `gorm:"type:decimal(12,2);not null" json:"starting_point"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	User      User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Outgoings []Outgoing `gorm:"foreignKey:MonthID" json:"-"`
	Transfers []Transfer `gorm:"foreignKey:MonthID" json:"-"`
}

// TableName specifies the table name for Month model
func (Month) TableName() string {
	return "month_summaries"
}

// BeforeCreate assigns a UUID primary key
func (m *Month) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
