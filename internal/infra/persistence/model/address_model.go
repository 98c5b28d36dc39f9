package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// Every row is owned by exactly one location and removed with it.
type AddressModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Street       string    `gorm:"type:varchar(255);not null"`
	Number       string    `gorm:"type:varchar(20)"`
	Complement   string    `gorm:"type:varchar(100)"`
	Neighborhood string    `gorm:"type:varchar(100);not null"`
	City         string    `gorm:"type:varchar(100);not null;index"`
	State        string    `gorm:"type:varchar(2);not null;index"`
	ZipCode      string    `gorm:"type:varchar(9);not null"`
	Latitude     *float64  `gorm:"type:decimal(9,6)"`
	Longitude    *float64  `gorm:"type:decimal(9,6)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
