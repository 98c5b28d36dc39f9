package model

import (
	"time"

	"github.com/google/uuid"
)

// ProducerProfileModel mirrors the 'producer_profiles' table.
// UserID references users.id and doubles as the primary key.
type ProducerProfileModel struct {
	UserID                  uuid.UUID `gorm:"primaryKey"`
	BusinessName            string    `gorm:"type:varchar(200);not null"`
	Description             string    `gorm:"type:text"`
	CoverImage              string    `gorm:"type:text"`
	HasOrganicCertification bool      `gorm:"not null;default:false"`
	CertificationDetails    string    `gorm:"type:text"`
	Website                 string    `gorm:"type:varchar(255)"`
	Instagram               string    `gorm:"type:varchar(100)"`
	Whatsapp                string    `gorm:"type:varchar(20)"`
	IsVerified              bool      `gorm:"not null;default:false"`
	IsActive                bool      `gorm:"not null;default:true"`
	CreatedAt               time.Time
	UpdatedAt               time.Time

	Locations []*LocationModel `gorm:"foreignKey:ProducerID"`
}

// TableName explicitly sets the table name for GORM.
func (ProducerProfileModel) TableName() string {
	return "producer_profiles"
}
