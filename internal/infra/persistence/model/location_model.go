package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel mirrors the 'locations' table, the root of the selling-point
// aggregate. The owned address and the gallery are deleted with it.
type LocationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProducerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(200);not null"`
	LocationType   string    `gorm:"type:varchar(10);not null;default:'FAIR';index"`
	Description    string    `gorm:"type:text"`
	AddressID      uuid.UUID `gorm:"type:uuid;not null"`
	MainImage      string    `gorm:"type:text"`
	OperationDays  string    `gorm:"type:varchar(200)"`
	OperationHours string    `gorm:"type:varchar(100)"`
	Phone          string    `gorm:"type:varchar(20)"`
	Whatsapp       string    `gorm:"type:varchar(20)"`
	IsActive       bool      `gorm:"not null;default:true;index"`
	IsVerified     bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Producer *ProducerProfileModel `gorm:"foreignKey:ProducerID"`
	Address  *AddressModel         `gorm:"foreignKey:AddressID;constraint:OnDelete:CASCADE"`
	Images   []*LocationImageModel `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
	Products []*ProductModel       `gorm:"many2many:location_products;joinForeignKey:LocationID;joinReferences:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// LocationImageModel mirrors the 'location_images' table (gallery entries).
type LocationImageModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	LocationID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Image        string    `gorm:"type:text;not null"`
	Caption      string    `gorm:"type:varchar(200)"`
	DisplayOrder int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationImageModel) TableName() string {
	return "location_images"
}
