package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table. The composite unique index on
// (user_id, location_id) is the backstop for concurrent toggle requests.
type FavoriteModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_location"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_location"`
	Note       string    `gorm:"type:text"`
	CreatedAt  time.Time

	Location *LocationModel `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
