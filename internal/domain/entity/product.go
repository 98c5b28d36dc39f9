package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups catalog products (vegetables, fruits, grains, ...).
type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	Icon        string // Emoji or icon name used by clients.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Product is a catalog item, not inventory. Producers associate catalog
// products with the locations where they sell them.
type Product struct {
	ID           uuid.UUID
	Name         string
	CategoryID   *uuid.UUID // Nil when the category was removed; never cascades.
	CategoryName string
	Description  string
	Image        string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
