package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products. Names are unique.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Product is a catalog entry with an optional category reference.
type Product struct {
	ID        uuid.UUID
	Name      string
	Category  *Category
	CreatedAt time.Time
}
