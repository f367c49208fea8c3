package model

import "github.com/google/uuid"

// Item is the catalog boundary type. Price is nil when no price could
// be resolved from inventory data.
type Item struct {
	ID       uuid.UUID
	Name     string
	Region   string
	Category string
	Rating   float64
	Price    *float64
}
