package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID         primitive.ObjectID `bson:"_id"`
	Item_id    *int64             `json:"item_id" bson:"item_id" validate:"required"`
	Item_name  *string            `json:"item_name" bson:"item_name" validate:"required,min=2,max=100"`
	Category   *string            `json:"category" validate:"required"`
	Price      *float64           `json:"price" validate:"required"`
	Image_url  *string            `json:"image_url" bson:"image_url"`
	Available  *bool              `json:"available"`
	Created_at time.Time          `json:"created_at"`
	Updated_at time.Time          `json:"updated_at"`
}

// IsAvailable treats a missing flag as available, matching the seeded default.
func (m MenuItem) IsAvailable() bool {
	return m.Available == nil || *m.Available
}
