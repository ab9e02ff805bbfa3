package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is one line of the shared cart. The `id` field carries the menu
// item's external identifier as submitted by the client; it is not unique
// across lines.
type CartItem struct {
	ID       primitive.ObjectID `bson:"_id"`
	Item_id  *string            `json:"id" bson:"id" validate:"required"`
	Name     *string            `json:"name" validate:"required"`
	Amount   *int64             `json:"amount" validate:"required"`
	Price    *float64           `json:"price" validate:"required"`
	Category *string            `json:"category"`
}
