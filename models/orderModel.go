package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order keeps only the total and identifiers of a purchase; the cart lines it
// was built from are not persisted with it.
type Order struct {
	ID           primitive.ObjectID `bson:"_id"`
	Order_id     string             `json:"order_id"`
	Order_number int64              `json:"order_number"`
	User_id      *string            `json:"user_id"`
	Order_total  float64            `json:"order_total"`
	Created_at   time.Time          `json:"created_at"`
	Updated_at   time.Time          `json:"updated_at"`
}
