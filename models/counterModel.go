package models

// Counter backs the atomic order-number sequence. One document per sequence,
// keyed by name.
type Counter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}
