package database

import (
	"context"
	"log"
	"time"

	"go-cafe-ordering/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var menuCollection *mongo.Collection = OpenCollection(Client, "menu")

type seedItem struct {
	itemID   int64
	name     string
	category string
	price    float64
	imageURL string
}

var defaultMenu = []seedItem{
	{1, "Espresso", "coffee", 2.50, "/images/espresso.jpg"},
	{2, "Cappuccino", "coffee", 3.50, "/images/cappuccino.jpg"},
	{3, "Caffe Latte", "coffee", 3.80, "/images/latte.jpg"},
	{4, "Cold Brew", "coffee", 4.00, "/images/cold-brew.jpg"},
	{5, "Earl Grey Tea", "tea", 2.80, "/images/earl-grey.jpg"},
	{6, "Green Tea", "tea", 2.80, "/images/green-tea.jpg"},
	{7, "Chai Latte", "tea", 3.60, "/images/chai-latte.jpg"},
	{8, "Butter Croissant", "pastry", 2.90, "/images/croissant.jpg"},
	{9, "Blueberry Muffin", "pastry", 3.20, "/images/muffin.jpg"},
	{10, "Cinnamon Roll", "pastry", 3.40, "/images/cinnamon-roll.jpg"},
	{11, "Grilled Cheese Sandwich", "sandwich", 5.50, "/images/grilled-cheese.jpg"},
	{12, "Turkey Club Sandwich", "sandwich", 6.50, "/images/turkey-club.jpg"},
	{13, "Chocolate Brownie", "dessert", 3.00, "/images/brownie.jpg"},
	{14, "New York Cheesecake", "dessert", 4.50, "/images/cheesecake.jpg"},
}

// SeedMenu inserts the built-in menu when the collection is empty. Once any
// document exists it never runs again, so admin edits survive restarts.
func SeedMenu(ctx context.Context) error {
	count, err := menuCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	docs := make([]interface{}, 0, len(defaultMenu))
	for _, item := range defaultMenu {
		item := item
		available := true
		docs = append(docs, models.MenuItem{
			ID:         primitive.NewObjectID(),
			Item_id:    &item.itemID,
			Item_name:  &item.name,
			Category:   &item.category,
			Price:      &item.price,
			Image_url:  &item.imageURL,
			Available:  &available,
			Created_at: now,
			Updated_at: now,
		})
	}

	_, err = menuCollection.InsertMany(ctx, docs)
	if err != nil {
		return err
	}
	log.Printf("menu seeded with %d default items", len(docs))
	return nil
}
