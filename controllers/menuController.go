package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"go-cafe-ordering/database"
	"go-cafe-ordering/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var menuCollection *mongo.Collection = database.OpenCollection(database.Client, "menu")

// GetMenu returns every menu item, available or not. Filtering by
// availability and category is the client's job.
func GetMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		cursor, err := menuCollection.Find(ctx, bson.M{})
		if err != nil {
			log.Println("error fetching menu:", err)
			c.String(http.StatusInternalServerError, "Failed to fetch menu items")
			return
		}

		menuItems := make([]models.MenuItem, 0)
		if err := cursor.All(ctx, &menuItems); err != nil {
			log.Println("error decoding menu:", err)
			c.String(http.StatusInternalServerError, "Failed to fetch menu items")
			return
		}
		c.JSON(http.StatusOK, menuItems)
	}
}

// UpdateAvailability flips the availability flag of the item addressed by its
// external item_id and returns the updated document. Connected websocket
// clients are notified so open catalogs can refresh.
func UpdateAvailability() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		itemId, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.String(http.StatusNotFound, "Item not found")
			return
		}

		var body struct {
			Available *bool `json:"available"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if body.Available == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "available is required"})
			return
		}

		updated_at, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		update := bson.D{
			{Key: "$set", Value: bson.D{
				{Key: "available", Value: *body.Available},
				{Key: "updated_at", Value: updated_at},
			}},
		}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var updatedItem models.MenuItem
		err = menuCollection.FindOneAndUpdate(ctx, bson.M{"item_id": itemId}, update, opts).Decode(&updatedItem)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.String(http.StatusNotFound, "Item not found")
				return
			}
			log.Println("error updating menu item:", err)
			c.String(http.StatusInternalServerError, "Failed to update menu item")
			return
		}

		notifyMenuUpdate(updatedItem)
		c.JSON(http.StatusOK, updatedItem)
	}
}
