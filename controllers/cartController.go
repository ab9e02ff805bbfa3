package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"go-cafe-ordering/database"
	"go-cafe-ordering/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var cartCollection *mongo.Collection = database.OpenCollection(database.Client, "cart")

// AddCartItem stores one cart line as submitted and echoes it back.
func AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var cartItem models.CartItem
		if err := c.BindJSON(&cartItem); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&cartItem); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		cartItem.ID = primitive.NewObjectID()
		if _, err := cartCollection.InsertOne(ctx, cartItem); err != nil {
			log.Println("error inserting cart item:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart item was not created"})
			return
		}
		c.JSON(http.StatusOK, cartItem)
	}
}

// GetCartItems lists the whole cart collection. The cart is shared, not
// session-scoped.
func GetCartItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		cursor, err := cartCollection.Find(ctx, bson.M{})
		if err != nil {
			log.Println("error fetching cart items:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing cart items"})
			return
		}

		cartItems := make([]models.CartItem, 0)
		if err := cursor.All(ctx, &cartItems); err != nil {
			log.Println("error decoding cart items:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing cart items"})
			return
		}
		c.JSON(http.StatusOK, cartItems)
	}
}

// RemoveCartItem deletes the first line whose id field matches. Removing an
// id that is not in the cart succeeds with the same message.
func RemoveCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		itemId := c.Param("id")
		if _, err := cartCollection.DeleteOne(ctx, bson.M{"id": itemId}); err != nil {
			log.Println("error removing cart item:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while removing the cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
	}
}
