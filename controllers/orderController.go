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
	"go.mongodb.org/mongo-driver/mongo/options"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")
var counterCollection *mongo.Collection = database.OpenCollection(database.Client, "counters")

type OrderRequest struct {
	User_id   *string           `json:"userid"`
	CartItems []models.CartItem `json:"cartItems"`
}

// CreateOrder turns the submitted cart lines into an order record carrying
// the total, a borrowed id from the first line, and the next order number.
func CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var request OrderRequest
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(request.CartItems) == 0 {
			c.String(http.StatusBadRequest, "No items in cart to create an order.")
			return
		}

		orderNumber, err := nextOrderNumber(ctx)
		if err != nil {
			log.Println("error reserving order number:", err)
			c.String(http.StatusInternalServerError, "Failed to save order")
			return
		}

		userId := "user"
		if request.User_id != nil && *request.User_id != "" {
			userId = *request.User_id
		}

		orderId := ""
		if request.CartItems[0].Item_id != nil {
			orderId = *request.CartItems[0].Item_id
		}

		now, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		order := models.Order{
			ID:           primitive.NewObjectID(),
			Order_id:     orderId,
			Order_number: orderNumber,
			User_id:      &userId,
			Order_total:  orderTotal(request.CartItems),
			Created_at:   now,
			Updated_at:   now,
		}

		if _, err := orderCollection.InsertOne(ctx, order); err != nil {
			log.Println("error saving order:", err)
			c.String(http.StatusInternalServerError, "Failed to save order")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GetOrders returns every order, newest order number first.
func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "order_number", Value: -1}})
		cursor, err := orderCollection.Find(ctx, bson.M{}, opts)
		if err != nil {
			log.Println("error fetching orders:", err)
			c.String(http.StatusInternalServerError, "Error fetching orders")
			return
		}

		orders := make([]models.Order, 0)
		if err := cursor.All(ctx, &orders); err != nil {
			log.Println("error decoding orders:", err)
			c.String(http.StatusInternalServerError, "Error fetching orders")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// nextOrderNumber reserves the next value of the order-number sequence with a
// single atomic $inc. Concurrent submissions each get a distinct number.
func nextOrderNumber(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.Counter
	err := counterCollection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": "order_number"},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: 1}}}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func orderTotal(cartItems []models.CartItem) float64 {
	var total float64
	for _, item := range cartItems {
		if item.Price == nil || item.Amount == nil {
			continue
		}
		total += *item.Price * float64(*item.Amount)
	}
	return total
}
