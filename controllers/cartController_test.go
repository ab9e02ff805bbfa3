package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-cafe-ordering/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func cartRouter() *gin.Engine {
	router := gin.New()
	router.POST("/cart", AddCartItem())
	router.GET("/cart", GetCartItems())
	router.DELETE("/cart/:id", RemoveCartItem())
	return router
}

func TestAddCartItem(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("echoes the stored line", func(mt *mtest.T) {
		cartCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		body := `{"id":"5","name":"Earl Grey Tea","amount":2,"price":2.8,"category":"tea"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body))
		cartRouter().ServeHTTP(w, req)

		require.Equal(mt, http.StatusOK, w.Code)
		var item models.CartItem
		require.NoError(mt, json.Unmarshal(w.Body.Bytes(), &item))
		require.NotNil(mt, item.Item_id)
		assert.Equal(mt, "5", *item.Item_id)
		assert.Equal(mt, int64(2), *item.Amount)
		assert.Equal(mt, 2.8, *item.Price)
	})

	mt.Run("rejects a line with missing fields", func(mt *mtest.T) {
		cartCollection = mt.Coll

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(`{"id":"5"}`))
		cartRouter().ServeHTTP(w, req)

		require.Equal(mt, http.StatusBadRequest, w.Code)
	})
}

func TestGetCartItems(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("lists every stored line", func(mt *mtest.T) {
		cartCollection = mt.Coll
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, "cafe.cart", mtest.FirstBatch,
				bson.D{
					{Key: "_id", Value: primitive.NewObjectID()},
					{Key: "id", Value: "1"},
					{Key: "name", Value: "Espresso"},
					{Key: "amount", Value: int64(1)},
					{Key: "price", Value: 2.5},
					{Key: "category", Value: "coffee"},
				},
			),
			mtest.CreateCursorResponse(0, "cafe.cart", mtest.NextBatch),
		)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		cartRouter().ServeHTTP(w, req)

		require.Equal(mt, http.StatusOK, w.Code)
		var items []models.CartItem
		require.NoError(mt, json.Unmarshal(w.Body.Bytes(), &items))
		require.Len(mt, items, 1)
		assert.Equal(mt, "Espresso", *items[0].Name)
	})
}

func TestRemoveCartItem(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("removes a matching line", func(mt *mtest.T) {
		cartCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/cart/5", nil)
		cartRouter().ServeHTTP(w, req)

		require.Equal(mt, http.StatusOK, w.Code)
		assert.JSONEq(mt, `{"message":"Item removed"}`, w.Body.String())
	})

	mt.Run("succeeds for an id that is not in the cart", func(mt *mtest.T) {
		cartCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/cart/does-not-exist", nil)
		cartRouter().ServeHTTP(w, req)

		require.Equal(mt, http.StatusOK, w.Code)
		assert.JSONEq(mt, `{"message":"Item removed"}`, w.Body.String())
	})
}
