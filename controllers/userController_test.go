package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func userRouter() *gin.Engine {
	router := gin.New()
	router.POST("/register", Register())
	router.POST("/login", Login())
	return router
}

func userDoc(userid, username, email, passwordHash string) bson.D {
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "username", Value: username},
		{Key: "userid", Value: userid},
		{Key: "email", Value: email},
		{Key: "password", Value: passwordHash},
	}
}

func TestRegister(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("stores a new user", func(mt *mtest.T) {
		userCollection = mt.Coll
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "cafe.user", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		body := `{"username":"Alice","userid":"alice01","email":"alice@example.com","password":"secret123"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		userRouter().ServeHTTP(w, req)

		require.Equal(mt, http.StatusOK, w.Code)
		assert.Equal(mt, "Registration Successful", w.Body.String())
	})

	mt.Run("rejects a duplicate userid", func(mt *mtest.T) {
		userCollection = mt.Coll
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "cafe.user", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
		)

		body := `{"username":"Alice","userid":"alice01","email":"alice@example.com","password":"secret123"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		userRouter().ServeHTTP(w, req)

		require.Equal(mt, http.StatusBadRequest, w.Code)
		assert.Equal(mt, "User ID already exists", w.Body.String())
	})

	mt.Run("rejects an invalid payload", func(mt *mtest.T) {
		userCollection = mt.Coll

		body := `{"username":"Alice","userid":"alice01","email":"not-an-email","password":"secret123"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
		userRouter().ServeHTTP(w, req)

		require.Equal(mt, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	storedHash := HashPassword("secret123")

	mt.Run("succeeds on an exact password match", func(mt *mtest.T) {
		userCollection = mt.Coll
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "cafe.user", mtest.FirstBatch,
				userDoc("alice01", "Alice", "alice@example.com", storedHash)),
		)

		body := `{"userid":"alice01","password":"secret123"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		userRouter().ServeHTTP(w, req)

		require.Equal(mt, http.StatusOK, w.Code)
		assert.Equal(mt, "Login Successful", w.Body.String())
		assert.NotEmpty(mt, w.Header().Get("token"))
	})

	mt.Run("rejects a wrong password", func(mt *mtest.T) {
		userCollection = mt.Coll
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "cafe.user", mtest.FirstBatch,
				userDoc("alice01", "Alice", "alice@example.com", storedHash)),
		)

		body := `{"userid":"alice01","password":"wrong-pass"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		userRouter().ServeHTTP(w, req)

		require.Equal(mt, http.StatusBadRequest, w.Code)
		assert.Equal(mt, "Invalid credentials", w.Body.String())
	})

	mt.Run("rejects an unknown userid with the same message", func(mt *mtest.T) {
		userCollection = mt.Coll
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "cafe.user", mtest.FirstBatch))

		body := `{"userid":"nobody","password":"secret123"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		userRouter().ServeHTTP(w, req)

		require.Equal(mt, http.StatusBadRequest, w.Code)
		assert.Equal(mt, "Invalid credentials", w.Body.String())
	})

	mt.Run("rejects a payload without credentials", func(mt *mtest.T) {
		userCollection = mt.Coll

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`))
		userRouter().ServeHTTP(w, req)

		require.Equal(mt, http.StatusBadRequest, w.Code)
		assert.Equal(mt, "Invalid credentials", w.Body.String())
	})
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash := HashPassword("secret123")

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, VerifyPassword("secret123", hash))
	assert.False(t, VerifyPassword("secret124", hash))
}
