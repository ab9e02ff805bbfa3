package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"go-cafe-ordering/database"
	"go-cafe-ordering/helpers"
	"go-cafe-ordering/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

var userCollection *mongo.Collection = database.OpenCollection(database.Client, "user")
var validate = validator.New()

// Register creates a user keyed by their chosen userid. The response bodies
// are plain text; the browser client renders them verbatim.
func Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var user models.User
		if err := c.BindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&user); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		count, err := userCollection.CountDocuments(ctx, bson.M{"userid": user.User_id})
		if err != nil {
			log.Println("error checking for existing user:", err)
			c.String(http.StatusInternalServerError, "Failed to register user")
			return
		}
		if count > 0 {
			c.String(http.StatusBadRequest, "User ID already exists")
			return
		}

		password := HashPassword(*user.Password)
		user.Password = &password
		user.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		user.Updated_at = user.Created_at
		user.ID = primitive.NewObjectID()

		if _, err := userCollection.InsertOne(ctx, user); err != nil {
			log.Println("error inserting user:", err)
			c.String(http.StatusInternalServerError, "Failed to register user")
			return
		}
		c.String(http.StatusOK, "Registration Successful")
	}
}

// Login verifies the userid/password pair. Unknown ids and wrong passwords get
// the same generic rejection. On success a signed token is returned in the
// "token" header for the staff-only routes.
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var credentials models.User
		var foundUser models.User
		if err := c.BindJSON(&credentials); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if credentials.User_id == nil || credentials.Password == nil {
			c.String(http.StatusBadRequest, "Invalid credentials")
			return
		}

		err := userCollection.FindOne(ctx, bson.M{"userid": credentials.User_id}).Decode(&foundUser)
		if err != nil {
			c.String(http.StatusBadRequest, "Invalid credentials")
			return
		}
		if !VerifyPassword(*credentials.Password, *foundUser.Password) {
			c.String(http.StatusBadRequest, "Invalid credentials")
			return
		}

		token, err := helpers.GenerateToken(*foundUser.Username, *foundUser.User_id)
		if err != nil {
			log.Println("error generating token:", err)
			c.String(http.StatusInternalServerError, "Failed to log in")
			return
		}
		c.Header("token", token)
		c.String(http.StatusOK, "Login Successful")
	}
}

// GetUsers lists registered users for staff, passwords excluded. Sits behind
// the authentication middleware.
func GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		projection := options.Find().SetProjection(bson.M{"password": 0})
		cursor, err := userCollection.Find(ctx, bson.M{}, projection)
		if err != nil {
			log.Println("error listing users:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing users"})
			return
		}

		allUsers := make([]bson.M, 0)
		if err := cursor.All(ctx, &allUsers); err != nil {
			log.Println("error decoding users:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing users"})
			return
		}
		c.JSON(http.StatusOK, allUsers)
	}
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Panic(err)
	}
	return string(bytes)
}

func VerifyPassword(providedPassword string, storedPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(storedPassword), []byte(providedPassword))
	return err == nil
}
