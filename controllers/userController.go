package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"smart-order/helpers"
	"smart-order/middleware"
	"smart-order/models"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates against the store and issues the session tokens. The
// response carries the role's capability tags so the client knows which
// surfaces to draw; enforcement still happens server-side per route.
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		var req loginRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := dataStore.Login(ctx, req.Email, req.Password)
		if err != nil {
			// One message for wrong email, wrong password and inactive
			// account alike.
			c.JSON(statusFromErr(err), gin.H{"error": "email or password is incorrect"})
			return
		}

		token, refreshToken, err := helpers.GenerateAllTokens(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":          user,
			"token":         token,
			"refresh_token": refreshToken,
			"capabilities":  middleware.Capabilities(user.Role),
		})
	}
}

func GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		users, err := dataStore.GetUsers(ctx)
		if err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "error occurred while listing users"})
			return
		}
		for i := range users {
			users[i].Password = ""
		}
		c.JSON(http.StatusOK, users)
	}
}

func CreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		var user models.User
		if err := c.BindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		hash, err := HashPassword(user.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
			return
		}
		user.Password = hash

		created, err := dataStore.AddUser(ctx, user)
		if err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "user was not created"})
			return
		}
		created.Password = ""
		c.JSON(http.StatusOK, created)
	}
}

func UpdateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		var user models.User
		if err := c.BindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user.ID = c.Param("user_id")
		if err := validate.Struct(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		hash, err := HashPassword(user.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
			return
		}
		user.Password = hash

		if err := dataStore.UpdateUser(ctx, user); err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "user update failed"})
			return
		}
		user.Password = ""
		c.JSON(http.StatusOK, user)
	}
}

func DeleteUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		uid, _ := c.Get("uid")
		if uid == c.Param("user_id") {
			c.JSON(http.StatusConflict, gin.H{"error": "cannot delete your own account"})
			return
		}

		if err := dataStore.DeleteUser(ctx, c.Param("user_id")); err != nil {
			c.JSON(statusFromErr(err), gin.H{"error": "user delete failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
	}
}
