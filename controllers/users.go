package controllers

import (
	"errors"
	"net/http"
	"time"

	models "github.com/Fares2411/FaresGames/models/postgres"
	"github.com/Fares2411/FaresGames/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRequest is the registration payload. Birthdate arrives as a
// plain date string.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Password  string `json:"password" binding:"required,min=6"`
	Birthdate string `json:"birthdate" binding:"omitempty,datetime=2006-01-02"`
	Country   string `json:"country" binding:"omitempty,max=100"`
}

// UserResponse is the public view of a user, without the password.
type UserResponse struct {
	Email     string  `json:"email"`
	Username  string  `json:"username"`
	Birthdate *string `json:"birthdate"`
	Country   string  `json:"country"`
}

func userResponse(user *models.User) UserResponse {
	resp := UserResponse{
		Email:    user.EmailAddress,
		Username: user.UserName,
		Country:  user.Country,
	}
	if user.Birthdate != nil {
		birthdate := user.Birthdate.Format("2006-01-02")
		resp.Birthdate = &birthdate
	}
	return resp
}

// @Summary Register a new user
// @Description Creates a user account. Email and username must both be unused.
// @Tags users
// @Accept json
// @Produce json
// @Param user body controllers.RegisterRequest true "User to register"
// @Success 201 {object} controllers.UserResponse
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/users/register [post]
func RegisterUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var existing models.User
		err := db.Where("email_address = ? OR user_name = ?", req.Email, req.Username).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email or username already registered"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		user := models.User{
			EmailAddress: req.Email,
			UserName:     req.Username,
			Country:      req.Country,
			Password:     req.Password,
		}
		if req.Birthdate != "" {
			birthdate, err := time.Parse("2006-01-02", req.Birthdate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid birthdate"})
				return
			}
			user.Birthdate = &birthdate
		}

		if err := db.Create(&user).Error; err != nil {
			// The unique constraints are the backstop for a racing
			// duplicate registration.
			if utils.IsUniqueViolation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email or username already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		c.JSON(http.StatusCreated, userResponse(&user))
	}
}

// @Summary Get a user by email
// @Tags users
// @Produce json
// @Param email path string true "User email address"
// @Success 200 {object} controllers.UserResponse
// @Failure 404 {object} object{error=string}
// @Router /api/users/{email} [get]
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		user, err := utils.CheckUserExists(db, email)
		if err != nil {
			if errors.Is(err, utils.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			}
			return
		}

		c.JSON(http.StatusOK, userResponse(user))
	}
}

// VerifyPasswordRequest carries the credentials to verify.
type VerifyPasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary Verify user credentials
// @Description Compares the submitted password against the stored one.
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body controllers.VerifyPasswordRequest true "Credentials"
// @Success 200 {object} object{email=string,username=string,message=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/users/verify-password [post]
func VerifyPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := utils.CheckUserExists(db, req.Email)
		if err != nil {
			if errors.Is(err, utils.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			}
			return
		}

		// Plaintext equality, matching the stored data format. A password
		// hash migration would replace this comparison.
		if user.Password != req.Password {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"email":    user.EmailAddress,
			"username": user.UserName,
			"message":  "Authentication successful",
		})
	}
}
