package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/HomeDecore/decor-booking-api/internal/domain/booking"
	"github.com/HomeDecore/decor-booking-api/internal/httperr"
	"github.com/HomeDecore/decor-booking-api/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required"`
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "email is required.")
		return
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  domain.RoleUser,
	}

	// The unique index on email is the dedupe; no pre-check, so two
	// concurrent signups cannot both pass it.
	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusOK, gin.H{"message": "User already exists"})
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Failed to create user.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": user.ID})
}

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("created_at DESC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Failed to list users.")
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetRole defaults unknown emails to plain user, the frontend treats
// the role lookup as infallible.
func (h *UserHandler) GetRole(c *gin.Context) {
	var user models.User
	if err := h.db.Where("email = ?", c.Param("email")).First(&user).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"role": domain.RoleUser})
		return
	}

	c.JSON(http.StatusOK, gin.H{"role": user.Role})
}

func (h *UserHandler) SetRole(c *gin.Context) {
	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "role is required.")
		return
	}

	res := h.db.Model(&models.User{}).
		Where("id = ?", c.Param("id")).
		Update("role", req.Role)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_role", "Failed to update role.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": res.RowsAffected})
}
