package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/HomeDecore/decor-booking-api/internal/domain/booking"
	"github.com/HomeDecore/decor-booking-api/internal/httperr"
	"github.com/HomeDecore/decor-booking-api/internal/models"
	"github.com/HomeDecore/decor-booking-api/internal/validators"
)

type DecoratorHandler struct {
	db *gorm.DB
}

func NewDecoratorHandler(db *gorm.DB) *DecoratorHandler {
	return &DecoratorHandler{db: db}
}

// --------- Requests ---------

type ApplyDecoratorRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
}

type ApproveDecoratorRequest struct {
	Role string `json:"role" binding:"required"`
}

type DecoratorStatusRequest struct {
	WorkingStatus string `json:"deceretorWorkingStatus" binding:"required"`
}

// ======================================================
// APPLY
// ======================================================

func (h *DecoratorHandler) Apply(c *gin.Context) {
	var req ApplyDecoratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and email are required.")
		return
	}

	// Applications are contacted by email, so the domain gets the full
	// resolution check, not just the shape check.
	if !validators.IsEmailSyntaxValid(req.Email) || !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "Email address is not deliverable.")
		return
	}

	decorator := models.Decorator{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Specialty:     req.Specialty,
		Role:          domain.RolePending,
		WorkingStatus: domain.DecoratorPending,
	}

	if err := h.db.Create(&decorator).Error; err != nil {
		httperr.Internal(c, "failed_to_apply", "Failed to submit application.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": decorator.ID})
}

// ======================================================
// LIST
// ======================================================

func (h *DecoratorHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Decorator{})

	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}
	if specialty := c.Query("specialty"); specialty != "" {
		q = q.Where("specialty = ?", specialty)
	}
	if status := c.Query("decoratorWorkingStatus"); status != "" {
		q = q.Where("working_status = ?", status)
	}

	var decorators []models.Decorator
	if err := q.Order("created_at DESC").Find(&decorators).Error; err != nil {
		httperr.Internal(c, "failed_to_list_decorators", "Failed to list decorators.")
		return
	}

	c.JSON(http.StatusOK, decorators)
}

// ======================================================
// APPROVE / SET ROLE (ADMIN)
// ======================================================

func (h *DecoratorHandler) Approve(c *gin.Context) {
	id := c.Param("id")

	var req ApproveDecoratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "role is required.")
		return
	}

	var decorator models.Decorator
	if err := h.db.Where("id = ?", id).First(&decorator).Error; err != nil {
		httperr.NotFound(c, "decorator_not_found", "Decorator not found.")
		return
	}

	decorator.Role = req.Role
	// Availability opens only on a real approval.
	if req.Role == domain.RoleDecorator {
		decorator.WorkingStatus = domain.DecoratorAvailable
	}

	res := h.db.Save(&decorator)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_decorator", "Failed to update decorator.")
		return
	}

	// Best-effort role mirror onto the user record; a miss here never
	// fails the approval.
	if req.Role == domain.RoleDecorator {
		if err := h.db.Model(&models.User{}).
			Where("email = ?", decorator.Email).
			Update("role", domain.RoleDecorator).Error; err != nil {
			log.Println("user role mirror failed:", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": res.RowsAffected})
}

// ======================================================
// SELF-SERVICE AVAILABILITY
// ======================================================

func (h *DecoratorHandler) UpdateWorkingStatus(c *gin.Context) {
	id := c.Param("id")

	var req DecoratorStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "deceretorWorkingStatus is required.")
		return
	}

	res := h.db.Model(&models.Decorator{}).
		Where("id = ?", id).
		Update("working_status", req.WorkingStatus)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_status", "Server error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"modifiedCount": res.RowsAffected})
}

// ======================================================
// DELETE (ADMIN)
// ======================================================

func (h *DecoratorHandler) Delete(c *gin.Context) {
	res := h.db.Where("id = ?", c.Param("id")).Delete(&models.Decorator{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_decorator", "Failed to delete decorator.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": res.RowsAffected})
}
