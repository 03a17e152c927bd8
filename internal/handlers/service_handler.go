package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HomeDecore/decor-booking-api/internal/httperr"
	"github.com/HomeDecore/decor-booking-api/internal/media"
	"github.com/HomeDecore/decor-booking-api/internal/models"
)

type ServiceHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewServiceHandler(db *gorm.DB, uploader *media.Uploader) *ServiceHandler {
	return &ServiceHandler{
		db:       db,
		uploader: uploader,
	}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Image           string  `json:"image"`
	Price           float64 `json:"price" binding:"required"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	LongDescription string  `json:"longDescription"`
	Duration        string  `json:"duration"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Image           *string  `json:"image,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Category        *string  `json:"category,omitempty"`
	Description     *string  `json:"description,omitempty"`
	LongDescription *string  `json:"longDescription,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	Reviews         *int     `json:"reviews,omitempty"`
	Duration        *string  `json:"duration,omitempty"`
	Available       *bool    `json:"available,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("created_at DESC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	var service models.Service
	if err := h.db.Where("id = ?", c.Param("id")).First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required fields.")
		return
	}

	if req.Price < 0 {
		httperr.BadRequest(c, "negative_price", "price must be a non-negative number.")
		return
	}

	service := models.Service{
		Name:            req.Name,
		Image:           req.Image,
		Price:           req.Price,
		Category:        req.Category,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Duration:        req.Duration,
		Available:       true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Failed to create service.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "insertedId": service.ID})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var service models.Service
	if err := h.db.Where("id = ?", c.Param("id")).First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Image != nil {
		service.Image = *req.Image
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "negative_price", "price must be a non-negative number.")
			return
		}
		service.Price = *req.Price
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.LongDescription != nil {
		service.LongDescription = *req.LongDescription
	}
	if req.Rating != nil {
		service.Rating = *req.Rating
	}
	if req.Reviews != nil {
		service.Reviews = *req.Reviews
	}
	if req.Duration != nil {
		service.Duration = *req.Duration
	}
	if req.Available != nil {
		service.Available = *req.Available
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to update service.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service updated successfully"})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	res := h.db.Where("id = ?", c.Param("id")).Delete(&models.Service{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Failed to delete service.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// UploadImage converts the upload to webp, stores it in S3, and points
// the service's image at the result.
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.Where("id = ?", id).First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "image file is required.")
		return
	}
	defer file.Close()

	data, err := media.ToWebP(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Could not decode image.")
		return
	}

	key := fmt.Sprintf("services/%s/%d.webp", id, time.Now().UnixNano())
	url, err := h.uploader.Upload(c.Request.Context(), key, data)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to store image.")
		return
	}

	service.Image = url
	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to update service.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": url})
}
