package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/HomeDecore/decor-booking-api/internal/domain/booking"
	"github.com/HomeDecore/decor-booking-api/internal/httperr"
	"github.com/HomeDecore/decor-booking-api/internal/httpresp"
	ucBooking "github.com/HomeDecore/decor-booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC  *ucBooking.CreateBooking
	assignUC  *ucBooking.AssignDecorator
	statusUC  *ucBooking.UpdateWorkingStatus
	listUC    *ucBooking.ListBookings
	summaryUC *ucBooking.StatusSummary
	repo      domain.Repository
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	assignUC *ucBooking.AssignDecorator,
	statusUC *ucBooking.UpdateWorkingStatus,
	listUC *ucBooking.ListBookings,
	summaryUC *ucBooking.StatusSummary,
	repo domain.Repository,
) *BookingHandler {
	return &BookingHandler{
		createUC:  createUC,
		assignUC:  assignUC,
		statusUC:  statusUC,
		listUC:    listUC,
		summaryUC: summaryUC,
		repo:      repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	UserEmail   string  `json:"userEmail" binding:"required"`
	ServiceID   string  `json:"serviceId" binding:"required"`
	ServiceName string  `json:"serviceName"`
	Category    string  `json:"category"`
	BookedDate  string  `json:"bookedDate"`
	SquareFeet  float64 `json:"squareFeet"`
	FinalCost   float64 `json:"finalCost"`
}

type AssignDecoratorRequest struct {
	BookedDate *string  `json:"bookedDate,omitempty"`
	SquareFeet *float64 `json:"squareFeet,omitempty"`
	FinalCost  *float64 `json:"finalCost,omitempty"`

	DecoratorID    string `json:"deceretorId"`
	DecoratorName  string `json:"deceretorName"`
	DecoratorEmail string `json:"deceretorEmail"`
}

type UpdateWorkingStatusRequest struct {
	WorkingStatus string `json:"workingStatus" binding:"required"`
	DecoratorID   string `json:"deceretorId"`
	TrackingID    string `json:"trackingId"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required fields.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserEmail:   req.UserEmail,
		ServiceID:   req.ServiceID,
		ServiceName: req.ServiceName,
		Category:    req.Category,
		BookedDate:  req.BookedDate,
		SquareFeet:  req.SquareFeet,
		FinalCost:   req.FinalCost,
	})
	if err != nil {
		if code := httperr.BusinessCode(err); code != "" {
			httperr.BadRequest(c, code, "Invalid booking request.")
			return
		}
		httperr.Internal(c, "failed_to_create_booking", "Failed to create booking.")
		return
	}

	httpresp.Created(c, res)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.listUC.Execute(
		c.Request.Context(),
		c.Query("email"),
		c.Query("deceretorEmail"),
		c.Query("workingStatus"),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.OK(c, bookings)
}

// DecoratorQueue hides finished_work unless the caller asks for it.
func (h *BookingHandler) DecoratorQueue(c *gin.Context) {
	bookings, err := h.listUC.ExecuteQueue(
		c.Request.Context(),
		c.Query("deceretorEmail"),
		c.Query("workingStatus"),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.OK(c, bookings)
}

// ======================================================
// ASSIGN / UPDATE TERMS
// ======================================================

func (h *BookingHandler) Assign(c *gin.Context) {
	var req AssignDecoratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return
	}

	res, err := h.assignUC.Execute(c.Request.Context(), ucBooking.AssignDecoratorInput{
		BookingID:      c.Param("id"),
		BookedDate:     req.BookedDate,
		SquareFeet:     req.SquareFeet,
		FinalCost:      req.FinalCost,
		DecoratorID:    req.DecoratorID,
		DecoratorName:  req.DecoratorName,
		DecoratorEmail: req.DecoratorEmail,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "invalid_booked_date"):
			httperr.BadRequest(c, "invalid_booked_date", "Invalid bookedDate format. Use DD-MM-YYYY.")
		case httperr.IsBusiness(err, "booked_date_in_past"):
			httperr.BadRequest(c, "booked_date_in_past", "Booked date must be today or a future date.")
		case httperr.IsBusiness(err, "negative_square_feet"):
			httperr.BadRequest(c, "negative_square_feet", "squareFeet must be a non-negative number.")
		case httperr.IsBusiness(err, "negative_final_cost"):
			httperr.BadRequest(c, "negative_final_cost", "finalCost must be a non-negative number.")
		default:
			httperr.Internal(c, "failed_to_update_booking", "Internal server error.")
		}
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// WORKING STATUS
// ======================================================

func (h *BookingHandler) UpdateWorkingStatus(c *gin.Context) {
	var req UpdateWorkingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "workingStatus is required.")
		return
	}

	res, err := h.statusUC.Execute(c.Request.Context(), ucBooking.UpdateWorkingStatusInput{
		BookingID:     c.Param("id"),
		WorkingStatus: req.WorkingStatus,
		DecoratorID:   req.DecoratorID,
		TrackingID:    req.TrackingID,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.BusinessCode(err) != "":
			httperr.BadRequest(c, httperr.BusinessCode(err), "Invalid working status.")
		default:
			httperr.Internal(c, "failed_to_update_working_status", "Internal server error.")
		}
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	deleted, err := h.repo.DeleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_delete_booking", "Failed to delete booking.")
		return
	}

	// Ledger and payment history survive the delete on purpose.
	httpresp.OK(c, gin.H{"deletedCount": deleted})
}

// ======================================================
// STATUS SUMMARY (ADMIN)
// ======================================================

func (h *BookingHandler) StatusSummary(c *gin.Context) {
	res, err := h.summaryUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_summarize", "Failed to aggregate booking statuses.")
		return
	}

	httpresp.OK(c, res)
}
