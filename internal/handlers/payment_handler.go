package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	domain "github.com/HomeDecore/decor-booking-api/internal/domain/booking"
	"github.com/HomeDecore/decor-booking-api/internal/httperr"
	"github.com/HomeDecore/decor-booking-api/internal/httpresp"
	ucPayment "github.com/HomeDecore/decor-booking-api/internal/usecase/payment"
)

type PaymentHandler struct {
	sessionUC   *ucPayment.CreateCheckoutSession
	reconcileUC *ucPayment.Reconcile
	repo        domain.Repository
}

func NewPaymentHandler(
	sessionUC *ucPayment.CreateCheckoutSession,
	reconcileUC *ucPayment.Reconcile,
	repo domain.Repository,
) *PaymentHandler {
	return &PaymentHandler{
		sessionUC:   sessionUC,
		reconcileUC: reconcileUC,
		repo:        repo,
	}
}

type CheckoutSessionRequest struct {
	BookingID     string  `json:"bookingId" binding:"required"`
	BookingName   string  `json:"bookingName"`
	TrackingID    string  `json:"trackingId"`
	CustomerEmail string  `json:"customerEmail" binding:"required"`
	Cost          float64 `json:"cost" binding:"required"`
}

// ======================================================
// CHECKOUT SESSION
// ======================================================

func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var req CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required payment fields.")
		return
	}

	res, err := h.sessionUC.Execute(c.Request.Context(), ucPayment.CreateSessionInput{
		BookingID:     req.BookingID,
		BookingName:   req.BookingName,
		TrackingID:    req.TrackingID,
		CustomerEmail: req.CustomerEmail,
		Cost:          req.Cost,
	})
	if err != nil {
		if code := httperr.BusinessCode(err); code != "" {
			httperr.BadRequest(c, code, "Invalid checkout request.")
			return
		}
		log.Println("checkout session error:", err)
		httperr.Internal(c, "checkout_session_failed", "Failed to create checkout session.")
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// RECONCILE (PATCH /payment-success)
// ======================================================

func (h *PaymentHandler) PaymentSuccess(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		httperr.BadRequest(c, "missing_session_id", "Missing session_id.")
		return
	}

	res, err := h.reconcileUC.Execute(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_metadata"):
			httperr.BadRequest(c, "missing_metadata", "Missing metadata.")
		case httperr.IsBusiness(err, "reconciliation_in_progress"):
			httperr.Write(c, 409, "reconciliation_in_progress", "Payment is being processed, retry shortly.")
		default:
			log.Println("payment reconcile error:", err)
			httperr.Internal(c, "payment_reconcile_failed", "Server error.")
		}
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// LIST
// ======================================================

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.repo.ListPaymentsByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_payments", "Failed to list payments.")
		return
	}

	httpresp.OK(c, payments)
}
