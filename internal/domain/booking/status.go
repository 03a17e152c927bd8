package booking

// ===============================
// Working Status
// ===============================

// WorkingStatus tracks job progress. Payment status is an orthogonal
// axis on the booking, not part of this graph.
type WorkingStatus string

const (
	StatusPending           WorkingStatus = "pending"
	StatusDecoratorAssigned WorkingStatus = "decorator_assigned"
	StatusInDelivery        WorkingStatus = "in_delivery"
	StatusInProgress        WorkingStatus = "in_progress"
	StatusPendingPickup     WorkingStatus = "pending-pickup"
	StatusFinishedWork      WorkingStatus = "finished_work"
)

// Ledger labels that are not working statuses.
const EventBookingPlaced = "booking_placed"

// Payment status values on the booking.
const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// Decorator availability values.
const (
	DecoratorPending    = "pending"
	DecoratorAvailable  = "available"
	DecoratorInDelivery = "in_delivery"
)

// Roles mirrored between decorator and user records.
const (
	RoleUser      = "user"
	RoleDecorator = "decorator"
	RoleAdmin     = "admin"
	RolePending   = "pending"
)

func IsKnownWorkingStatus(s string) bool {
	switch WorkingStatus(s) {
	case StatusPending, StatusDecoratorAssigned, StatusInDelivery,
		StatusInProgress, StatusPendingPickup, StatusFinishedWork:
		return true
	}
	return false
}

// IsTerminal reports whether a status ends the work axis.
func IsTerminal(s WorkingStatus) bool {
	return s == StatusFinishedWork
}
