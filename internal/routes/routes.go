package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/HomeDecore/decor-booking-api/internal/config"
	"github.com/HomeDecore/decor-booking-api/internal/handlers"
	infraRepo "github.com/HomeDecore/decor-booking-api/internal/infra/repository"
	"github.com/HomeDecore/decor-booking-api/internal/media"
	"github.com/HomeDecore/decor-booking-api/internal/middleware"
	"github.com/HomeDecore/decor-booking-api/internal/payments"
	"github.com/HomeDecore/decor-booking-api/internal/tracking"
	ucBooking "github.com/HomeDecore/decor-booking-api/internal/usecase/booking"
	ucPayment "github.com/HomeDecore/decor-booking-api/internal/usecase/payment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (CONSTRUCTED ONCE, INJECTED EVERYWHERE)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	trackingLogger := tracking.New(db)
	ledger := tracking.NewDispatcher(trackingLogger)

	provider, err := payments.NewMercadoPagoProvider(cfg.MPAccessToken, cfg.SiteDomain)
	if err != nil {
		log.Fatalf("failed to init checkout provider: %v", err)
	}

	reconcileLock := payments.NewReconcileLock(rdb)
	uploader := media.NewUploader(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, ledger)
	assignDecoratorUC := ucBooking.NewAssignDecorator(bookingRepo, ledger, cfg.Timezone)
	updateStatusUC := ucBooking.NewUpdateWorkingStatus(bookingRepo, ledger)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	statusSummaryUC := ucBooking.NewStatusSummary(bookingRepo)

	sessionUC := ucPayment.NewCreateCheckoutSession(provider)
	reconcileUC := ucPayment.NewReconcile(bookingRepo, provider, reconcileLock, ledger)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		assignDecoratorUC,
		updateStatusUC,
		listBookingsUC,
		statusSummaryUC,
		bookingRepo,
	)
	paymentHandler := handlers.NewPaymentHandler(sessionUC, reconcileUC, bookingRepo)
	decoratorHandler := handlers.NewDecoratorHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, uploader)
	userHandler := handlers.NewUserHandler(db)
	trackingHandler := handlers.NewTrackingHandler(trackingLogger)

	auth := middleware.AuthMiddleware(cfg)
	admin := middleware.RequireRole(db, "admin")

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/services", serviceHandler.List)
	r.GET("/services/:id", serviceHandler.Get)

	r.POST("/decorator", decoratorHandler.Apply)
	r.GET("/decorator", decoratorHandler.List)

	r.GET("/booking/decorator", bookingHandler.DecoratorQueue)

	r.GET("/trackings/:trackingId/logs", trackingHandler.Logs)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	secured := r.Group("/")
	secured.Use(auth)
	{
		secured.POST("/booking", bookingHandler.Create)
		secured.GET("/booking", bookingHandler.List)
		secured.PATCH("/booking/:id", bookingHandler.Assign)
		secured.PATCH("/booking/:id/workingStatus", bookingHandler.UpdateWorkingStatus)
		secured.DELETE("/booking/:id", bookingHandler.Delete)
		secured.GET("/booking/working-status/status", admin, bookingHandler.StatusSummary)

		secured.PATCH("/decorator/:id", admin, decoratorHandler.Approve)
		secured.PATCH("/decorator/:id/workingStatus", decoratorHandler.UpdateWorkingStatus)
		secured.DELETE("/decorator/:id", admin, decoratorHandler.Delete)

		secured.POST("/services", admin, serviceHandler.Create)
		secured.PATCH("/services/:id", admin, serviceHandler.Update)
		secured.DELETE("/services/:id", admin, serviceHandler.Delete)
		secured.POST("/services/:id/image", admin, serviceHandler.UploadImage)

		secured.POST("/payment-checkout-session", paymentHandler.CreateCheckoutSession)
		secured.PATCH("/payment-success", paymentHandler.PaymentSuccess)
		secured.GET("/payments", paymentHandler.List)

		secured.POST("/users", admin, userHandler.Create)
		secured.GET("/users", userHandler.List)
		secured.GET("/users/:email/role", userHandler.GetRole)
		secured.PATCH("/users/:id/role", admin, userHandler.SetRole)
	}
}
