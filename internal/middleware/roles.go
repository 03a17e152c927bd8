package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HomeDecore/decor-booking-api/internal/httperr"
	"github.com/HomeDecore/decor-booking-api/internal/models"
)

// RequireRole gates a route on the user record's role field. Must run
// after AuthMiddleware; the role lives in the store, not in the token.
func RequireRole(db *gorm.DB, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.MustGet(ContextUserEmail).(string)

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			httperr.Forbidden(c, "forbidden_access", "Forbidden.")
			c.Abort()
			return
		}

		if user.Role != role {
			httperr.Forbidden(c, "forbidden_access", "Forbidden.")
			c.Abort()
			return
		}

		c.Next()
	}
}
