package details

import (
	notifRoute "quranku_backend/internals/features/notifications/route"
	rateLimiter "quranku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NotificationRoutes: /api/n/... — driver reminder + riwayat kirim.
func NotificationRoutes(app *fiber.App, db *gorm.DB) {
	notifGroup := app.Group("/api/n",
		rateLimiter.ReminderRateLimiter(),
	)

	notifRoute.NotificationRoutes(notifGroup, db)
}
