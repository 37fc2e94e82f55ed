package route

import (
	notifController "quranku_backend/internals/features/notifications/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NotificationRoutes: /api/n/...
func NotificationRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := notifController.NewReminderController(db)

	router.Post("/goal-reminders", ctrl.SendGoalReminder)
	router.Get("/logs/user/:user_id", ctrl.ListLogsByUser)
}

// ValidateEmailPublicRoute: /api/public/validate-email
func ValidateEmailPublicRoute(router fiber.Router) {
	ctrl := notifController.NewValidateEmailController()
	router.Post("/validate-email", ctrl.ValidateEmail)
}
