package route

import (
	sessionController "quranku_backend/internals/features/quran/sessions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// QuranSessionUserRoutes: /api/u/quran-sessions/...
func QuranSessionUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := sessionController.NewQuranSessionController(db)

	sessions := router.Group("/quran-sessions")
	sessions.Post("/", ctrl.CreateSession)
	sessions.Get("/user/:user_id", ctrl.ListSessionsByUser)
	sessions.Get("/user/:user_id/progress", ctrl.GetProgress)
}
