package details

import (
	goalRoute "quranku_backend/internals/features/quran/goals/route"
	sessionRoute "quranku_backend/internals/features/quran/sessions/route"
	userRoute "quranku_backend/internals/features/users/user/route"
	rateLimiter "quranku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// QuranRoutes: /api/u/... — user, sesi baca, dan goal.
func QuranRoutes(app *fiber.App, db *gorm.DB) {
	userGroup := app.Group("/api/u",
		rateLimiter.GlobalRateLimiter(),
	)

	userRoute.UserUserRoutes(userGroup, db)
	sessionRoute.QuranSessionUserRoutes(userGroup, db)
	goalRoute.GoalUserRoutes(userGroup, db)
}
