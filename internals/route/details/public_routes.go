package details

import (
	notifRoute "quranku_backend/internals/features/notifications/route"
	hadithRoute "quranku_backend/internals/features/quran/hadiths/route"
	rateLimiter "quranku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
)

// PublicRoutes: endpoint tanpa identitas user — katalog hadith & validasi email.
func PublicRoutes(app *fiber.App) {
	public := app.Group("/api/public",
		rateLimiter.GlobalRateLimiter(),
	)

	hadithRoute.HadithPublicRoutes(public)

	validateEmail := public.Group("", rateLimiter.ValidateEmailRateLimiter())
	notifRoute.ValidateEmailPublicRoute(validateEmail)
}
