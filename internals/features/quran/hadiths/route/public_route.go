package route

import (
	hadithController "quranku_backend/internals/features/quran/hadiths/controller"

	"github.com/gofiber/fiber/v2"
)

// HadithPublicRoutes: /api/public/hadiths/...
func HadithPublicRoutes(router fiber.Router) {
	ctrl := hadithController.NewHadithController()

	hadiths := router.Group("/hadiths")
	hadiths.Get("/", ctrl.ListHadiths)
	hadiths.Get("/random", ctrl.GetRandomHadith)
}
