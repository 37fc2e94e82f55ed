// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	routeDetails "quranku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	routeDetails.PublicRoutes(app)

	// ===================== USER =====================
	log.Println("[INFO] Setting up USER group...")
	routeDetails.QuranRoutes(app, db)

	// ===================== NOTIFICATIONS =====================
	log.Println("[INFO] Setting up NOTIFICATION group...")
	routeDetails.NotificationRoutes(app, db)
}
