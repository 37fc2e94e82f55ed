package route

import (
	userController "quranku_backend/internals/features/users/user/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserUserRoutes: /api/u/users/...
func UserUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := router.Group("/users")
	users.Post("/", ctrl.CreateUser)
	users.Get("/", ctrl.ListUsers)
	users.Get("/:id", ctrl.GetUser)
	users.Put("/:id", ctrl.UpdateUser)
}
