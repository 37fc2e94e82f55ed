package route

import (
	goalController "quranku_backend/internals/features/quran/goals/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GoalUserRoutes: /api/u/goals/...
func GoalUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := goalController.NewGoalController(db)

	goals := router.Group("/goals")
	goals.Post("/", ctrl.CreateGoal)
	goals.Get("/user/:user_id", ctrl.ListGoalsByUser)
	goals.Get("/:id", ctrl.GetGoal)
	goals.Get("/:id/adherence", ctrl.CheckAdherence)
	goals.Put("/:id", ctrl.UpdateGoal)
	goals.Delete("/:id", ctrl.DeleteGoal)
}
