// 📁 controller/goal_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"quranku_backend/internals/features/quran/goals/dto"
	"quranku_backend/internals/features/quran/goals/model"
	goalService "quranku_backend/internals/features/quran/goals/service"
	helper "quranku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GoalController struct {
	DB *gorm.DB
}

func NewGoalController(db *gorm.DB) *GoalController {
	return &GoalController{DB: db}
}

// 🟢 CREATE GOAL: buat komitmen baru (DAILY_PAGE atau DEADLINE_QURAN)
func (ctrl *GoalController) CreateGoal(c *fiber.Ctx) error {
	var body dto.CreateGoalRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	deadline, err := body.Normalize(time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	goal := model.GoalModel{
		GoalUserID:       body.UserID,
		GoalType:         model.GoalTypeEnum(body.Type),
		GoalTargetAmount: body.TargetAmount,
		GoalDeadline:     deadline,
		GoalStatus:       model.GoalStatusActive,
	}

	if err := ctrl.DB.Create(&goal).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan goal")
	}

	return helper.JsonCreated(c, "Goal berhasil dibuat", goal)
}

// 🟢 LIST GOALS BY USER
func (ctrl *GoalController) ListGoalsByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	q := ctrl.DB.Where("goal_user_id = ?", userID)
	if status := c.Query("status"); status != "" {
		q = q.Where("goal_status = ?", status)
	}

	var goals []model.GoalModel
	if err := q.Order("goal_created_at DESC").Find(&goals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar goal")
	}

	return helper.JsonOK(c, "", goals)
}

// 🟢 GET GOAL BY ID
func (ctrl *GoalController) GetGoal(c *fiber.Ctx) error {
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Goal ID tidak valid")
	}

	var goal model.GoalModel
	if err := ctrl.DB.First(&goal, "goal_id = ?", goalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Goal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil goal")
	}

	return helper.JsonOK(c, "", goal)
}

// 🟢 UPDATE GOAL: target/deadline/status — bookkeeping notifikasi tidak tersentuh di sini
func (ctrl *GoalController) UpdateGoal(c *fiber.Ctx) error {
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Goal ID tidak valid")
	}

	var body dto.UpdateGoalRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var goal model.GoalModel
	if err := ctrl.DB.First(&goal, "goal_id = ?", goalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Goal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil goal")
	}

	updates := map[string]any{}
	if body.TargetAmount != nil {
		if goal.GoalType != model.GoalTypeDailyPage {
			return helper.JsonError(c, fiber.StatusBadRequest, "target_amount hanya berlaku untuk goal DAILY_PAGE")
		}
		updates["goal_target_amount"] = *body.TargetAmount
	}
	if body.Deadline != nil {
		if goal.GoalType != model.GoalTypeDeadlineQuran {
			return helper.JsonError(c, fiber.StatusBadRequest, "deadline hanya berlaku untuk goal DEADLINE_QURAN")
		}
		t, err := time.ParseInLocation("2006-01-02", *body.Deadline, time.Now().Location())
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "format deadline tidak valid (YYYY-MM-DD)")
		}
		updates["goal_deadline"] = datatypes.Date(t)
	}
	if body.Status != nil {
		updates["goal_status"] = *body.Status
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", goal)
	}

	if err := ctrl.DB.Model(&goal).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui goal")
	}

	return helper.JsonUpdated(c, "Goal berhasil diperbarui", goal)
}

// 🟢 DELETE GOAL (soft delete)
func (ctrl *GoalController) DeleteGoal(c *fiber.Ctx) error {
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Goal ID tidak valid")
	}

	res := ctrl.DB.Delete(&model.GoalModel{}, "goal_id = ?", goalID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus goal")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Goal tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Goal berhasil dihapus", fiber.Map{"goal_id": goalID})
}

// 🟢 CHECK ADHERENCE (read-only): evaluasi kepatuhan tanpa kirim notifikasi
func (ctrl *GoalController) CheckAdherence(c *fiber.Ctx) error {
	goalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Goal ID tidak valid")
	}
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id wajib diisi")
	}

	checker := goalService.NewChecker(
		&goalService.GormGoalStore{DB: ctrl.DB},
		&goalService.GormSessionStore{DB: ctrl.DB},
	)

	result, err := checker.CheckGoalAdherence(userID, goalID)
	if err != nil {
		log.Printf("[ADHERENCE_ERROR] goal=%s user=%s: %v", goalID, userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengevaluasi goal")
	}
	if result == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Goal tidak ditemukan atau tidak aktif")
	}

	return helper.JsonOK(c, "", result)
}
