// 📁 controller/reminder_controller.go
package controller

import (
	"log"

	"quranku_backend/internals/features/notifications/dto"
	"quranku_backend/internals/features/notifications/model"
	notifService "quranku_backend/internals/features/notifications/service"
	helper "quranku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderController struct {
	DB      *gorm.DB
	Service *notifService.ReminderService
}

func NewReminderController(db *gorm.DB) *ReminderController {
	return &ReminderController{
		DB:      db,
		Service: notifService.NewReminderService(db, notifService.NewResendMailer()),
	}
}

// 🟢 SEND GOAL REMINDER: jalankan pipeline gate → evaluator → email → bookkeeping.
// Semua hasil dikembalikan sebagai outcome ber-tag, bukan exception.
func (ctrl *ReminderController) SendGoalReminder(c *fiber.Ctx) error {
	var body dto.SendGoalReminderRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := ctrl.Service.SendGoalReminder(c.UserContext(), body.UserID, body.GoalID)
	if err != nil {
		// Kegagalan internal: log detail, response generic.
		log.Printf("[SEND_REMINDER_ERROR] goal=%s user=%s: %v", body.GoalID, body.UserID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	switch result.Outcome {
	case notifService.OutcomeNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"outcome": result.Outcome,
			"message": result.Message,
		})
	case notifService.OutcomeRateLimited:
		log.Printf("[RATE_LIMITED] goal=%s user=%s", body.GoalID, body.UserID)
		return c.JSON(fiber.Map{
			"success":      false,
			"outcome":      result.Outcome,
			"rate_limited": true,
			"message":      result.Message,
		})
	case notifService.OutcomeNotNeeded:
		return c.JSON(fiber.Map{
			"success": true,
			"outcome": result.Outcome,
			"sent":    false,
			"message": result.Message,
		})
	case notifService.OutcomeSent:
		log.Printf("[NOTIFICATION_SENT] goal=%s to=%s", body.GoalID, result.EmailSentTo)
		return c.JSON(fiber.Map{
			"success":       true,
			"outcome":       result.Outcome,
			"sent":          true,
			"message":       result.Message,
			"email_sent_to": result.EmailSentTo,
		})
	default: // OutcomeSendFailed
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"outcome": result.Outcome,
			"message": result.Message,
		})
	}
}

// 🟢 LIST NOTIFICATION LOGS BY USER (paged, terbaru dulu)
func (ctrl *ReminderController) ListLogsByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.NotificationLogModel{}).
		Where("notification_log_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung log notifikasi")
	}

	var logs []model.NotificationLogModel
	if err := ctrl.DB.
		Where("notification_log_user_id = ?", userID).
		Order("notification_log_sent_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil log notifikasi")
	}

	return helper.JsonList(c, "", logs, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
