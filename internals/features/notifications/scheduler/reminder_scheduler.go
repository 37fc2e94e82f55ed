package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	notifService "quranku_backend/internals/features/notifications/service"
	goalmodel "quranku_backend/internals/features/quran/goals/model"
	usermodel "quranku_backend/internals/features/users/user/model"

	"gorm.io/gorm"
)

// StartGoalReminderScheduler menjalankan pengecekan reminder berkala di background.
// Interval default 24 jam, bisa dioverride lewat REMINDER_CHECK_INTERVAL_HOURS.
func StartGoalReminderScheduler(db *gorm.DB) {
	go func() {
		intervalHours := 24
		if val := os.Getenv("REMINDER_CHECK_INTERVAL_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalHours = parsed
			}
		}

		svc := notifService.NewReminderService(db, notifService.NewResendMailer())

		for {
			runReminderCheck(db, svc)
			time.Sleep(time.Duration(intervalHours) * time.Hour)
		}
	}()
}

func runReminderCheck(db *gorm.DB, svc *notifService.ReminderService) {
	log.Println("[NOTIFICATION_CHECK] Checking goals for notifications...")

	// Hanya user yang opt-in reminder email.
	var users []usermodel.UserModel
	if err := db.Where("email_notifications = ?", true).Find(&users).Error; err != nil {
		log.Printf("[NOTIFICATION_CHECK_ERROR] Gagal ambil user: %v", err)
		return
	}

	checked, sent := 0, 0
	for _, user := range users {
		var goals []goalmodel.GoalModel
		if err := db.
			Where("goal_user_id = ? AND goal_status = ?", user.ID, goalmodel.GoalStatusActive).
			Find(&goals).Error; err != nil {
			log.Printf("[NOTIFICATION_CHECK_ERROR] user=%s: %v", user.ID, err)
			continue
		}

		for _, goal := range goals {
			checked++
			result, err := svc.SendGoalReminder(context.Background(), user.ID, goal.GoalID)
			if err != nil {
				log.Printf("[NOTIFICATION_ERROR] goal=%s: %v", goal.GoalID, err)
				continue
			}
			switch result.Outcome {
			case notifService.OutcomeSent:
				sent++
				log.Printf("[NOTIFICATION_SENT] goal=%s - Email sent", goal.GoalID)
			case notifService.OutcomeRateLimited:
				log.Printf("[NOTIFICATION_SKIP] goal=%s - Rate limited", goal.GoalID)
			default:
				log.Printf("[NOTIFICATION_SKIP] goal=%s - %s", goal.GoalID, result.Message)
			}
		}
	}

	log.Printf("[NOTIFICATION_CHECK] Selesai: %d goal dicek, %d email terkirim", checked, sent)
}
