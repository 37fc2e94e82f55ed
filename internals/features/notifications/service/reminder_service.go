// 📁 service/reminder_service.go
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	notifmodel "quranku_backend/internals/features/notifications/model"
	goalmodel "quranku_backend/internals/features/quran/goals/model"
	goalService "quranku_backend/internals/features/quran/goals/service"
	usermodel "quranku_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// OutcomeEnum: hasil satu percobaan reminder — selalu structured, bukan exception.
type OutcomeEnum string

const (
	OutcomeNotFound    OutcomeEnum = "goal_not_found"
	OutcomeRateLimited OutcomeEnum = "rate_limited"
	OutcomeNotNeeded   OutcomeEnum = "not_needed"
	OutcomeSent        OutcomeEnum = "sent"
	OutcomeSendFailed  OutcomeEnum = "send_failed"
)

type ReminderResult struct {
	Outcome     OutcomeEnum                  `json:"outcome"`
	Message     string                       `json:"message,omitempty"`
	EmailSentTo string                       `json:"email_sent_to,omitempty"`
	Adherence   *goalService.AdherenceResult `json:"adherence,omitempty"`
}

// UserStore memisahkan driver dari GORM untuk kebutuhan test.
type UserStore interface {
	// FindByID mengembalikan (nil, nil) kalau user tidak ditemukan.
	FindByID(id uuid.UUID) (*usermodel.UserModel, error)
}

// SendRecorder mencatat kirim terkonfirmasi: bookkeeping goal + append log.
type SendRecorder interface {
	RecordSend(goal *goalmodel.GoalModel, sentAt time.Time, resetCount bool, entry *notifmodel.NotificationLogModel) error
}

// ReminderService adalah driver pipeline reminder:
// gate dulu, lalu evaluator, lalu transport; bookkeeping hanya setelah kirim terkonfirmasi.
type ReminderService struct {
	Goals    goalService.GoalStore
	Users    UserStore
	Checker  *goalService.Checker
	Mailer   Mailer
	Recorder SendRecorder
	Now      func() time.Time

	// Serialisasi read-modify-write bookkeeping per goal supaya dua percobaan
	// bersamaan tidak sama-sama lolos gate lalu double-send.
	goalLocks sync.Map // uuid.UUID -> *sync.Mutex
}

// NewReminderService merakit driver dengan store GORM dan mailer Resend.
func NewReminderService(db *gorm.DB, mailer Mailer) *ReminderService {
	goals := &goalService.GormGoalStore{DB: db}
	sessions := &goalService.GormSessionStore{DB: db}
	return &ReminderService{
		Goals:    goals,
		Users:    &GormUserStore{DB: db},
		Checker:  goalService.NewChecker(goals, sessions),
		Mailer:   mailer,
		Recorder: &GormSendRecorder{DB: db},
		Now:      time.Now,
	}
}

func (s *ReminderService) lockGoal(goalID uuid.UUID) *sync.Mutex {
	mu, _ := s.goalLocks.LoadOrStore(goalID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// SendGoalReminder menjalankan satu percobaan reminder untuk {user, goal}.
// Error hanya untuk kegagalan internal (store); semua hasil bisnis lewat ReminderResult.
func (s *ReminderService) SendGoalReminder(ctx context.Context, userID, goalID uuid.UUID) (*ReminderResult, error) {
	mu := s.lockGoal(goalID)
	mu.Lock()
	defer mu.Unlock()

	now := s.Now()

	goal, err := s.Goals.FindByUserAndID(userID, goalID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return &ReminderResult{Outcome: OutcomeNotFound, Message: "Goal tidak ditemukan"}, nil
	}

	// 1) Gate dulu — terlepas dari kepatuhan user.
	if goalService.ShouldRateLimitNotification(goal, now) {
		return &ReminderResult{Outcome: OutcomeRateLimited, Message: "Notification rate limit exceeded"}, nil
	}

	// 2) Evaluasi kepatuhan.
	adherence, err := s.Checker.CheckGoalAdherence(userID, goalID)
	if err != nil {
		return nil, err
	}
	if adherence == nil || !adherence.ShouldNotify {
		return &ReminderResult{
			Outcome:   OutcomeNotNeeded,
			Message:   "User is adhering to goal, no notification needed",
			Adherence: adherence,
		}, nil
	}

	// 3) Penerima = pemilik goal, dan harus opt-in reminder email.
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &ReminderResult{Outcome: OutcomeNotFound, Message: "User tidak ditemukan"}, nil
	}
	if !user.EmailNotifications {
		return &ReminderResult{
			Outcome: OutcomeNotNeeded,
			Message: "User belum mengaktifkan reminder email",
		}, nil
	}

	// 4) Kirim. Gagal transport → tidak ada mutasi state apa pun.
	if !s.Mailer.SendGoalReminder(ctx, user.Email, user.UserName, adherence) {
		return &ReminderResult{Outcome: OutcomeSendFailed, Message: "Failed to send email", Adherence: adherence}, nil
	}

	// 5) Bookkeeping setelah kirim terkonfirmasi.
	// Window mingguan sudah bergulir → counter mulai dari nol lagi.
	resetCount := goal.GoalLastNotificationSent != nil &&
		now.Sub(*goal.GoalLastNotificationSent) > 7*24*time.Hour

	var recommendations pq.StringArray
	if adherence.Deadline != nil {
		recommendations = pq.StringArray(adherence.Deadline.SurahsToRead)
	}
	entry := &notifmodel.NotificationLogModel{
		NotificationLogUserID:          user.ID,
		NotificationLogGoalID:          goal.GoalID,
		NotificationLogGoalType:        string(goal.GoalType),
		NotificationLogEmail:           user.Email,
		NotificationLogRecommendations: recommendations,
		NotificationLogSentAt:          now,
	}
	if err := s.Recorder.RecordSend(goal, now, resetCount, entry); err != nil {
		// Email sudah keluar; kegagalan pencatatan tetap error internal.
		return nil, err
	}

	return &ReminderResult{
		Outcome:     OutcomeSent,
		Message:     "Email notification sent successfully",
		EmailSentTo: user.Email,
		Adherence:   adherence,
	}, nil
}

// ===== Implementasi GORM =====

type GormUserStore struct {
	DB *gorm.DB
}

func (s *GormUserStore) FindByID(id uuid.UUID) (*usermodel.UserModel, error) {
	var user usermodel.UserModel
	err := s.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type GormSendRecorder struct {
	DB *gorm.DB
}

func (r *GormSendRecorder) RecordSend(goal *goalmodel.GoalModel, sentAt time.Time, resetCount bool, entry *notifmodel.NotificationLogModel) error {
	newCount := goal.GoalNotificationCount + 1
	if resetCount {
		newCount = 1
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&goalmodel.GoalModel{}).
			Where("goal_id = ?", goal.GoalID).
			Updates(map[string]any{
				"goal_last_notification_sent": sentAt,
				"goal_notification_count":     newCount,
			}).Error; err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
}
