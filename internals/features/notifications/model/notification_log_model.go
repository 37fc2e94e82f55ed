package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Selaras dengan tabel notification_logs:
// - satu baris per email reminder yang terkonfirmasi terkirim
// - notification_log_recommendations: text[] (rekomendasi bacaan saat kirim, bisa kosong)
// - append-only: tidak ada update/delete
type NotificationLogModel struct {
	NotificationLogID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notification_log_id" json:"notification_log_id"`
	NotificationLogUserID uuid.UUID `gorm:"type:uuid;not null;column:notification_log_user_id;index:idx_notification_logs_user" json:"notification_log_user_id"`
	NotificationLogGoalID uuid.UUID `gorm:"type:uuid;not null;column:notification_log_goal_id;index:idx_notification_logs_goal" json:"notification_log_goal_id"`

	NotificationLogGoalType string `gorm:"type:varchar(20);not null;column:notification_log_goal_type" json:"notification_log_goal_type"`
	NotificationLogEmail    string `gorm:"size:255;not null;column:notification_log_email" json:"notification_log_email"`

	NotificationLogRecommendations pq.StringArray `gorm:"column:notification_log_recommendations;type:text[]" json:"notification_log_recommendations,omitempty"`

	NotificationLogSentAt time.Time `gorm:"column:notification_log_sent_at;type:timestamptz;not null;autoCreateTime" json:"notification_log_sent_at"`
}

func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
