package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GoalTypeEnum string

const (
	// Target halaman per hari
	GoalTypeDailyPage GoalTypeEnum = "DAILY_PAGE"
	// Khatam sebelum tanggal tertentu
	GoalTypeDeadlineQuran GoalTypeEnum = "DEADLINE_QURAN"
)

type GoalStatusEnum string

const (
	GoalStatusActive    GoalStatusEnum = "ACTIVE"
	GoalStatusCompleted GoalStatusEnum = "COMPLETED"
	GoalStatusCancelled GoalStatusEnum = "CANCELLED"
)

// Selaras dengan tabel goals:
// - goal_target_amount hanya bermakna untuk DAILY_PAGE  -> *int
// - goal_deadline hanya bermakna untuk DEADLINE_QURAN   -> *datatypes.Date
// - tepat satu dari keduanya aktif, ditentukan goal_type (dijaga di DTO)
// - goal_last_notification_sent nullable; bersama goal_notification_count
//   hanya dimutasi oleh driver reminder setelah kirim email terkonfirmasi
type GoalModel struct {
	GoalID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:goal_id" json:"goal_id"`
	GoalUserID uuid.UUID `gorm:"type:uuid;not null;column:goal_user_id;index:idx_goals_user_status,priority:1" json:"goal_user_id"`

	GoalType         GoalTypeEnum    `gorm:"type:varchar(20);not null;column:goal_type" json:"goal_type"`
	GoalTargetAmount *int            `gorm:"column:goal_target_amount" json:"goal_target_amount,omitempty"`
	GoalDeadline     *datatypes.Date `gorm:"column:goal_deadline" json:"goal_deadline,omitempty"`

	GoalStatus GoalStatusEnum `gorm:"type:varchar(20);not null;default:'ACTIVE';column:goal_status;index:idx_goals_user_status,priority:2" json:"goal_status"`

	GoalLastNotificationSent *time.Time `gorm:"column:goal_last_notification_sent;type:timestamptz" json:"goal_last_notification_sent,omitempty"`
	GoalNotificationCount    int        `gorm:"not null;default:0;column:goal_notification_count" json:"goal_notification_count"`

	GoalCreatedAt time.Time      `gorm:"column:goal_created_at;type:timestamptz;not null;autoCreateTime" json:"goal_created_at"`
	GoalUpdatedAt time.Time      `gorm:"column:goal_updated_at;type:timestamptz;not null;autoUpdateTime" json:"goal_updated_at"`
	GoalDeletedAt gorm.DeletedAt `gorm:"column:goal_deleted_at;index" json:"goal_deleted_at,omitempty"`
}

func (GoalModel) TableName() string {
	return "goals"
}

// DeadlineTime mengembalikan deadline sebagai time.Time (akhir hari tidak dihitung;
// tanggal dibaca apa adanya, jam 00:00 lokal).
func (g *GoalModel) DeadlineTime() (time.Time, bool) {
	if g.GoalDeadline == nil {
		return time.Time{}, false
	}
	return time.Time(*g.GoalDeadline), true
}
