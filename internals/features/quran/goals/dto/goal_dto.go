package dto

import (
	"fmt"
	"time"

	"quranku_backend/internals/features/quran/goals/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreateGoalRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Type   string    `json:"type" validate:"required,oneof=DAILY_PAGE DEADLINE_QURAN"`

	// Hanya untuk DAILY_PAGE
	TargetAmount *int `json:"target_amount" validate:"omitempty,min=1,max=604"`
	// Hanya untuk DEADLINE_QURAN, format YYYY-MM-DD
	Deadline *string `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
}

// Normalize menjaga invariant "tepat satu dari target/deadline aktif sesuai type"
// dan mengembalikan deadline yang sudah di-parse (kalau ada).
func (r *CreateGoalRequest) Normalize(now time.Time) (*datatypes.Date, error) {
	switch model.GoalTypeEnum(r.Type) {
	case model.GoalTypeDailyPage:
		if r.TargetAmount == nil {
			return nil, fmt.Errorf("target_amount wajib diisi untuk goal DAILY_PAGE")
		}
		if r.Deadline != nil {
			return nil, fmt.Errorf("deadline tidak berlaku untuk goal DAILY_PAGE")
		}
		return nil, nil
	case model.GoalTypeDeadlineQuran:
		if r.Deadline == nil {
			return nil, fmt.Errorf("deadline wajib diisi untuk goal DEADLINE_QURAN")
		}
		if r.TargetAmount != nil {
			return nil, fmt.Errorf("target_amount tidak berlaku untuk goal DEADLINE_QURAN")
		}
		t, err := time.ParseInLocation("2006-01-02", *r.Deadline, now.Location())
		if err != nil {
			return nil, fmt.Errorf("format deadline tidak valid (YYYY-MM-DD)")
		}
		if !t.After(now) {
			return nil, fmt.Errorf("deadline harus di masa depan")
		}
		d := datatypes.Date(t)
		return &d, nil
	}
	return nil, fmt.Errorf("goal type tidak dikenal")
}

type UpdateGoalRequest struct {
	TargetAmount *int    `json:"target_amount" validate:"omitempty,min=1,max=604"`
	Deadline     *string `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Status       *string `json:"status" validate:"omitempty,oneof=ACTIVE COMPLETED CANCELLED"`
}
