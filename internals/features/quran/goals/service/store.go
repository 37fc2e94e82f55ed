package service

import (
	"errors"

	goalmodel "quranku_backend/internals/features/quran/goals/model"
	sessionmodel "quranku_backend/internals/features/quran/sessions/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoalStore dan SessionStore memisahkan evaluator dari GORM
// supaya logika adherence bisa diuji dengan store in-memory.

type GoalStore interface {
	// FindByUserAndID mengembalikan (nil, nil) kalau goal tidak ditemukan.
	FindByUserAndID(userID, goalID uuid.UUID) (*goalmodel.GoalModel, error)
}

type SessionStore interface {
	ListByUser(userID uuid.UUID) ([]sessionmodel.QuranSessionModel, error)
}

// ===== Implementasi GORM =====

type GormGoalStore struct {
	DB *gorm.DB
}

func (s *GormGoalStore) FindByUserAndID(userID, goalID uuid.UUID) (*goalmodel.GoalModel, error) {
	var goal goalmodel.GoalModel
	err := s.DB.
		Where("goal_user_id = ? AND goal_id = ?", userID, goalID).
		Take(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

type GormSessionStore struct {
	DB *gorm.DB
}

func (s *GormSessionStore) ListByUser(userID uuid.UUID) ([]sessionmodel.QuranSessionModel, error) {
	var sessions []sessionmodel.QuranSessionModel
	if err := s.DB.
		Where("quran_session_user_id = ?", userID).
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
