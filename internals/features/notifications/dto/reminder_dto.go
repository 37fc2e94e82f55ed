package dto

import "github.com/google/uuid"

type SendGoalReminderRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	GoalID uuid.UUID `json:"goal_id" validate:"required"`
}

type ValidateEmailRequest struct {
	Email string `json:"email" validate:"required"`
}
