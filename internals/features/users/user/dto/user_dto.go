package dto

type CreateUserRequest struct {
	Email              string  `json:"email" validate:"required,email"`
	UserName           *string `json:"user_name" validate:"omitempty,min=2,max=100"`
	EmailNotifications bool    `json:"email_notifications"`
}

type UpdateUserRequest struct {
	UserName           *string `json:"user_name" validate:"omitempty,min=2,max=100"`
	EmailNotifications *bool   `json:"email_notifications"`
}
