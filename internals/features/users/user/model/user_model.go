package model

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName *string   `gorm:"size:100" json:"user_name,omitempty" validate:"omitempty,min=2,max=100"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`

	// Preferensi reminder email — scheduler hanya memproses user dengan flag ini aktif
	EmailNotifications bool `gorm:"not null;default:false" json:"email_notifications"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError mengubah error validasi menjadi format yang lebih jelas
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		msgs := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				msgs = append(msgs, fieldErr.Field()+" wajib diisi.")
			case "email":
				msgs = append(msgs, "Format email tidak valid.")
			case "min":
				msgs = append(msgs, fieldErr.Field()+" harus minimal "+fieldErr.Param()+" karakter.")
			case "max":
				msgs = append(msgs, fieldErr.Field()+" harus kurang dari "+fieldErr.Param()+" karakter.")
			default:
				msgs = append(msgs, fieldErr.Field()+" tidak valid.")
			}
		}
		return errors.New(strings.Join(msgs, " "))
	}
	return err
}
