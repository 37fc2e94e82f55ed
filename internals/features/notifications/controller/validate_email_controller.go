package controller

import (
	"strings"

	"quranku_backend/internals/features/notifications/dto"
	helper "quranku_backend/internals/helpers"

	"github.com/badoux/checkmail"
	"github.com/gofiber/fiber/v2"
)

type ValidateEmailController struct{}

func NewValidateEmailController() *ValidateEmailController {
	return &ValidateEmailController{}
}

// 🟢 VALIDATE EMAIL: cek format + domain MX sebelum dipakai untuk reminder.
// Tidak melakukan probe SMTP (lambat dan sering diblokir).
func (ctrl *ValidateEmailController) ValidateEmail(c *fiber.Ctx) error {
	var body dto.ValidateEmailRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.TrimSpace(body.Email)

	if err := checkmail.ValidateFormat(email); err != nil {
		return c.JSON(fiber.Map{
			"valid":  false,
			"reason": "Invalid email format",
		})
	}

	if err := checkmail.ValidateMX(email); err != nil {
		return c.JSON(fiber.Map{
			"valid":  false,
			"reason": "Email domain does not exist",
		})
	}

	return c.JSON(fiber.Map{"valid": true})
}
