// 📁 controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"quranku_backend/internals/features/users/user/dto"
	"quranku_backend/internals/features/users/user/model"
	helper "quranku_backend/internals/helpers"

	"github.com/badoux/checkmail"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// 🟢 CREATE USER: daftarkan user baru (tanpa login — identitas cukup email)
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))
	if err := checkmail.ValidateFormat(email); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format email tidak valid")
	}

	user := model.UserModel{
		Email:              email,
		UserName:           body.UserName,
		EmailNotifications: body.EmailNotifications,
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate") {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan user")
	}

	return helper.JsonCreated(c, "User berhasil dibuat", user)
}

// 🟢 GET USER BY ID
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	return helper.JsonOK(c, "", user)
}

// 🟢 LIST USERS (paged)
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []model.UserModel
	if err := ctrl.DB.
		Order("created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar user")
	}

	return helper.JsonList(c, "", users, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟢 UPDATE USER: nama & preferensi notifikasi email
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	updates := map[string]any{}
	if body.UserName != nil {
		updates["user_name"] = *body.UserName
	}
	if body.EmailNotifications != nil {
		updates["email_notifications"] = *body.EmailNotifications
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", user)
	}

	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui user")
	}

	return helper.JsonUpdated(c, "User berhasil diperbarui", user)
}
