// 📁 controller/quran_session_controller.go
package controller

import (
	"errors"

	"quranku_backend/internals/features/quran/sessions/dto"
	"quranku_backend/internals/features/quran/sessions/model"
	usermodel "quranku_backend/internals/features/users/user/model"
	helper "quranku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuranSessionController struct {
	DB *gorm.DB
}

func NewQuranSessionController(db *gorm.DB) *QuranSessionController {
	return &QuranSessionController{DB: db}
}

// 🟢 CREATE SESSION: catat sesi baca baru (immutable setelah dibuat)
func (ctrl *QuranSessionController) CreateSession(c *fiber.Ctx) error {
	var body dto.CreateQuranSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := helper.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := body.CheckRanges(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Pastikan user-nya ada
	var user usermodel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", body.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	session := model.QuranSessionModel{
		QuranSessionUserID:    body.UserID,
		QuranSessionSurah:     body.Surah,
		QuranSessionStartAyah: body.StartAyah,
		QuranSessionEndAyah:   body.EndAyah,
		QuranSessionStartPage: body.StartPage,
		QuranSessionEndPage:   body.EndPage,
		QuranSessionDuration:  body.Duration,
	}

	if err := ctrl.DB.Create(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sesi baca")
	}

	return helper.JsonCreated(c, "Sesi baca berhasil dicatat", session)
}

// 🟢 LIST SESSIONS BY USER (paged, terbaru dulu)
func (ctrl *QuranSessionController) ListSessionsByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.QuranSessionModel{}).
		Where("quran_session_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung sesi")
	}

	var sessions []model.QuranSessionModel
	if err := ctrl.DB.
		Where("quran_session_user_id = ?", userID).
		Order("quran_session_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar sesi")
	}

	return helper.JsonList(c, "", sessions, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟢 PROGRESS: total halaman terbaca user terhadap target khatam
func (ctrl *QuranSessionController) GetProgress(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID tidak valid")
	}

	var sessions []model.QuranSessionModel
	if err := ctrl.DB.
		Where("quran_session_user_id = ?", userID).
		Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}

	totalPages := 0
	for i := range sessions {
		totalPages += sessions[i].PageCount()
	}

	return helper.JsonOK(c, "", fiber.Map{
		"total_pages_read": totalPages,
		"total_sessions":   len(sessions),
	})
}
