package controller

import (
	"quranku_backend/internals/features/quran/hadiths/model"
	hadithService "quranku_backend/internals/features/quran/hadiths/service"
	helper "quranku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type HadithController struct{}

func NewHadithController() *HadithController {
	return &HadithController{}
}

// 🟢 LIST HADITHS: seluruh katalog (opsional filter ?theme=)
func (ctrl *HadithController) ListHadiths(c *fiber.Ctx) error {
	theme := c.Query("theme")
	if theme == "" {
		return helper.JsonOK(c, "", hadithService.Hadiths)
	}
	if !hadithService.IsValidTheme(theme) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tema tidak dikenal")
	}

	filtered := []model.Hadith{}
	for _, h := range hadithService.Hadiths {
		if h.Theme == model.HadithThemeEnum(theme) {
			filtered = append(filtered, h)
		}
	}
	return helper.JsonOK(c, "", filtered)
}

// 🟢 RANDOM HADITH: satu hadith acak (opsional ?theme=)
func (ctrl *HadithController) GetRandomHadith(c *fiber.Ctx) error {
	theme := c.Query("theme")
	if theme == "" {
		return helper.JsonOK(c, "", hadithService.GetRandomHadith())
	}
	if !hadithService.IsValidTheme(theme) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tema tidak dikenal")
	}
	return helper.JsonOK(c, "", hadithService.GetRandomHadithByTheme(model.HadithThemeEnum(theme)))
}
