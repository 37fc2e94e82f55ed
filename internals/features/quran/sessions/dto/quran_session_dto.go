package dto

import (
	"fmt"

	"quranku_backend/internals/constants"

	"github.com/google/uuid"
)

type CreateQuranSessionRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`

	Surah     int `json:"surah" validate:"required,min=1,max=114"`
	StartAyah int `json:"start_ayah" validate:"required,min=1"`
	EndAyah   int `json:"end_ayah" validate:"required,min=1"`

	StartPage *int `json:"start_page" validate:"omitempty,min=1,max=604"`
	EndPage   *int `json:"end_page" validate:"omitempty,min=1,max=604"`

	Duration *int `json:"duration" validate:"omitempty,min=1"`
}

// CheckRanges menjaga invariant lintas-field yang tidak bisa dinyatakan lewat tag:
// end ayah/page >= start ayah/page, dan batas ayat global.
func (r *CreateQuranSessionRequest) CheckRanges() error {
	if r.EndAyah < r.StartAyah {
		return fmt.Errorf("end_ayah harus >= start_ayah")
	}
	if r.EndAyah > constants.QuranMaxAyah {
		return fmt.Errorf("end_ayah melebihi jumlah ayat maksimum (%d)", constants.QuranMaxAyah)
	}
	if (r.StartPage == nil) != (r.EndPage == nil) {
		return fmt.Errorf("start_page dan end_page harus diisi berpasangan")
	}
	if r.StartPage != nil && *r.EndPage < *r.StartPage {
		return fmt.Errorf("end_page harus >= start_page")
	}
	return nil
}
