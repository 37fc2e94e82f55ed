package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Selaras dengan tabel quran_sessions:
// - start/end page nullable (*int) — sesi dari SessionLogger bisa belum ter-resolve ke halaman mushaf
// - sesi bersifat immutable: tidak ada kolom updated_at, tidak ada path update/delete
type QuranSessionModel struct {
	QuranSessionID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quran_session_id" json:"quran_session_id"`
	QuranSessionUserID uuid.UUID `gorm:"type:uuid;not null;column:quran_session_user_id;index:idx_quran_sessions_user_created,priority:1" json:"quran_session_user_id"`

	QuranSessionSurah     int `gorm:"not null;column:quran_session_surah" json:"quran_session_surah"`
	QuranSessionStartAyah int `gorm:"not null;column:quran_session_start_ayah" json:"quran_session_start_ayah"`
	QuranSessionEndAyah   int `gorm:"not null;column:quran_session_end_ayah" json:"quran_session_end_ayah"`

	QuranSessionStartPage *int `gorm:"column:quran_session_start_page" json:"quran_session_start_page,omitempty"`
	QuranSessionEndPage   *int `gorm:"column:quran_session_end_page" json:"quran_session_end_page,omitempty"`

	// Durasi baca dalam menit (opsional)
	QuranSessionDuration *int `gorm:"column:quran_session_duration" json:"quran_session_duration,omitempty"`

	QuranSessionCreatedAt time.Time      `gorm:"column:quran_session_created_at;type:timestamptz;not null;autoCreateTime;index:idx_quran_sessions_user_created,priority:2,sort:desc" json:"quran_session_created_at"`
	QuranSessionDeletedAt gorm.DeletedAt `gorm:"column:quran_session_deleted_at;index" json:"quran_session_deleted_at,omitempty"`
}

func (QuranSessionModel) TableName() string {
	return "quran_sessions"
}

// PageCount menghitung kontribusi halaman sesi ini.
// Sesi yang halamannya belum ter-resolve (nil) dihitung 0 — tidak ikut progres.
func (s *QuranSessionModel) PageCount() int {
	if s.QuranSessionStartPage == nil || s.QuranSessionEndPage == nil {
		return 0
	}
	n := *s.QuranSessionEndPage - *s.QuranSessionStartPage + 1
	if n < 0 {
		return 0
	}
	return n
}
