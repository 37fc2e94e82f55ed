package service

import (
	"time"

	goalmodel "quranku_backend/internals/features/quran/goals/model"
)

const (
	// Maksimal satu reminder per goal per 24 jam berjalan.
	minHoursBetweenNotifications = 24
	// Maksimal 3 reminder per goal dalam window 7 hari berjalan.
	maxNotificationsPerWeek = 3
	weeklyWindow            = 7 * 24 * time.Hour
)

// ShouldRateLimitNotification memutuskan apakah reminder untuk goal ini
// harus ditahan, murni dari state notifikasi goal — terlepas dari apakah
// user memang sedang tertinggal.
//
// Fungsi ini tidak pernah mereset goal_notification_count; reset window
// mingguan jadi tanggung jawab driver setelah kirim terkonfirmasi.
func ShouldRateLimitNotification(goal *goalmodel.GoalModel, now time.Time) bool {
	lastSent := goal.GoalLastNotificationSent
	if lastSent == nil {
		// Belum pernah dikirim — tidak perlu ditahan.
		return false
	}

	hoursSinceLastSent := now.Sub(*lastSent).Hours()
	if hoursSinceLastSent < minHoursBetweenNotifications {
		return true
	}

	if goal.GoalNotificationCount >= maxNotificationsPerWeek {
		oneWeekAgo := now.Add(-weeklyWindow)
		if lastSent.After(oneWeekAgo) {
			// Kuota mingguan habis.
			return true
		}
		// Window mingguan sudah bergulir.
		return false
	}

	return false
}
