package service

import (
	"testing"
	"time"

	goalmodel "quranku_backend/internals/features/quran/goals/model"

	"github.com/stretchr/testify/assert"
)

func gateGoal(lastSent *time.Time, count int) *goalmodel.GoalModel {
	return &goalmodel.GoalModel{
		GoalType:                 goalmodel.GoalTypeDailyPage,
		GoalStatus:               goalmodel.GoalStatusActive,
		GoalLastNotificationSent: lastSent,
		GoalNotificationCount:    count,
	}
}

func TestShouldRateLimit_NeverSentPasses(t *testing.T) {
	assert.False(t, ShouldRateLimitNotification(gateGoal(nil, 0), testNow))
}

func TestShouldRateLimit_Within24HoursBlocked(t *testing.T) {
	lastSent := testNow.Add(-23 * time.Hour)
	assert.True(t, ShouldRateLimitNotification(gateGoal(&lastSent, 1), testNow))
}

func TestShouldRateLimit_ExactBoundary24HoursPasses(t *testing.T) {
	lastSent := testNow.Add(-24 * time.Hour)
	assert.False(t, ShouldRateLimitNotification(gateGoal(&lastSent, 1), testNow))
}

func TestShouldRateLimit_WeeklyQuotaExhausted(t *testing.T) {
	// 3 reminder sudah terkirim, yang terakhir 2 hari lalu (masih dalam window 7 hari).
	lastSent := testNow.Add(-2 * 24 * time.Hour)
	assert.True(t, ShouldRateLimitNotification(gateGoal(&lastSent, 3), testNow))
}

func TestShouldRateLimit_WeeklyWindowRolledOver(t *testing.T) {
	// Kuota penuh tapi kirim terakhir sudah lebih dari 7 hari lalu — lolos.
	lastSent := testNow.Add(-8 * 24 * time.Hour)
	goal := gateGoal(&lastSent, 3)

	assert.False(t, ShouldRateLimitNotification(goal, testNow))
	// Gate tidak pernah menyentuh counter; reset urusan driver.
	assert.Equal(t, 3, goal.GoalNotificationCount)
}

func TestShouldRateLimit_UnderQuotaPasses(t *testing.T) {
	lastSent := testNow.Add(-3 * 24 * time.Hour)
	assert.False(t, ShouldRateLimitNotification(gateGoal(&lastSent, 2), testNow))
}
