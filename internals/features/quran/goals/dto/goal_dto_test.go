package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dtoNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestNormalize_DailyPage(t *testing.T) {
	req := CreateGoalRequest{
		UserID:       uuid.New(),
		Type:         "DAILY_PAGE",
		TargetAmount: intPtr(5),
	}
	deadline, err := req.Normalize(dtoNow)
	require.NoError(t, err)
	assert.Nil(t, deadline)
}

func TestNormalize_DailyPageRequiresTarget(t *testing.T) {
	req := CreateGoalRequest{UserID: uuid.New(), Type: "DAILY_PAGE"}
	_, err := req.Normalize(dtoNow)
	assert.Error(t, err)
}

func TestNormalize_DailyPageRejectsDeadline(t *testing.T) {
	req := CreateGoalRequest{
		UserID:       uuid.New(),
		Type:         "DAILY_PAGE",
		TargetAmount: intPtr(5),
		Deadline:     strPtr("2025-06-01"),
	}
	_, err := req.Normalize(dtoNow)
	assert.Error(t, err)
}

func TestNormalize_DeadlineQuran(t *testing.T) {
	req := CreateGoalRequest{
		UserID:   uuid.New(),
		Type:     "DEADLINE_QURAN",
		Deadline: strPtr("2025-06-01"),
	}
	deadline, err := req.Normalize(dtoNow)
	require.NoError(t, err)
	require.NotNil(t, deadline)
	assert.Equal(t, "2025-06-01", time.Time(*deadline).Format("2006-01-02"))
}

func TestNormalize_DeadlineQuranRejectsTarget(t *testing.T) {
	req := CreateGoalRequest{
		UserID:       uuid.New(),
		Type:         "DEADLINE_QURAN",
		Deadline:     strPtr("2025-06-01"),
		TargetAmount: intPtr(5),
	}
	_, err := req.Normalize(dtoNow)
	assert.Error(t, err)
}

func TestNormalize_DeadlineMustBeFuture(t *testing.T) {
	req := CreateGoalRequest{
		UserID:   uuid.New(),
		Type:     "DEADLINE_QURAN",
		Deadline: strPtr("2025-03-01"),
	}
	_, err := req.Normalize(dtoNow)
	assert.Error(t, err)
}

func TestNormalize_BadDeadlineFormat(t *testing.T) {
	req := CreateGoalRequest{
		UserID:   uuid.New(),
		Type:     "DEADLINE_QURAN",
		Deadline: strPtr("01-06-2025"),
	}
	_, err := req.Normalize(dtoNow)
	assert.Error(t, err)
}
