package service

import (
	"context"
	"testing"
	"time"

	notifmodel "quranku_backend/internals/features/notifications/model"
	goalmodel "quranku_backend/internals/features/quran/goals/model"
	goalService "quranku_backend/internals/features/quran/goals/service"
	sessionmodel "quranku_backend/internals/features/quran/sessions/model"
	usermodel "quranku_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// ===== Fakes =====

type fakeGoalStore struct {
	goals map[uuid.UUID]*goalmodel.GoalModel
}

func (s *fakeGoalStore) FindByUserAndID(userID, goalID uuid.UUID) (*goalmodel.GoalModel, error) {
	g, ok := s.goals[goalID]
	if !ok || g.GoalUserID != userID {
		return nil, nil
	}
	return g, nil
}

type fakeSessionStore struct {
	sessions []sessionmodel.QuranSessionModel
}

func (s *fakeSessionStore) ListByUser(userID uuid.UUID) ([]sessionmodel.QuranSessionModel, error) {
	var out []sessionmodel.QuranSessionModel
	for _, sess := range s.sessions {
		if sess.QuranSessionUserID == userID {
			out = append(out, sess)
		}
	}
	return out, nil
}

type fakeUserStore struct {
	users map[uuid.UUID]*usermodel.UserModel
}

func (s *fakeUserStore) FindByID(id uuid.UUID) (*usermodel.UserModel, error) {
	return s.users[id], nil
}

type fakeMailer struct {
	sendOK bool
	calls  int
	lastTo string
}

func (m *fakeMailer) SendGoalReminder(ctx context.Context, email string, name *string, result *goalService.AdherenceResult) bool {
	m.calls++
	m.lastTo = email
	return m.sendOK
}

type fakeRecorder struct {
	calls      int
	goal       *goalmodel.GoalModel
	sentAt     time.Time
	resetCount bool
	entry      *notifmodel.NotificationLogModel
}

func (r *fakeRecorder) RecordSend(goal *goalmodel.GoalModel, sentAt time.Time, resetCount bool, entry *notifmodel.NotificationLogModel) error {
	r.calls++
	r.goal = goal
	r.sentAt = sentAt
	r.resetCount = resetCount
	r.entry = entry
	return nil
}

// ===== Fixture rakitan =====

var driverNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type driverFixture struct {
	svc      *ReminderService
	userID   uuid.UUID
	goalID   uuid.UUID
	goals    *fakeGoalStore
	mailer   *fakeMailer
	recorder *fakeRecorder
}

// newDriverFixture merakit driver dengan user opt-in dan satu goal DAILY_PAGE
// yang sudah 48 jam tanpa sesi — kondisi yang pasti butuh reminder.
func newDriverFixture(t *testing.T, sendOK bool) *driverFixture {
	t.Helper()

	userID := uuid.New()
	goalID := uuid.New()
	target := 5

	goals := &fakeGoalStore{goals: map[uuid.UUID]*goalmodel.GoalModel{
		goalID: {
			GoalID:           goalID,
			GoalUserID:       userID,
			GoalType:         goalmodel.GoalTypeDailyPage,
			GoalTargetAmount: &target,
			GoalStatus:       goalmodel.GoalStatusActive,
			GoalCreatedAt:    driverNow.Add(-48 * time.Hour),
		},
	}}
	sessions := &fakeSessionStore{}
	name := "Ahmad"
	users := &fakeUserStore{users: map[uuid.UUID]*usermodel.UserModel{
		userID: {
			ID:                 userID,
			UserName:           &name,
			Email:              "ahmad@example.com",
			EmailNotifications: true,
		},
	}}

	checker := goalService.NewChecker(goals, sessions)
	checker.Now = func() time.Time { return driverNow }

	mailer := &fakeMailer{sendOK: sendOK}
	recorder := &fakeRecorder{}

	return &driverFixture{
		svc: &ReminderService{
			Goals:    goals,
			Users:    users,
			Checker:  checker,
			Mailer:   mailer,
			Recorder: recorder,
			Now:      func() time.Time { return driverNow },
		},
		userID:   userID,
		goalID:   goalID,
		goals:    goals,
		mailer:   mailer,
		recorder: recorder,
	}
}

// ===== Lima outcome =====

func TestSendGoalReminder_GoalNotFound(t *testing.T) {
	f := newDriverFixture(t, true)

	result, err := f.svc.SendGoalReminder(context.Background(), f.userID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotFound, result.Outcome)
	assert.Zero(t, f.mailer.calls)
	assert.Zero(t, f.recorder.calls)
}

func TestSendGoalReminder_RateLimitedBeforeEvaluation(t *testing.T) {
	f := newDriverFixture(t, true)
	lastSent := driverNow.Add(-2 * time.Hour)
	f.goals.goals[f.goalID].GoalLastNotificationSent = &lastSent
	f.goals.goals[f.goalID].GoalNotificationCount = 1

	result, err := f.svc.SendGoalReminder(context.Background(), f.userID, f.goalID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRateLimited, result.Outcome)
	// Gate jalan duluan: evaluator tidak dipanggil, email tidak keluar.
	assert.Nil(t, result.Adherence)
	assert.Zero(t, f.mailer.calls)
	assert.Zero(t, f.recorder.calls)
}

func TestSendGoalReminder_NotNeededWhenAdhering(t *testing.T) {
	f := newDriverFixture(t, true)
	// Goal baru 1 jam — masa tenggang, evaluator bilang tidak perlu.
	f.goals.goals[f.goalID].GoalCreatedAt = driverNow.Add(-1 * time.Hour)

	result, err := f.svc.SendGoalReminder(context.Background(), f.userID, f.goalID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotNeeded, result.Outcome)
	assert.Zero(t, f.mailer.calls)
	assert.Zero(t, f.recorder.calls)
}

func TestSendGoalReminder_NotNeededWhenOptedOut(t *testing.T) {
	f := newDriverFixture(t, true)
	f.svc.Users.(*fakeUserStore).users[f.userID].EmailNotifications = false

	result, err := f.svc.SendGoalReminder(context.Background(), f.userID, f.goalID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotNeeded, result.Outcome)
	assert.Zero(t, f.mailer.calls)
}

func TestSendGoalReminder_SentRecordsBookkeeping(t *testing.T) {
	f := newDriverFixture(t, true)

	result, err := f.svc.SendGoalReminder(context.Background(), f.userID, f.goalID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSent, result.Outcome)
	assert.Equal(t, "ahmad@example.com", result.EmailSentTo)
	require.NotNil(t, result.Adherence)
	assert.True(t, result.Adherence.ShouldNotify)

	assert.Equal(t, 1, f.mailer.calls)
	assert.Equal(t, "ahmad@example.com", f.mailer.lastTo)

	require.Equal(t, 1, f.recorder.calls)
	assert.Equal(t, driverNow, f.recorder.sentAt)
	assert.False(t, f.recorder.resetCount)
	require.NotNil(t, f.recorder.entry)
	assert.Equal(t, f.goalID, f.recorder.entry.NotificationLogGoalID)
	assert.Equal(t, string(goalmodel.GoalTypeDailyPage), f.recorder.entry.NotificationLogGoalType)
	assert.Equal(t, "ahmad@example.com", f.recorder.entry.NotificationLogEmail)
}

func TestSendGoalReminder_SendFailedNoMutation(t *testing.T) {
	f := newDriverFixture(t, false) // transport selalu gagal

	result, err := f.svc.SendGoalReminder(context.Background(), f.userID, f.goalID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSendFailed, result.Outcome)
	assert.Equal(t, 1, f.mailer.calls)
	// Gagal kirim: bookkeeping tidak boleh tersentuh sama sekali.
	assert.Zero(t, f.recorder.calls)
	assert.Nil(t, f.goals.goals[f.goalID].GoalLastNotificationSent)
	assert.Equal(t, 0, f.goals.goals[f.goalID].GoalNotificationCount)
}

// ===== Reset window mingguan =====

func TestSendGoalReminder_WeeklyRolloverResetsCounter(t *testing.T) {
	f := newDriverFixture(t, true)
	// Kirim terakhir 8 hari lalu dengan kuota penuh: gate lolos (window bergulir),
	// dan driver minta recorder memulai counter dari awal.
	lastSent := driverNow.Add(-8 * 24 * time.Hour)
	f.goals.goals[f.goalID].GoalLastNotificationSent = &lastSent
	f.goals.goals[f.goalID].GoalNotificationCount = 3

	result, err := f.svc.SendGoalReminder(context.Background(), f.userID, f.goalID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSent, result.Outcome)
	require.Equal(t, 1, f.recorder.calls)
	assert.True(t, f.recorder.resetCount)
}

func TestSendGoalReminder_NoResetWithinWeek(t *testing.T) {
	f := newDriverFixture(t, true)
	lastSent := driverNow.Add(-3 * 24 * time.Hour)
	f.goals.goals[f.goalID].GoalLastNotificationSent = &lastSent
	f.goals.goals[f.goalID].GoalNotificationCount = 2

	result, err := f.svc.SendGoalReminder(context.Background(), f.userID, f.goalID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSent, result.Outcome)
	require.Equal(t, 1, f.recorder.calls)
	assert.False(t, f.recorder.resetCount)
}

// ===== Rekomendasi DEADLINE masuk log =====

func TestSendGoalReminder_DeadlineRecommendationsLogged(t *testing.T) {
	f := newDriverFixture(t, true)
	goal := f.goals.goals[f.goalID]
	goal.GoalType = goalmodel.GoalTypeDeadlineQuran
	goal.GoalTargetAmount = nil
	deadline := datatypes.Date(driverNow.Add(10 * 24 * time.Hour))
	goal.GoalDeadline = &deadline

	result, err := f.svc.SendGoalReminder(context.Background(), f.userID, f.goalID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSent, result.Outcome)
	require.NotNil(t, f.recorder.entry)
	assert.Len(t, f.recorder.entry.NotificationLogRecommendations, 2)
}
