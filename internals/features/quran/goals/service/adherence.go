package service

import (
	"math"
	"time"

	"quranku_backend/internals/constants"
	goalmodel "quranku_backend/internals/features/quran/goals/model"
	sessionmodel "quranku_backend/internals/features/quran/sessions/model"

	"github.com/google/uuid"
)

// DailyAdherence hanya terisi untuk goal DAILY_PAGE.
type DailyAdherence struct {
	// Total hari sejak goal dibuat tanpa memperhitungkan hari sukses
	// (floor(jam-sejak-dibuat / 24)); 0 kalau ada sesi di window 24 jam terakhir.
	MissedDays int `json:"missed_days"`
	// Halaman terbaca di window 24 jam terakhir.
	CurrentProgress int `json:"current_progress"`
	// Target halaman per hari dari goal.
	TargetPages int `json:"target_pages"`
}

// DeadlineAdherence hanya terisi untuk goal DEADLINE_QURAN.
type DeadlineAdherence struct {
	DaysRemaining       int      `json:"days_remaining"`
	RequiredPagesPerDay int      `json:"required_pages_per_day"`
	CurrentProgress     int      `json:"current_progress"`
	SurahsToRead        []string `json:"surahs_to_read,omitempty"`
}

// AdherenceResult adalah keluaran evaluator — tidak dipersist.
// Tepat satu dari Daily/Deadline terisi, sesuai GoalType.
type AdherenceResult struct {
	ShouldNotify bool                    `json:"should_notify"`
	GoalType     goalmodel.GoalTypeEnum  `json:"goal_type"`
	Daily        *DailyAdherence         `json:"daily,omitempty"`
	Deadline     *DeadlineAdherence      `json:"deadline,omitempty"`
}

// Checker mengevaluasi kepatuhan user terhadap goal-nya.
// Fungsi murni terhadap isi store + jam Now (injectable untuk test).
type Checker struct {
	Goals       GoalStore
	Sessions    SessionStore
	Recommender SurahRecommender
	Now         func() time.Time
}

// NewChecker merakit Checker dengan store GORM dan strategi rekomendasi default.
func NewChecker(goals GoalStore, sessions SessionStore) *Checker {
	return &Checker{
		Goals:       goals,
		Sessions:    sessions,
		Recommender: PageRangeRecommender{},
		Now:         time.Now,
	}
}

func (c *Checker) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// CheckGoalAdherence mengevaluasi satu goal milik user.
// Mengembalikan (nil, nil) kalau goal tidak ada atau statusnya bukan ACTIVE.
func (c *Checker) CheckGoalAdherence(userID, goalID uuid.UUID) (*AdherenceResult, error) {
	goal, err := c.Goals.FindByUserAndID(userID, goalID)
	if err != nil {
		return nil, err
	}
	if goal == nil || goal.GoalStatus != goalmodel.GoalStatusActive {
		return nil, nil
	}

	switch goal.GoalType {
	case goalmodel.GoalTypeDailyPage:
		return c.checkDailyPageGoal(userID, goal)
	case goalmodel.GoalTypeDeadlineQuran:
		return c.checkDeadlineGoal(userID, goal)
	}

	return nil, nil
}

// checkDailyPageGoal: user harus punya sesi dalam 24 jam terakhir
// dengan total halaman >= goal_target_amount.
func (c *Checker) checkDailyPageGoal(userID uuid.UUID, goal *goalmodel.GoalModel) (*AdherenceResult, error) {
	sessions, err := c.Sessions.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	now := c.now()
	hoursSinceCreated := now.Sub(goal.GoalCreatedAt).Hours()

	// Masa tenggang: goal baru dapat satu hari penuh sebelum ditagih.
	if hoursSinceCreated < 24 {
		return &AdherenceResult{
			ShouldNotify: false,
			GoalType:     goalmodel.GoalTypeDailyPage,
		}, nil
	}

	target := 1
	if goal.GoalTargetAmount != nil && *goal.GoalTargetAmount > 0 {
		target = *goal.GoalTargetAmount
	}

	// Partisi sesi dalam window 24 jam terakhir.
	oneDayAgo := now.Add(-24 * time.Hour)
	var recent []sessionmodel.QuranSessionModel
	for _, s := range sessions {
		if !s.QuranSessionCreatedAt.Before(oneDayAgo) {
			recent = append(recent, s)
		}
	}

	if len(recent) == 0 {
		// Tidak ada sesi sama sekali dalam 24 jam — tagih.
		return &AdherenceResult{
			ShouldNotify: true,
			GoalType:     goalmodel.GoalTypeDailyPage,
			Daily: &DailyAdherence{
				MissedDays:  int(math.Floor(hoursSinceCreated / 24)),
				TargetPages: target,
			},
		}, nil
	}

	pagesReadToday := 0
	for i := range recent {
		pagesReadToday += recent[i].PageCount()
	}

	if pagesReadToday < target {
		return &AdherenceResult{
			ShouldNotify: true,
			GoalType:     goalmodel.GoalTypeDailyPage,
			Daily: &DailyAdherence{
				MissedDays:      0,
				CurrentProgress: pagesReadToday,
				TargetPages:     target,
			},
		}, nil
	}

	return &AdherenceResult{
		ShouldNotify: false,
		GoalType:     goalmodel.GoalTypeDailyPage,
	}, nil
}

// checkDeadlineGoal: interval reminder = max(1, round(daysRemaining/10)) hari,
// makin dekat deadline makin sering dinotifikasi.
func (c *Checker) checkDeadlineGoal(userID uuid.UUID, goal *goalmodel.GoalModel) (*AdherenceResult, error) {
	now := c.now()

	deadline, ok := goal.DeadlineTime()
	if !ok {
		// DEADLINE_QURAN tanpa deadline — data rusak, jangan tagih.
		return &AdherenceResult{
			ShouldNotify: false,
			GoalType:     goalmodel.GoalTypeDeadlineQuran,
			Deadline:     &DeadlineAdherence{DaysRemaining: 0},
		}, nil
	}

	daysRemaining := int(math.Ceil(deadline.Sub(now).Hours() / 24))
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	// Deadline lewat: berhenti, bukan eskalasi.
	if daysRemaining == 0 {
		return &AdherenceResult{
			ShouldNotify: false,
			GoalType:     goalmodel.GoalTypeDeadlineQuran,
			Deadline:     &DeadlineAdherence{DaysRemaining: 0},
		}, nil
	}

	notificationInterval := int(math.Round(float64(daysRemaining) / 10))
	if notificationInterval < 1 {
		notificationInterval = 1
	}

	if goal.GoalLastNotificationSent != nil {
		daysSinceLast := int(math.Floor(now.Sub(*goal.GoalLastNotificationSent).Hours() / 24))
		if daysSinceLast < notificationInterval {
			// Belum waktunya reminder berikutnya.
			return &AdherenceResult{
				ShouldNotify: false,
				GoalType:     goalmodel.GoalTypeDeadlineQuran,
				Deadline:     &DeadlineAdherence{DaysRemaining: daysRemaining},
			}, nil
		}
	}

	sessions, err := c.Sessions.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	totalPagesRead := 0
	for i := range sessions {
		totalPagesRead += sessions[i].PageCount()
	}

	pagesRemaining := constants.QuranTotalPages - totalPagesRead
	if pagesRemaining < 0 {
		pagesRemaining = 0
	}
	requiredPagesPerDay := int(math.Ceil(float64(pagesRemaining) / float64(daysRemaining)))

	var recommendations []string
	if c.Recommender != nil {
		recommendations = c.Recommender.Recommend(totalPagesRead, requiredPagesPerDay)
	}

	return &AdherenceResult{
		ShouldNotify: true,
		GoalType:     goalmodel.GoalTypeDeadlineQuran,
		Deadline: &DeadlineAdherence{
			DaysRemaining:       daysRemaining,
			RequiredPagesPerDay: requiredPagesPerDay,
			CurrentProgress:     totalPagesRead,
			SurahsToRead:        recommendations,
		},
	}, nil
}
