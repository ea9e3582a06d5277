package services

import (
	"KidSafe/models"
	"KidSafe/repositories/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newUsageServiceFixture() (*UsageService, *mocks.ParentRepository, *mocks.ChildRepository, *mocks.UsageRepository, *mocks.AlertRepository) {
	mockParentRepo := new(mocks.ParentRepository)
	mockChildRepo := new(mocks.ChildRepository)
	mockUsageRepo := new(mocks.UsageRepository)
	mockAlertRepo := new(mocks.AlertRepository)

	alertService := NewAlertService(mockAlertRepo, mockChildRepo, mockParentRepo)
	usageService := NewUsageService(mockUsageRepo, mockChildRepo, mockParentRepo, alertService)

	return usageService, mockParentRepo, mockChildRepo, mockUsageRepo, mockAlertRepo
}

func TestRecordUsageChargesTime(t *testing.T) {
	usageService, _, mockChildRepo, mockUsageRepo, mockAlertRepo := newUsageServiceFixture()

	mockChild := models.Child{ID: 2, ParentID: 1, Name: "Emma", DailyTimeLimit: 120, UsedTime: 30}
	start := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)

	mockChildRepo.On("FindByID", uint(2)).Return(mockChild, nil)
	mockUsageRepo.On("Save", mock.MatchedBy(func(entry *models.UsageLog) bool {
		return entry.ChildID == 2 &&
			entry.Date == "2026-08-28" &&
			entry.App == "Minecraft" &&
			entry.Duration == 45 &&
			entry.EndTime.Equal(start.Add(45*time.Minute))
	})).Return(nil)
	mockChildRepo.On("Save", mock.MatchedBy(func(child models.Child) bool {
		return child.UsedTime == 75 && !child.IsLocked
	})).Return(nil)

	entry, child, err := usageService.RecordUsage(2, RecordUsageInput{
		App:       "Minecraft",
		Category:  models.CategoryGames,
		Duration:  45,
		StartTime: start,
	})

	assert.NoError(t, err)
	assert.Equal(t, 75, child.UsedTime)
	assert.False(t, child.IsLocked)
	assert.Equal(t, "2026-08-28", entry.Date)
	mockAlertRepo.AssertNotCalled(t, "Save", mock.Anything)
	mockChildRepo.AssertExpectations(t)
}

func TestRecordUsageLockTransition(t *testing.T) {
	usageService, mockParentRepo, mockChildRepo, mockUsageRepo, mockAlertRepo := newUsageServiceFixture()

	mockChild := models.Child{ID: 2, ParentID: 1, Name: "Emma", DailyTimeLimit: 120, UsedTime: 100}

	mockChildRepo.On("FindByID", uint(2)).Return(mockChild, nil)
	mockUsageRepo.On("Save", mock.AnythingOfType("*models.UsageLog")).Return(nil)
	mockChildRepo.On("Save", mock.MatchedBy(func(child models.Child) bool {
		return child.UsedTime == 130 && child.IsLocked
	})).Return(nil)
	mockParentRepo.On("FindByID", uint(1)).Return(models.Parent{ID: 1, FirebaseUID: testParentUID}, nil)
	mockAlertRepo.On("Save", mock.MatchedBy(func(alert *models.Alert) bool {
		return alert.Type == models.AlertTypeTimeLimit &&
			alert.Message == "Emma's device has been locked"
	})).Return(nil)

	_, child, err := usageService.RecordUsage(2, RecordUsageInput{
		App:      "YouTube Kids",
		Category: models.CategoryEntertainment,
		Duration: 30,
	})

	assert.NoError(t, err)
	assert.True(t, child.IsLocked)
	mockAlertRepo.AssertNumberOfCalls(t, "Save", 1)
}

func TestRecordUsageLockAlertFailureDoesNotFailRequest(t *testing.T) {
	usageService, _, mockChildRepo, mockUsageRepo, mockAlertRepo := newUsageServiceFixture()

	mockChild := models.Child{ID: 2, ParentID: 1, Name: "Emma", DailyTimeLimit: 120, UsedTime: 100}

	mockChildRepo.On("FindByID", uint(2)).Return(mockChild, nil)
	mockUsageRepo.On("Save", mock.AnythingOfType("*models.UsageLog")).Return(nil)
	mockChildRepo.On("Save", mock.AnythingOfType("models.Child")).Return(nil)
	mockAlertRepo.On("Save", mock.AnythingOfType("*models.Alert")).Return(assert.AnError)

	_, child, err := usageService.RecordUsage(2, RecordUsageInput{
		App:      "YouTube Kids",
		Category: models.CategoryEntertainment,
		Duration: 30,
	})

	assert.NoError(t, err)
	assert.True(t, child.IsLocked)
}

func TestRecordUsageAlreadyLockedNoSecondAlert(t *testing.T) {
	usageService, _, mockChildRepo, mockUsageRepo, mockAlertRepo := newUsageServiceFixture()

	mockChild := models.Child{ID: 2, ParentID: 1, Name: "Emma", DailyTimeLimit: 120, UsedTime: 130, IsLocked: true}

	mockChildRepo.On("FindByID", uint(2)).Return(mockChild, nil)
	mockUsageRepo.On("Save", mock.AnythingOfType("*models.UsageLog")).Return(nil)
	mockChildRepo.On("Save", mock.MatchedBy(func(child models.Child) bool {
		return child.UsedTime == 140 && child.IsLocked
	})).Return(nil)

	_, _, err := usageService.RecordUsage(2, RecordUsageInput{
		App:      "YouTube Kids",
		Category: models.CategoryEntertainment,
		Duration: 10,
	})

	assert.NoError(t, err)
	mockAlertRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestRecordUsageValidation(t *testing.T) {
	testCases := []struct {
		name  string
		input RecordUsageInput
	}{
		{name: "app and website both set", input: RecordUsageInput{App: "a", Website: "b.com", Category: models.CategoryGames, Duration: 10}},
		{name: "neither app nor website", input: RecordUsageInput{Category: models.CategoryGames, Duration: 10}},
		{name: "unknown category", input: RecordUsageInput{App: "a", Category: "gaming", Duration: 10}},
		{name: "zero duration", input: RecordUsageInput{App: "a", Category: models.CategoryGames}},
		{name: "negative duration", input: RecordUsageInput{App: "a", Category: models.CategoryGames, Duration: -5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			usageService, _, mockChildRepo, mockUsageRepo, _ := newUsageServiceFixture()
			mockChildRepo.On("FindByID", uint(2)).Return(models.Child{ID: 2, ParentID: 1, DailyTimeLimit: 120}, nil)

			_, _, err := usageService.RecordUsage(2, tc.input)

			assert.ErrorIs(t, err, models.ErrValidation)
			mockUsageRepo.AssertNotCalled(t, "Save", mock.Anything)
		})
	}
}

func TestDailyAggregate(t *testing.T) {
	usageService, mockParentRepo, mockChildRepo, mockUsageRepo, _ := newUsageServiceFixture()

	mockParentRepo.On("FindByFirebaseUID", testParentUID).Return(models.Parent{ID: 1, FirebaseUID: testParentUID}, nil)
	mockChildRepo.On("FindByID", uint(2)).Return(models.Child{ID: 2, ParentID: 1}, nil)
	mockUsageRepo.On("FindByChildAndDate", uint(2), "2026-08-28").Return([]models.UsageLog{
		{ChildID: 2, Date: "2026-08-28", Category: models.CategoryGames, Duration: 40},
		{ChildID: 2, Date: "2026-08-28", Category: models.CategoryGames, Duration: 20},
		{ChildID: 2, Date: "2026-08-28", Category: models.CategoryEducation, Duration: 30},
	}, nil)

	daily, err := usageService.DailyAggregate(testParentUID, 2, "2026-08-28")

	assert.NoError(t, err)
	assert.Equal(t, 90, daily.TotalTime)
	assert.Equal(t, 60, daily.BreakdownByCategory[models.CategoryGames])
	assert.Equal(t, 30, daily.BreakdownByCategory[models.CategoryEducation])

	// The total always equals the sum of the breakdown.
	sum := 0
	for _, minutes := range daily.BreakdownByCategory {
		sum += minutes
	}
	assert.Equal(t, daily.TotalTime, sum)
}

func TestDailyAggregateInvalidDate(t *testing.T) {
	usageService, _, _, _, _ := newUsageServiceFixture()

	_, err := usageService.DailyAggregate(testParentUID, 2, "28-08-2026")

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestDailyAggregateOtherFamily(t *testing.T) {
	usageService, mockParentRepo, mockChildRepo, mockUsageRepo, _ := newUsageServiceFixture()

	mockParentRepo.On("FindByFirebaseUID", "intruder-uid").Return(models.Parent{ID: 9, FirebaseUID: "intruder-uid"}, nil)
	mockChildRepo.On("FindByID", uint(2)).Return(models.Child{ID: 2, ParentID: 1}, nil)

	_, err := usageService.DailyAggregate("intruder-uid", 2, "2026-08-28")

	assert.ErrorIs(t, err, models.ErrNotFamilyMember)
	mockUsageRepo.AssertNotCalled(t, "FindByChildAndDate", mock.Anything, mock.Anything)
}

func TestWeeklyAggregate(t *testing.T) {
	usageService, mockParentRepo, mockChildRepo, mockUsageRepo, _ := newUsageServiceFixture()

	mockParentRepo.On("FindByFirebaseUID", testParentUID).Return(models.Parent{ID: 1, FirebaseUID: testParentUID}, nil)
	mockChildRepo.On("FindByID", uint(2)).Return(models.Child{ID: 2, ParentID: 1}, nil)
	mockUsageRepo.On("FindByChildAndDateRange", uint(2), "2026-08-22", "2026-08-28").Return([]models.UsageLog{
		{ChildID: 2, Date: "2026-08-22", Category: models.CategoryGames, Duration: 25},
		{ChildID: 2, Date: "2026-08-28", Category: models.CategorySocial, Duration: 55},
	}, nil)

	week, err := usageService.WeeklyAggregate(testParentUID, 2, "2026-08-28")

	assert.NoError(t, err)
	assert.Len(t, week, 7)

	// Oldest first, days without entries present with zero totals.
	assert.Equal(t, "2026-08-22", week[0].Date)
	assert.Equal(t, 25, week[0].TotalTime)
	assert.Equal(t, "2026-08-25", week[3].Date)
	assert.Equal(t, 0, week[3].TotalTime)
	assert.Equal(t, "2026-08-28", week[6].Date)
	assert.Equal(t, 55, week[6].TotalTime)
}
