//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/2beens/nutridiary/internal/diary"
)

func intPtr(i int) *int {
	return &i
}

func (s *IntegrationTestSuite) newRecord(calories float64) diary.DailyRecord {
	return diary.DailyRecord{
		Meals: []diary.MealEntry{
			{
				Name:     "lunch",
				Calories: calories,
				Items: []diary.MealItem{
					{Name: "chicken breast", Amount: 200, Unit: "g", Protein: 23, Fat: 2, DIAAS: 1.08},
					{Name: "egg", Amount: 2, Unit: "piece", Kind: diary.QuantityCount, Protein: 6.2, Fat: 5.1, Carbs: 0.3},
				},
			},
		},
		Workouts: []diary.WorkoutEntry{
			{
				Name: "push",
				Exercises: []diary.ExerciseEntry{
					{ExerciseType: diary.ExerciseAnaerobic, Sets: []diary.SetEntry{{Weight: 60, Reps: 8}, {Weight: 60, Reps: 8}}},
				},
			},
		},
		Conditions: &diary.ConditionEntry{
			SleepHours:   intPtr(4),
			SleepQuality: intPtr(4),
			Stress:       intPtr(3),
			Appetite:     intPtr(4),
			Digestion:    intPtr(4),
			Focus:        intPtr(3),
		},
	}
}

func (s *IntegrationTestSuite) saveRecord(ctx context.Context, userID, date string, record diary.DailyRecord) {
	status, body := s.do(ctx, "PUT", fmt.Sprintf("/users/%s/diary/%s", userID, date), record)
	s.Require().Equal(http.StatusCreated, status, string(body))
}

func (s *IntegrationTestSuite) TestDiary_SaveGetList() {
	ctx := context.Background()
	userID := gofakeit.UUID()

	status, _ := s.do(ctx, "GET", fmt.Sprintf("/users/%s/diary/2024-05-01", userID), nil)
	s.Equal(http.StatusNotFound, status)

	for day := 1; day <= 3; day++ {
		s.saveRecord(ctx, userID, fmt.Sprintf("2024-05-%02d", day), s.newRecord(2000))
	}
	s.Equal(3, s.countRecords(userID))

	// saving the same day again supersedes the stored record
	s.saveRecord(ctx, userID, "2024-05-02", s.newRecord(2500))
	s.Equal(3, s.countRecords(userID))

	status, body := s.do(ctx, "GET", fmt.Sprintf("/users/%s/diary/2024-05-02", userID), nil)
	s.Require().Equal(http.StatusOK, status)
	var record diary.DailyRecord
	s.Require().NoError(json.Unmarshal(body, &record))
	s.Require().Len(record.Meals, 1)
	s.Equal(2500.0, record.Meals[0].Calories)
	s.Equal(diary.QuantityCount, record.Meals[0].Items[1].Kind)

	status, body = s.do(ctx, "GET", fmt.Sprintf("/users/%s/diary?from=2024-04-01&to=2024-05-31", userID), nil)
	s.Require().Equal(http.StatusOK, status)
	var dates diary.ListDatesResponse
	s.Require().NoError(json.Unmarshal(body, &dates))
	s.Equal([]string{"2024-05-01", "2024-05-02", "2024-05-03"}, dates.Dates)
}
