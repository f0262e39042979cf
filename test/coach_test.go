//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/2beens/nutridiary/internal/coach"
	"github.com/2beens/nutridiary/internal/profile"
	"github.com/2beens/nutridiary/internal/scoring"
	"github.com/2beens/nutridiary/internal/trends"
)

func (s *IntegrationTestSuite) TestCoach_ScoreTrendsAnalysis() {
	ctx := context.Background()
	userID := gofakeit.UUID()

	bodyFat := 15.0
	status, body := s.do(ctx, "PUT", fmt.Sprintf("/users/%s/profile", userID), profile.UserProfile{
		Weight:            75,
		BodyFatPercentage: &bodyFat,
		Style:             profile.BodymakerStyles[0],
		Purpose:           "Lean Bulk",
	})
	s.Require().Equal(http.StatusCreated, status, string(body))

	for day := 1; day <= 5; day++ {
		s.saveRecord(ctx, userID, fmt.Sprintf("2024-05-%02d", day), s.newRecord(2400))
	}

	status, body = s.do(ctx, "GET", fmt.Sprintf("/users/%s/score/2024-05-03", userID), nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var report scoring.Report
	s.Require().NoError(json.Unmarshal(body, &report))
	s.Equal(1, report.Exercise.Count)
	s.Equal(20, report.Exercise.ExerciseCount)
	s.True(report.Condition.FullyRecorded)
	s.GreaterOrEqual(report.Total, 0)
	s.LessOrEqual(report.Total, 100)

	// a day without a record is scored as empty
	status, body = s.do(ctx, "GET", fmt.Sprintf("/users/%s/score/2024-06-01", userID), nil)
	s.Require().Equal(http.StatusOK, status)
	report = scoring.Report{}
	s.Require().NoError(json.Unmarshal(body, &report))
	s.Zero(report.Exercise.Count)

	trendsPath := fmt.Sprintf("/users/%s/trends/2024-05-06?days=7", userID)
	status, body = s.do(ctx, "GET", trendsPath, nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var insights trends.Insights
	s.Require().NoError(json.Unmarshal(body, &insights))
	s.Equal(5, insights.RecordCount)
	s.Require().NotNil(insights.Stats)
	s.Equal(5, insights.Stats.WorkoutDays)

	// a new record in the window drops the cached trends
	s.saveRecord(ctx, userID, "2024-04-30", s.newRecord(2400))
	status, body = s.do(ctx, "GET", trendsPath, nil)
	s.Require().Equal(http.StatusOK, status)
	insights = trends.Insights{}
	s.Require().NoError(json.Unmarshal(body, &insights))
	s.Equal(6, insights.RecordCount)

	status, _ = s.do(ctx, "GET", fmt.Sprintf("/users/%s/trends/2024-05-06?days=1000", userID), nil)
	s.Equal(http.StatusBadRequest, status)

	status, body = s.do(ctx, "GET", fmt.Sprintf("/users/%s/analysis/2024-05-06?days=7", userID), nil)
	s.Require().Equal(http.StatusOK, status, string(body))
	var analysis coach.Analysis
	s.Require().NoError(json.Unmarshal(body, &analysis))
	s.Equal("2024-05-06", analysis.Date)
	s.Require().NotNil(analysis.Score)
	s.Require().NotNil(analysis.Trends)
	s.Equal(6, analysis.Trends.RecordCount)
}
