package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/2beens/nutridiary/internal/cache"
	"github.com/2beens/nutridiary/internal/diary"
	"github.com/2beens/nutridiary/internal/nutrients"
	"github.com/2beens/nutridiary/internal/profile"
	"github.com/2beens/nutridiary/internal/scoring"
	"github.com/2beens/nutridiary/internal/telemetry/metrics"
	"github.com/2beens/nutridiary/internal/telemetry/tracing"
	"github.com/2beens/nutridiary/internal/trends"
)

//go:generate mockgen -source=$GOFILE -destination=coach_mocks_test.go -package=coach_test

type recordsReader interface {
	Get(ctx context.Context, userID string, day time.Time) (*diary.DailyRecord, error)
}

type profileReader interface {
	Get(ctx context.Context, userID string) (*profile.UserProfile, error)
}

type targetsResolver interface {
	Resolve(ctx context.Context, p *profile.UserProfile) (nutrients.Targets, error)
}

var ErrInvalidWindow = errors.New("invalid window length")

const (
	defaultWindowDays  = 30
	defaultParallelism = 8
)

// Analysis is the combined score and trends payload for one day.
type Analysis struct {
	Date   string           `json:"date"`
	Score  *scoring.Report  `json:"score"`
	Trends *trends.Insights `json:"trends"`
}

type ServiceParams struct {
	Records        recordsReader
	Profiles       profileReader
	Targets        targetsResolver
	Scorer         *scoring.Scorer
	Analyzer       *trends.Analyzer
	Cache          cache.Cache
	MetricsManager *metrics.Manager

	DefaultWindowDays int
	MaxWindowDays     int
	// WindowParallelism bounds the concurrent historical reads.
	WindowParallelism int
}

// Service loads the records around a day and hands them to the scorer and
// the trend analyzer.
type Service struct {
	records        recordsReader
	profiles       profileReader
	targets        targetsResolver
	scorer         *scoring.Scorer
	analyzer       *trends.Analyzer
	cache          cache.Cache
	metricsManager *metrics.Manager

	defaultWindowDays int
	maxWindowDays     int
	parallelism       int
}

func NewService(params ServiceParams) *Service {
	s := &Service{
		records:           params.Records,
		profiles:          params.Profiles,
		targets:           params.Targets,
		scorer:            params.Scorer,
		analyzer:          params.Analyzer,
		cache:             params.Cache,
		metricsManager:    params.MetricsManager,
		defaultWindowDays: params.DefaultWindowDays,
		maxWindowDays:     params.MaxWindowDays,
		parallelism:       params.WindowParallelism,
	}
	if s.defaultWindowDays <= 0 {
		s.defaultWindowDays = defaultWindowDays
	}
	if s.maxWindowDays < s.defaultWindowDays {
		s.maxWindowDays = s.defaultWindowDays
	}
	if s.parallelism <= 0 {
		s.parallelism = defaultParallelism
	}
	if s.scorer == nil {
		s.scorer = scoring.NewScorer(scoring.DefaultRules())
	}
	if s.analyzer == nil {
		s.analyzer = trends.NewAnalyzer(trends.DefaultThresholds())
	}
	if s.cache == nil {
		s.cache = cache.NewScopedTestCache()
	}
	if s.metricsManager == nil {
		s.metricsManager = metrics.NewTestManager()
	}
	return s
}

func (s *Service) DefaultWindowDays() int {
	return s.defaultWindowDays
}

// Invalidate drops the cached analyses of the user.
func (s *Service) Invalidate(userID string) {
	s.cache.Invalidate(userID)
}

// Score computes the score report for the user's record on day. A day without
// a record is scored as an empty one.
func (s *Service) Score(ctx context.Context, userID string, day time.Time) (_ *scoring.Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.coach.score")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user", userID), attribute.String("day", day.Format(diary.DateLayout)))

	p, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	targets, err := s.targets.Resolve(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("resolve targets: %w", err)
	}

	record, err := s.records.Get(ctx, userID, day)
	if err != nil {
		if !errors.Is(err, diary.ErrRecordNotFound) {
			return nil, fmt.Errorf("get record: %w", err)
		}
		record = &diary.DailyRecord{}
	}

	report := s.scorer.Score(p, record, targets)
	s.metricsManager.CounterScoreReports.Inc()

	return report, nil
}

// Trends analyses the days window days before day, day itself excluded.
// A days value of 0 selects the default window.
func (s *Service) Trends(ctx context.Context, userID string, day time.Time, days int) (_ *trends.Insights, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.coach.trends")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if days == 0 {
		days = s.defaultWindowDays
	}
	if days < 0 || days > s.maxWindowDays {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrInvalidWindow, days, s.maxWindowDays)
	}
	span.SetAttributes(
		attribute.String("user", userID),
		attribute.String("day", day.Format(diary.DateLayout)),
		attribute.Int("days", days),
	)

	cacheKey := fmt.Sprintf("trends::%s::%d", day.Format(diary.DateLayout), days)
	cached, gen, found := s.cache.Get(userID, cacheKey)
	if found {
		insights := &trends.Insights{}
		if err := json.Unmarshal(cached, insights); err == nil {
			s.metricsManager.CounterTrendAnalyses.WithLabelValues("hit").Inc()
			return insights, nil
		} else {
			log.Errorf("unmarshal cached trends for %s: %s", userID, err)
		}
	}

	p, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	window := s.loadWindow(ctx, userID, day, days)
	insights := s.analyzer.Analyze(trends.NewSeries(window), p)
	s.metricsManager.CounterTrendAnalyses.WithLabelValues("miss").Inc()

	if insightsJson, err := json.Marshal(insights); err != nil {
		log.Errorf("marshal trends for cache: %s", err)
	} else if !s.cache.Set(userID, gen, cacheKey, insightsJson) {
		log.Debugf("trends for %s not cached, scope invalidated or cache full", userID)
	}

	return insights, nil
}

// Analysis returns the day's score report together with the trends over the
// preceding window.
func (s *Service) Analysis(ctx context.Context, userID string, day time.Time, days int) (_ *Analysis, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.coach.analysis")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	report, err := s.Score(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	insights, err := s.Trends(ctx, userID, day, days)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Date:   day.Format(diary.DateLayout),
		Score:  report,
		Trends: insights,
	}, nil
}

func (s *Service) loadProfile(ctx context.Context, userID string) (*profile.UserProfile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			log.Debugf("no profile for %s, scoring as general user", userID)
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// loadWindow reads the records of the days before day concurrently. Days that
// have no record or fail to load are left out.
func (s *Service) loadWindow(ctx context.Context, userID string, day time.Time, days int) []diary.Day {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.coach.loadwindow")
	defer span.End()

	start := time.Now()
	defer func() {
		s.metricsManager.HistWindowLoadDuration.Observe(time.Since(start).Seconds())
	}()

	var (
		mutex  sync.Mutex
		window = make([]diary.Day, 0, days)
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for i := 1; i <= days; i++ {
		date := day.AddDate(0, 0, -i)
		g.Go(func() error {
			record, err := s.records.Get(gCtx, userID, date)
			if err != nil {
				if !errors.Is(err, diary.ErrRecordNotFound) {
					log.Warnf("load window day %s for %s: %s", date.Format(diary.DateLayout), userID, err)
					s.metricsManager.CounterWindowReadFailures.Inc()
				}
				return nil
			}

			mutex.Lock()
			window = append(window, diary.Day{Date: date, Record: record})
			mutex.Unlock()
			return nil
		})
	}
	// reads never fail the group
	_ = g.Wait()

	s.metricsManager.HistWindowSize.Observe(float64(len(window)))
	span.SetAttributes(attribute.Int("loaded", len(window)))

	return window
}
