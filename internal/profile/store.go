package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/nutridiary/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const profileKeyPrefix = "diary-profile||"

var ErrProfileNotFound = errors.New("profile not found")

type Store struct {
	redisClient *redis.Client
}

func NewStore(redisClient *redis.Client) *Store {
	return &Store{
		redisClient: redisClient,
	}
}

func profileKey(userID string) string {
	return profileKeyPrefix + userID
}

func (s *Store) Get(ctx context.Context, userID string) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.profile.get")
	defer func() {
		if errors.Is(err, ErrProfileNotFound) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user", userID))

	cmd := s.redisClient.Get(ctx, profileKey(userID))
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	p := &UserProfile{}
	if err := json.Unmarshal([]byte(cmd.Val()), p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return p, nil
}

func (s *Store) Save(ctx context.Context, userID string, p *UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.profile.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user", userID))

	if userID == "" {
		return errors.New("user id empty")
	}

	profileJson, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	if err := s.redisClient.Set(ctx, profileKey(userID), string(profileJson), 0).Err(); err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}
