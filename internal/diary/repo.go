package diary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/nutridiary/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRecordNotFound = errors.New("daily record not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Save supersedes the user's record for the given day.
func (r *Repo) Save(ctx context.Context, userID string, day time.Time, record *DailyRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diary.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user", userID), attribute.String("day", day.Format(DateLayout)))

	if userID == "" {
		return errors.New("user id empty")
	}

	recordJson, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO daily_record (user_id, day, record, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, day) DO UPDATE
		SET record = EXCLUDED.record, updated_at = EXCLUDED.updated_at;`,
		userID, day, recordJson, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, userID string, day time.Time) (_ *DailyRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diary.get")
	defer func() {
		if errors.Is(err, ErrRecordNotFound) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user", userID), attribute.String("day", day.Format(DateLayout)))

	var recordJson []byte
	err = r.db.QueryRow(ctx, `
		SELECT record
		FROM daily_record
		WHERE user_id = $1 AND day = $2;`,
		userID, day,
	).Scan(&recordJson)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	record := &DailyRecord{}
	if err := json.Unmarshal(recordJson, record); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return record, nil
}

// ListDates returns the days in [from, to] that have a record, oldest first.
func (r *Repo) ListDates(ctx context.Context, userID string, from, to time.Time) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diary.listdates")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT day
		FROM daily_record
		WHERE user_id = $1 AND day BETWEEN $2 AND $3
		ORDER BY day;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}
