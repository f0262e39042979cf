package profile_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/nutridiary/internal/profile"
)

func TestStore_Save(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := profile.NewStore(db)

	p := &profile.UserProfile{Weight: 72.5, Style: "筋肥大", Purpose: "バルクアップ"}
	profileJson, err := json.Marshal(p)
	require.NoError(t, err)

	mock.ExpectSet("diary-profile||user-1", string(profileJson), 0).SetVal("OK")
	require.NoError(t, store.Save(context.Background(), "user-1", p))

	mock.ExpectSet("diary-profile||user-2", string(profileJson), 0).SetErr(errors.New("redis down"))
	assert.Error(t, store.Save(context.Background(), "user-2", p))

	assert.Error(t, store.Save(context.Background(), "", p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := profile.NewStore(db)

	mock.ExpectGet("diary-profile||user-1").SetVal(`{"weight": 80, "bodyFat": 20, "style": "バランス"}`)
	p, err := store.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 80.0, p.Weight)
	assert.True(t, p.IsBodymaker())
	assert.InDelta(t, 64.0, p.LBM(), 1e-9)

	mock.ExpectGet("diary-profile||user-2").RedisNil()
	p, err = store.Get(context.Background(), "user-2")
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
	assert.Nil(t, p)

	mock.ExpectGet("diary-profile||user-3").SetVal(`{"weight": `)
	_, err = store.Get(context.Background(), "user-3")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, profile.ErrProfileNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
