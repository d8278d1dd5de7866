package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/export-advisor-bot/internal/domain/entity"
)

func newTestRedisRepo(t *testing.T) (*miniredis.Miniredis, *redisSessionRepository) {
	t.Helper()
	mr := miniredis.RunT(t)

	repo, err := NewRedisSessionRepository(mr.Addr(), "", 0, time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return mr, repo.(*redisSessionRepository)
}

func TestRedisSessionRoundtrip(t *testing.T) {
	_, repo := newTestRedisRepo(t)
	ctx := context.Background()

	sess := entity.NewSession("s1")
	sess.Stage = entity.StageAwaitingPhilosophy
	sess.Slots[entity.SlotMaterial] = "wood"

	require.NoError(t, repo.Put(ctx, sess))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, entity.StageAwaitingPhilosophy, got.Stage)
	require.Equal(t, "wood", got.Slots[entity.SlotMaterial])
}

func TestRedisSessionAbsentReturnsFresh(t *testing.T) {
	_, repo := newTestRedisRepo(t)

	got, err := repo.Get(context.Background(), "bilinmeyen")
	require.NoError(t, err)
	require.Equal(t, "bilinmeyen", got.ID)
	require.Equal(t, entity.StageIdle, got.Stage)
	require.NotNil(t, got.Slots)
}

func TestRedisSessionCorruptRecordFallsBackToFresh(t *testing.T) {
	mr, repo := newTestRedisRepo(t)

	require.NoError(t, mr.Set(sessionKeyPrefix+"s1", "bu json değil"))

	got, err := repo.Get(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, entity.StageIdle, got.Stage)
}

func TestRedisSessionTTLSet(t *testing.T) {
	mr, repo := newTestRedisRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, entity.NewSession("s1")))

	ttl := mr.TTL(sessionKeyPrefix + "s1")
	require.Greater(t, ttl, time.Duration(0), "oturum anahtarı TTL taşımalı")

	// TTL dolunca oturum sıfırdan başlar
	mr.FastForward(2 * time.Hour)
	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, entity.StageIdle, got.Stage)
}

func TestRedisSessionConnectFailure(t *testing.T) {
	_, err := NewRedisSessionRepository("127.0.0.1:1", "", 0, time.Hour)
	require.Error(t, err, "ulaşılamayan redis açılışta hata vermeli")
}
