// file: internals/features/surveys/service/attempt_store.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrAttemptNotFound = errors.New("attempt tidak ditemukan")

// AttemptStore menyimpan attempt berjalan di Redis dengan TTL — padanan
// state transien per-tab browser. Submit lock juga hidup di sini supaya
// double-click tidak menghasilkan dua baris hasil di backend.
type AttemptStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAttemptStore(rdb *redis.Client, ttl time.Duration) *AttemptStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AttemptStore{rdb: rdb, ttl: ttl}
}

func attemptKey(userID uuid.UUID, surveyID int64) string {
	return fmt.Sprintf("attempt:%s:%d", userID, surveyID)
}

func submitLockKey(userID uuid.UUID, surveyID int64) string {
	return fmt.Sprintf("attempt:submitlock:%s:%d", userID, surveyID)
}

func (s *AttemptStore) Get(ctx context.Context, userID uuid.UUID, surveyID int64) (*Attempt, error) {
	raw, err := s.rdb.Get(ctx, attemptKey(userID, surveyID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrAttemptNotFound
	}
	if err != nil {
		return nil, err
	}
	var a Attempt
	if err := sonic.Unmarshal(raw, &a); err != nil {
		return nil, err
	}
	if a.Answers == nil {
		a.Answers = map[int64]int{}
	}
	return &a, nil
}

func (s *AttemptStore) Save(ctx context.Context, a *Attempt) error {
	raw, err := sonic.Marshal(a)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, attemptKey(a.UserID, a.SurveyID), raw, s.ttl).Err()
}

func (s *AttemptStore) Delete(ctx context.Context, userID uuid.UUID, surveyID int64) error {
	return s.rdb.Del(ctx, attemptKey(userID, surveyID)).Err()
}

// AcquireSubmitLock set flag single-flight. false = submit lain sedang jalan.
// TTL pendek supaya lock yang yatim (proses mati di tengah submit) lepas sendiri.
func (s *AttemptStore) AcquireSubmitLock(ctx context.Context, userID uuid.UUID, surveyID int64) (bool, error) {
	return s.rdb.SetNX(ctx, submitLockKey(userID, surveyID), "1", 30*time.Second).Result()
}

func (s *AttemptStore) ReleaseSubmitLock(ctx context.Context, userID uuid.UUID, surveyID int64) {
	_ = s.rdb.Del(ctx, submitLockKey(userID, surveyID)).Err()
}
