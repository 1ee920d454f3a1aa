package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"finlearn_backend/internal/model"
	"finlearn_backend/internal/progress"

	"github.com/go-redis/redis/v8"
)

var ErrKeyNotFound = errors.New("key not found")

// KV is the minimal key-value surface the record repository needs.
// Redis backs it in production; tests swap in an in-memory map.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type RedisKV struct {
	Client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{Client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrKeyNotFound
	}
	return val, err
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	// records are the source of truth, never expire them
	return r.Client.Set(ctx, key, value, 0).Err()
}

func ProfileKey(userID string) string {
	return fmt.Sprintf("user:%s:profile", userID)
}

func ProgressKey(userID string) string {
	return fmt.Sprintf("user:%s:progress", userID)
}

// RecordRepository persists the per-user profile and progress blobs as
// JSON values in the KV store.
type RecordRepository struct {
	kv KV
}

func NewRecordRepository(kv KV) *RecordRepository {
	return &RecordRepository{kv: kv}
}

func (r *RecordRepository) GetProfile(ctx context.Context, userID string) (model.ProfileRecord, error) {
	var p model.ProfileRecord
	raw, err := r.kv.Get(ctx, ProfileKey(userID))
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return p, fmt.Errorf("decode profile record: %w", err)
	}
	return p, nil
}

func (r *RecordRepository) SaveProfile(ctx context.Context, userID string, p model.ProfileRecord) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, ProfileKey(userID), string(raw))
}

func (r *RecordRepository) GetProgress(ctx context.Context, userID string) (progress.Record, error) {
	raw, err := r.kv.Get(ctx, ProgressKey(userID))
	if err != nil {
		return progress.Record{}, err
	}
	var rec progress.Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return progress.Record{}, fmt.Errorf("decode progress record: %w", err)
	}
	if rec.CompletedLessons == nil {
		rec.CompletedLessons = []string{}
	}
	if rec.QuizScores == nil {
		rec.QuizScores = map[string]int{}
	}
	return rec, nil
}

func (r *RecordRepository) SaveProgress(ctx context.Context, userID string, rec progress.Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, ProgressKey(userID), string(raw))
}
