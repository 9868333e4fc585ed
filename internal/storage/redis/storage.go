package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/edgeguard/internal/model"
	"github.com/mcoot/edgeguard/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKey(session.ID), data, s.cfg.HistoryTTL)
	pipe.ZAdd(ctx, sessionsIndexKey(), redis.Z{
		Score:  float64(session.StartedAt.UnixMilli()),
		Member: string(session.ID),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) ListSessions(ctx context.Context, limit int) ([]*model.Session, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}
	ids, err := s.client.ZRevRange(ctx, sessionsIndexKey(), 0, stop).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Session{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = sessionKey(model.SessionID(id))
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	sessions := make([]*model.Session, 0, len(values))
	var expired []any
	for i, v := range values {
		str, ok := v.(string)
		if !ok {
			// Document expired; drop it from the index
			expired = append(expired, ids[i])
			continue
		}
		var session model.Session
		if err := json.Unmarshal([]byte(str), &session); err != nil {
			return nil, err
		}
		sessions = append(sessions, &session)
	}
	if len(expired) > 0 {
		if err := s.client.ZRem(ctx, sessionsIndexKey(), expired...).Err(); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

// Turn operations

func (s *Storage) AppendTurn(ctx context.Context, rec model.TurnRecord) error {
	if err := s.requireSession(ctx, rec.SessionID); err != nil {
		return err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	key := turnsKey(rec.SessionID)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	if s.cfg.HistoryTTL > 0 {
		pipe.Expire(ctx, key, s.cfg.HistoryTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetTurns(ctx context.Context, id model.SessionID) ([]model.TurnRecord, error) {
	if err := s.requireSession(ctx, id); err != nil {
		return nil, err
	}

	items, err := s.client.LRange(ctx, turnsKey(id), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	turns := make([]model.TurnRecord, 0, len(items))
	for _, item := range items {
		var rec model.TurnRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, err
		}
		turns = append(turns, rec)
	}
	return turns, nil
}

func (s *Storage) requireSession(ctx context.Context, id model.SessionID) error {
	exists, err := s.client.Exists(ctx, sessionKey(id)).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return model.ErrSessionNotFound
	}
	return nil
}
