package redis

// Package redis provides Redis-based adapters for the admin console.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	domainauth "github.com/kampus/admin-console/internal/domain/auth"
	"github.com/redis/go-redis/v9"
)

const (
	defaultSessionPrefix = "session:"
	userIndexSuffix      = "user:"
	scanBatchSize        = 200
)

// SessionStore is a Redis-based session store.
// Each session lives under <prefix><id> with a TTL derived from ExpiresAt.
// A per-account set under <prefix>user:<email> indexes session ids for revocation.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewSessionStore creates a new Redis-based session store.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return NewSessionStoreWithPrefix(client, defaultSessionPrefix)
}

// NewSessionStoreWithPrefix creates a Redis session store with a custom key prefix.
func NewSessionStoreWithPrefix(client redis.UniversalClient, prefix string) *SessionStore {
	if prefix == "" {
		prefix = defaultSessionPrefix
	}
	return &SessionStore{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

func (s *SessionStore) sessionKey(id string) string { return s.prefix + id }

func (s *SessionStore) userKey(email string) string {
	return s.prefix + userIndexSuffix + strings.ToLower(strings.TrimSpace(email))
}

func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return errors.New("session is expired")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.sessionKey(sess.ID), data, ttl)
		if sess.Email != "" {
			idx := s.userKey(sess.Email)
			pipe.SAdd(ctx, idx, sess.ID)
			pipe.Expire(ctx, idx, ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}

	data, err := s.client.Get(ctx, s.sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Session{}, ErrNotFound
		}
		return domainauth.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal(data, &sess); unmarshalErr != nil {
		return domainauth.Session{}, fmt.Errorf("unmarshal session: %w", unmarshalErr)
	}

	if sess.Expired(s.now()) {
		if deleteErr := s.Delete(ctx, id); deleteErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup expired session: %w", deleteErr)
		}
		return domainauth.Session{}, ErrNotFound
	}

	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}

	var email string
	if data, err := s.client.Get(ctx, s.sessionKey(id)).Bytes(); err == nil {
		var sess domainauth.Session
		if json.Unmarshal(data, &sess) == nil {
			email = sess.Email
		}
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.sessionKey(id))
		if email != "" {
			pipe.SRem(ctx, s.userKey(email), id)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}

// DeleteByEmail removes all sessions indexed for email.
func (s *SessionStore) DeleteByEmail(ctx context.Context, email string) (int, error) {
	if strings.TrimSpace(email) == "" {
		return 0, nil
	}

	idx := s.userKey(email)
	ids, err := s.client.SMembers(ctx, idx).Result()
	if err != nil {
		return 0, fmt.Errorf("redis list sessions for %s: %w", email, err)
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, s.sessionKey(id))
	}

	var removed *redis.IntCmd
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if len(keys) > 0 {
			removed = pipe.Del(ctx, keys...)
		}
		pipe.Del(ctx, idx)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("redis revoke sessions for %s: %w", email, err)
	}
	if removed == nil {
		return 0, nil
	}
	return int(removed.Val()), nil
}

// List returns every live session. Intended for operator tooling, not request paths.
func (s *SessionStore) List(ctx context.Context) ([]domainauth.Session, error) {
	var (
		cursor uint64
		out    []domainauth.Session
	)
	indexPrefix := s.prefix + userIndexSuffix

	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", scanBatchSize).Result()
		if err != nil {
			return nil, fmt.Errorf("redis scan sessions: %w", err)
		}
		for _, key := range keys {
			if strings.HasPrefix(key, indexPrefix) {
				continue
			}
			sess, getErr := s.Get(ctx, strings.TrimPrefix(key, s.prefix))
			if errors.Is(getErr, ErrNotFound) {
				continue
			}
			if getErr != nil {
				return nil, getErr
			}
			out = append(out, sess)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return out, nil
}

// ErrNotFound is returned when a session is not found.
type notFoundError struct{}

func (notFoundError) Error() string { return "session not found" }

var ErrNotFound error = notFoundError{}
