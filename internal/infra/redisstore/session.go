package redisstore

import (
	"context"
	"strconv"
	"time"

	"flashsale-core/internal/pkg/errs"
	"flashsale-core/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "login:token:"
	sessionTTL       = 30 * time.Minute
)

// SessionStore keeps logged-in user records as Redis hashes keyed by an
// opaque token, with a sliding TTL. A request arrives already carrying its
// token; the core only resolves it to a user.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save stores the user record under a fresh token and returns the token.
func (s *SessionStore) Save(ctx context.Context, user readmodel.UserRM) (string, error) {
	token := uuid.NewString()
	key := sessionKeyPrefix + token

	fields := map[string]string{
		"id":       strconv.FormatInt(user.ID, 10),
		"nickName": user.NickName,
		"icon":     user.Icon,
	}
	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return "", errs.Wrap(err, "failed to store session")
	}
	if err := s.client.Expire(ctx, key, sessionTTL).Err(); err != nil {
		return "", errs.Wrap(err, "failed to set session ttl")
	}
	return token, nil
}

// Get resolves a token to its user record. A missing or expired token
// returns (nil, nil).
func (s *SessionStore) Get(ctx context.Context, token string) (*readmodel.UserRM, error) {
	key := sessionKeyPrefix + token

	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, errs.Wrap(err, "failed to read session")
	}
	if len(fields) == 0 {
		return nil, nil
	}

	id, err := strconv.ParseInt(fields["id"], 10, 64)
	if err != nil {
		return nil, errs.Wrap(err, "malformed session record")
	}
	return &readmodel.UserRM{
		ID:       id,
		NickName: fields["nickName"],
		Icon:     fields["icon"],
	}, nil
}

// Refresh slides the session TTL forward, keeping active users logged in.
func (s *SessionStore) Refresh(ctx context.Context, token string) error {
	if err := s.client.Expire(ctx, sessionKeyPrefix+token, sessionTTL).Err(); err != nil {
		return errs.Wrap(err, "failed to refresh session ttl")
	}
	return nil
}
