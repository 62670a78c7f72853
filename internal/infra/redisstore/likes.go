package redisstore

import (
	"context"
	"strconv"

	"flashsale-core/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const likeKeyPrefix = "blog:liked:"

// LikeStore ranks blog likes in a sorted set scored by like time, so the
// earliest likers can be listed in order.
type LikeStore struct {
	client *redis.Client
}

func NewLikeStore(client *redis.Client) *LikeStore {
	return &LikeStore{client: client}
}

func (s *LikeStore) Like(ctx context.Context, blogID, userID int64, likedAtMillis int64) error {
	key := likeKeyPrefix + strconv.FormatInt(blogID, 10)
	member := strconv.FormatInt(userID, 10)
	err := s.client.ZAdd(ctx, key, redis.Z{Score: float64(likedAtMillis), Member: member}).Err()
	if err != nil {
		return errs.Wrapf(err, "failed to record like for blog %d", blogID)
	}
	return nil
}

func (s *LikeStore) Unlike(ctx context.Context, blogID, userID int64) error {
	key := likeKeyPrefix + strconv.FormatInt(blogID, 10)
	member := strconv.FormatInt(userID, 10)
	if err := s.client.ZRem(ctx, key, member).Err(); err != nil {
		return errs.Wrapf(err, "failed to remove like for blog %d", blogID)
	}
	return nil
}

func (s *LikeStore) IsLiked(ctx context.Context, blogID, userID int64) (bool, error) {
	key := likeKeyPrefix + strconv.FormatInt(blogID, 10)
	member := strconv.FormatInt(userID, 10)
	_, err := s.client.ZScore(ctx, key, member).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errs.Wrapf(err, "failed to check like for blog %d", blogID)
	}
	return true, nil
}

// TopLikers returns up to n user ids ordered by earliest like first.
func (s *LikeStore) TopLikers(ctx context.Context, blogID int64, n int64) ([]int64, error) {
	key := likeKeyPrefix + strconv.FormatInt(blogID, 10)
	members, err := s.client.ZRange(ctx, key, 0, n-1).Result()
	if err != nil {
		return nil, errs.Wrapf(err, "failed to list likers for blog %d", blogID)
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, errs.Wrap(err, "malformed liker id in ranking")
		}
		ids = append(ids, id)
	}
	return ids, nil
}
