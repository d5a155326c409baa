// Copyright (c) 2026 Traders. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/traders/internal/platform/constants"
)

// RedisLikeStore keeps likes in two Redis sets per relation: one set of
// visitors per item and one set of item IDs per visitor.
type RedisLikeStore struct {
	client redis.UniversalClient
}

// NewRedisLikeStore creates a new Redis-backed [LikeStore].
func NewRedisLikeStore(client redis.UniversalClient) *RedisLikeStore {
	return &RedisLikeStore{client: client}
}

/*
Toggle flips a like.

SADD on the item set decides the outcome: a new member means the visitor
had not liked the item yet. Otherwise both memberships are removed in one
transaction.
*/
func (store *RedisLikeStore) Toggle(ctx context.Context, visitor string, itemID int) (bool, error) {
	itemKey := itemLikesKey(itemID)
	visitorKey := visitorLikesKey(visitor)

	added, err := store.client.SAdd(ctx, itemKey, visitor).Result()
	if err != nil {
		return false, fmt.Errorf("redis_like_add_failed: %w", err)
	}

	if added == 1 {
		if err := store.client.SAdd(ctx, visitorKey, itemID).Err(); err != nil {
			return false, fmt.Errorf("redis_like_index_failed: %w", err)
		}
		return true, nil
	}

	_, err = store.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SRem(ctx, itemKey, visitor)
		pipe.SRem(ctx, visitorKey, itemID)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("redis_like_remove_failed: %w", err)
	}

	return false, nil
}

func (store *RedisLikeStore) LikedBy(ctx context.Context, visitor string) ([]int, error) {
	members, err := store.client.SMembers(ctx, visitorLikesKey(visitor)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis_likes_by_visitor_failed: %w", err)
	}

	ids := make([]int, 0, len(members))
	for _, member := range members {
		id, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids, nil
}

// Counts reads every item set cardinality in one pipeline round trip.
func (store *RedisLikeStore) Counts(ctx context.Context, itemIDs []int) (map[int]int, error) {
	counts := make(map[int]int, len(itemIDs))
	if len(itemIDs) == 0 {
		return counts, nil
	}

	commands := make([]*redis.IntCmd, len(itemIDs))
	_, err := store.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range itemIDs {
			commands[i] = pipe.SCard(ctx, itemLikesKey(id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis_like_counts_failed: %w", err)
	}

	for i, command := range commands {
		if n := command.Val(); n > 0 {
			counts[itemIDs[i]] = int(n)
		}
	}

	return counts, nil
}

func itemLikesKey(itemID int) string {
	return constants.RedisPrefixItemLikes + strconv.Itoa(itemID)
}

func visitorLikesKey(visitor string) string {
	return constants.RedisPrefixVisitorLikes + visitor
}
