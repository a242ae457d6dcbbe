package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/combo-tracker/internal/domain/combo"
	dnderr "github.com/KirkDiggler/combo-tracker/internal/errors"
)

const (
	keyPrefix = "combo:progress:"
	groupsKey = "combo:progress:groups"
)

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// RedisRepoConfig holds configuration for the redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
}

// NewRedis creates a redis backed progress repository
func NewRedis(cfg *RedisRepoConfig) (Repository, error) {
	if cfg == nil || cfg.Client == nil {
		return nil, dnderr.InvalidArgument("redis client is required")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = systemTime{}
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
	}, nil
}

func progressKey(groupID combo.GroupID) string {
	return fmt.Sprintf("%s%d", keyPrefix, groupID)
}

func (r *redisRepo) Save(ctx context.Context, snapshot *Snapshot) error {
	if err := validate(snapshot); err != nil {
		return err
	}

	snapshot.UpdatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal progress snapshot")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, progressKey(snapshot.GroupID), string(jsonData), 0)
	pipe.SAdd(ctx, groupsKey, strconv.FormatUint(uint64(snapshot.GroupID), 10))
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to save progress in Redis")
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, groupID combo.GroupID) (*Snapshot, error) {
	jsonData, err := r.client.Get(ctx, progressKey(groupID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dnderr.NotFoundf("progress for group %d not found", groupID).
				WithMeta("group_id", groupID)
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to get progress from Redis")
	}

	var snapshot Snapshot
	if err := json.Unmarshal(jsonData, &snapshot); err != nil {
		return nil, dnderr.Wrapf(err, "failed to unmarshal progress for group %d", groupID)
	}

	return &snapshot, nil
}

func (r *redisRepo) List(ctx context.Context) ([]*Snapshot, error) {
	members, err := r.client.SMembers(ctx, groupsKey).Result()
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to list progress groups from Redis")
	}

	snapshots := make([]*Snapshot, len(members))

	g, ctx := errgroup.WithContext(ctx)
	for i, member := range members {
		id, err := strconv.ParseUint(member, 10, 32)
		if err != nil {
			return nil, dnderr.Wrapf(err, "invalid group id %q in progress index", member)
		}

		g.Go(func() error {
			snapshot, err := r.Get(ctx, combo.GroupID(id))
			if err != nil {
				return dnderr.Wrapf(err, "failed to get progress %d", id)
			}
			snapshots[i] = snapshot
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].GroupID < snapshots[j].GroupID
	})

	return snapshots, nil
}

func (r *redisRepo) Delete(ctx context.Context, groupID combo.GroupID) error {
	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, progressKey(groupID))
	pipe.SRem(ctx, groupsKey, strconv.FormatUint(uint64(groupID), 10))
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to delete progress from Redis")
	}

	if del.Val() == 0 {
		return dnderr.NotFoundf("progress for group %d not found", groupID).
			WithMeta("group_id", groupID)
	}

	return nil
}
