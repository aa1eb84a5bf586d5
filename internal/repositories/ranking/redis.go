package ranking

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pack-odds/internal/entities"
	"github.com/KirkDiggler/pack-odds/internal/errors"
	redisclient "github.com/KirkDiggler/pack-odds/internal/redis"
)

const (
	snapshotKeyPrefix = "ranking:snapshot:"
	scoresKeyPrefix   = "ranking:scores:"
	indexKey          = "ranking:index"

	errSnapshotIDEmpty = "snapshot ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis ranking repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed ranking repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot cannot be nil")
	}
	snapshot := input.Snapshot
	if snapshot.ID == "" {
		return nil, errors.InvalidArgument(errSnapshotIDEmpty)
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal snapshot")
	}

	scoresKey := ScoresKey(snapshot.ID)
	members := make([]redis.Z, 0, len(snapshot.Entries))
	for _, entry := range snapshot.Entries {
		members = append(members, redis.Z{Score: entry.Probability, Member: entry.Key()})
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, SnapshotKey(snapshot.ID), data, 0)

	// Replace rather than merge so a re-save never keeps stale packs
	pipe.Del(ctx, scoresKey)
	if len(members) > 0 {
		pipe.ZAdd(ctx, scoresKey, members...)
	}

	pipe.ZAdd(ctx, indexKey, redis.Z{
		Score:  float64(snapshot.CreatedAt.UnixMilli()),
		Member: snapshot.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to save snapshot %s", snapshot.ID)
	}

	slog.DebugContext(ctx, "saved ranking snapshot",
		"snapshot_id", snapshot.ID,
		"entries", len(snapshot.Entries))

	return &SaveOutput{ID: snapshot.ID}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSnapshotIDEmpty)
	}

	result, err := r.client.Get(ctx, SnapshotKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("snapshot %s not found", input.ID)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get snapshot %s", input.ID)
	}

	snapshot, err := decodeSnapshot(result)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Snapshot: snapshot}, nil
}

func (r *redisRepository) GetTop(ctx context.Context, input GetTopInput) (*GetTopOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSnapshotIDEmpty)
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgumentf("limit cannot be negative: %d", input.Limit)
	}

	exists, err := r.client.Exists(ctx, SnapshotKey(input.ID)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to check snapshot existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("snapshot %s not found", input.ID)
	}

	stop := int64(input.Limit) - 1
	scored, err := r.client.ZRevRangeWithScores(ctx, ScoresKey(input.ID), 0, stop).Result()
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read scores for snapshot %s", input.ID)
	}

	packs := make([]ScoredPack, 0, len(scored))
	for _, z := range scored {
		key, ok := z.Member.(string)
		if !ok {
			continue
		}
		packs = append(packs, ScoredPack{Key: key, Probability: z.Score})
	}

	return &GetTopOutput{Packs: packs}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.Limit < 0 {
		return nil, errors.InvalidArgumentf("limit cannot be negative: %d", input.Limit)
	}

	ids, err := r.client.ZRevRange(ctx, indexKey, 0, int64(input.Limit)-1).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read snapshot index")
	}
	if len(ids) == 0 {
		return &ListOutput{Snapshots: []*entities.RankingSnapshot{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = SnapshotKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get snapshots")
	}

	snapshots := make([]*entities.RankingSnapshot, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Indexed but gone, e.g. evicted
			slog.WarnContext(ctx, "snapshot missing from index", "snapshot_id", ids[i])
			continue
		}

		snapshot, err := decodeSnapshot(raw)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	return &ListOutput{Snapshots: snapshots}, nil
}

func decodeSnapshot(raw string) (*entities.RankingSnapshot, error) {
	var snapshot entities.RankingSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal snapshot data")
	}
	return &snapshot, nil
}

// SnapshotKey returns the Redis key holding a snapshot
// Exposed for testing purposes
func SnapshotKey(id string) string {
	return fmt.Sprintf("%s%s", snapshotKeyPrefix, id)
}

// ScoresKey returns the Redis key holding a snapshot's pack scores
func ScoresKey(id string) string {
	return fmt.Sprintf("%s%s", scoresKeyPrefix, id)
}

// IndexKey returns the Redis key ordering snapshots by creation time
func IndexKey() string {
	return indexKey
}
