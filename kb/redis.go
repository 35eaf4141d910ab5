package kb

import (
	"context"

	"github.com/redis/go-redis/v9"
	"golang.org/x/xerrors"
)

const checksumKeyPrefix = "sha256sums:"

// Redis is the production Store. NVT metadata entries live as Redis lists
// under `nvt:<OID>`, file checksums as plain string keys.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to the Redis KB and verifies connectivity. A failure
// here is fatal to the whole load: the caller must not start processing
// files against an unreachable KB.
func NewRedis(ctx context.Context, addr string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, xerrors.Errorf("could not connect to the Redis KB: %w", err)
	}
	return &Redis{client: client}, nil
}

func (r *Redis) FileChecksum(path string) (string, error) {
	val, err := r.client.Get(context.Background(), checksumKeyPrefix+path).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", xerrors.Errorf("failed to read checksum for %s: %w", path, err)
	}
	return val, nil
}

func (r *Redis) PutAdvisory(key string, fields []string) error {
	if len(fields) != EntryFieldCount {
		return &FormatError{Key: key, Fields: len(fields)}
	}
	values := make([]interface{}, len(fields))
	for i, f := range fields {
		values[i] = f
	}

	// Replace the whole entry atomically so a concurrent reader never sees
	// a partially written list.
	ctx := context.Background()
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.RPush(ctx, key, values...)
		return nil
	})
	if err != nil {
		return xerrors.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
