package tmpstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Drolfothesgnir/mdhtml/markdown"
	"github.com/Drolfothesgnir/mdhtml/util"
	"github.com/redis/go-redis/v9"
)

// Different key prefixes for different use cases
const (
	RenderPrefix = "render:"
)

var ErrCacheMiss = errors.New("rendered document not found or expired")

// CachedRender is what is kept in memory for an already rendered input.
type CachedRender struct {
	HTML       string             `json:"html"`
	TextLength int                `json:"text_length"`
	Warnings   []markdown.Warning `json:"warnings"`
}

type Store interface {
	SaveRendered(ctx context.Context, key string, data CachedRender, ttl time.Duration) error
	GetRendered(ctx context.Context, key string) (*CachedRender, error)
	DeleteRendered(ctx context.Context, key string) error
	Close() error
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// RenderKey builds the cache key of the input. The engine version is a part of the key,
// so changing the dialect rules never serves stale HTML.
func RenderKey(engineVersion int32, input string) string {
	sum := sha256.Sum256([]byte(input))
	return RenderPrefix + "v" + strconv.Itoa(int(engineVersion)) + ":" + hex.EncodeToString(sum[:])
}

// SaveRendered stores the rendered input for ttl. Zero ttl means no expiration.
func (store *RedisStore) SaveRendered(
	ctx context.Context,
	key string,
	data CachedRender,
	ttl time.Duration,
) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize rendered document: %w", err)
	}

	return store.client.Set(ctx, key, jsonData, ttl).Err()
}

// GetRendered retrieves the rendered input.
// Returns ErrCacheMiss if not found or expired.
func (store *RedisStore) GetRendered(ctx context.Context, key string) (*CachedRender, error) {
	jsonData, err := store.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get rendered document: %w", err)
	}

	var data CachedRender
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to parse rendered document json: %w", err)
	}

	return &data, nil
}

func (store *RedisStore) DeleteRendered(ctx context.Context, key string) error {
	return store.client.Del(ctx, key).Err()
}

func (store *RedisStore) Close() error {
	return store.client.Close()
}
