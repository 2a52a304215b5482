package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/character-vault/internal/domain/character"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
)

// CharacterData is the serialized form of a character in Redis. The snapshot
// itself is the serialization contract; the envelope only adds timestamps.
type CharacterData struct {
	Character *character.Character `json:"character"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// RedisRepoConfig configures the Redis-backed repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	return &redisRepo{client: cfg.Client}
}

// key generates the Redis key for a character
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// ownerCharactersKey generates the Redis key for an owner's character set
func (r *redisRepo) ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

// allCharactersKey is the index set holding every character ID
func (r *redisRepo) allCharactersKey() string {
	return "characters:all"
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}
	if char.OwnerID == "" {
		return dnderr.InvalidArgument("character owner ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	now := time.Now().UTC()
	jsonData, err := json.Marshal(&CharacterData{
		Character: char,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), jsonData, 0)
	pipe.SAdd(ctx, r.ownerCharactersKey(char.OwnerID), char.ID)
	pipe.SAdd(ctx, r.allCharactersKey(), char.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	return unmarshalCharacter(jsonData)
}

// GetByOwner retrieves all characters for a specific owner
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerCharactersKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}

	return r.getMany(ctx, ids)
}

// ListAll retrieves every stored character
func (r *redisRepo) ListAll(ctx context.Context) ([]*character.Character, error) {
	ids, err := r.client.SMembers(ctx, r.allCharactersKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}

	return r.getMany(ctx, ids)
}

// getMany loads a batch of characters, skipping IDs whose data has expired
// or been removed out from under the index
func (r *redisRepo) getMany(ctx context.Context, ids []string) ([]*character.Character, error) {
	chars := make([]*character.Character, 0, len(ids))
	for _, id := range ids {
		char, err := r.Get(ctx, id)
		if dnderr.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		chars = append(chars, char)
	}
	return chars, nil
}

// Update updates an existing character
func (r *redisRepo) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(char.ID)).Result()
	if err == redis.Nil {
		return dnderr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to get character: %w", err)
	}

	var existing CharacterData
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &existing); unmarshalErr != nil {
		return fmt.Errorf("failed to unmarshal character: %w", unmarshalErr)
	}

	updated, err := json.Marshal(&CharacterData{
		Character: char,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), updated, 0)
	if existing.Character != nil && existing.Character.OwnerID != char.OwnerID {
		pipe.SRem(ctx, r.ownerCharactersKey(existing.Character.OwnerID), char.ID)
		pipe.SAdd(ctx, r.ownerCharactersKey(char.OwnerID), char.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	return nil
}

// Delete removes a character and its index entries
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	char, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerCharactersKey(char.OwnerID), id)
	pipe.SRem(ctx, r.allCharactersKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}

func unmarshalCharacter(jsonData string) (*character.Character, error) {
	var data CharacterData
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}
	if data.Character == nil {
		return nil, dnderr.Internal("character data is empty")
	}
	data.Character.Normalize()
	return data.Character, nil
}
