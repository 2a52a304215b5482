package characters

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/character-vault/internal/domain/character"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedis(s.mockClient)
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) testCharacter() *character.Character {
	char := &character.Character{
		ID:       "char-1",
		OwnerID:  "owner-1",
		Name:     "Aragorn",
		ClassKey: "fighter",
		Level:    3,
	}
	char.Normalize()
	return char
}

func (s *RedisRepoTestSuite) storedJSON(char *character.Character) string {
	data, err := json.Marshal(&CharacterData{
		Character: char,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	char := s.testCharacter()

	s.mock.ExpectExists("character:char-1").SetVal(0)
	s.mock.Regexp().ExpectSet("character:char-1", `.*"id":"char-1".*`, 0).SetVal("OK")
	s.mock.ExpectSAdd("owner:owner-1:characters", "char-1").SetVal(1)
	s.mock.ExpectSAdd("characters:all", "char-1").SetVal(1)

	s.NoError(s.repo.Create(ctx, char))
}

func (s *RedisRepoTestSuite) TestCreateAlreadyExists() {
	ctx := context.Background()

	s.mock.ExpectExists("character:char-1").SetVal(1)

	err := s.repo.Create(ctx, s.testCharacter())
	s.Error(err)
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreateValidation() {
	ctx := context.Background()

	s.Error(s.repo.Create(ctx, nil))
	s.Error(s.repo.Create(ctx, &character.Character{OwnerID: "owner-1"}))
	s.Error(s.repo.Create(ctx, &character.Character{ID: "char-1"}))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	char := s.testCharacter()

	s.mock.ExpectGet("character:char-1").SetVal(s.storedJSON(char))

	got, err := s.repo.Get(ctx, "char-1")
	s.Require().NoError(err)
	s.Equal("Aragorn", got.Name)
	s.Equal(3, got.Level)
}

func (s *RedisRepoTestSuite) TestGetNotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("character:missing").RedisNil()

	_, err := s.repo.Get(ctx, "missing")
	s.Error(err)
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGetDependencyError() {
	ctx := context.Background()

	s.mock.ExpectGet("character:char-1").SetErr(errors.New("redis error"))

	_, err := s.repo.Get(ctx, "char-1")
	s.Error(err)
	s.False(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestGetByOwner() {
	ctx := context.Background()
	char := s.testCharacter()

	s.mock.ExpectSMembers("owner:owner-1:characters").SetVal([]string{"char-1", "char-gone"})
	s.mock.ExpectGet("character:char-1").SetVal(s.storedJSON(char))
	s.mock.ExpectGet("character:char-gone").RedisNil()

	chars, err := s.repo.GetByOwner(ctx, "owner-1")
	s.Require().NoError(err)
	s.Require().Len(chars, 1, "stale index entries are skipped")
	s.Equal("char-1", chars[0].ID)
}

func (s *RedisRepoTestSuite) TestListAll() {
	ctx := context.Background()
	char := s.testCharacter()

	s.mock.ExpectSMembers("characters:all").SetVal([]string{"char-1"})
	s.mock.ExpectGet("character:char-1").SetVal(s.storedJSON(char))

	chars, err := s.repo.ListAll(ctx)
	s.Require().NoError(err)
	s.Len(chars, 1)
}

func (s *RedisRepoTestSuite) TestUpdate() {
	ctx := context.Background()
	char := s.testCharacter()

	s.mock.ExpectGet("character:char-1").SetVal(s.storedJSON(char))
	s.mock.Regexp().ExpectSet("character:char-1", `.*"id":"char-1".*`, 0).SetVal("OK")

	char.Level = 4
	s.NoError(s.repo.Update(ctx, char))
}

func (s *RedisRepoTestSuite) TestUpdateNotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("character:char-1").RedisNil()

	err := s.repo.Update(ctx, s.testCharacter())
	s.Error(err)
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()
	char := s.testCharacter()

	s.mock.ExpectGet("character:char-1").SetVal(s.storedJSON(char))
	s.mock.ExpectDel("character:char-1").SetVal(1)
	s.mock.ExpectSRem("owner:owner-1:characters", "char-1").SetVal(1)
	s.mock.ExpectSRem("characters:all", "char-1").SetVal(1)

	s.NoError(s.repo.Delete(ctx, "char-1"))
}

func (s *RedisRepoTestSuite) TestDeleteNotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("character:missing").RedisNil()

	err := s.repo.Delete(ctx, "missing")
	s.Error(err)
	s.True(dnderr.IsNotFound(err))
}
