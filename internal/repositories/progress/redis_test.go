package progress_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/combo-tracker/internal/domain/combo"
	dnderr "github.com/KirkDiggler/combo-tracker/internal/errors"
	"github.com/KirkDiggler/combo-tracker/internal/repositories/progress"
	mockprogress "github.com/KirkDiggler/combo-tracker/internal/repositories/progress/mock"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	repo         progress.Repository
	mockCtrl     *gomock.Controller
	timeProvider *mockprogress.MockTimeProvider
	now          time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mockprogress.NewMockTimeProvider(s.mockCtrl)
	s.now = time.Date(2024, 3, 1, 20, 15, 0, 0, time.UTC)

	repo, err := progress.NewRedis(&progress.RedisRepoConfig{
		Client:       s.mockClient,
		TimeProvider: s.timeProvider,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) snapshotJSON(groupID combo.GroupID, index int) string {
	data, err := json.Marshal(progress.Snapshot{GroupID: groupID, Index: index, UpdatedAt: s.now})
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestNewRedis_RequiresClient() {
	_, err := progress.NewRedis(nil)
	s.True(dnderr.IsInvalidArgument(err))

	_, err = progress.NewRedis(&progress.RedisRepoConfig{})
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestSave() {
	ctx := context.Background()
	s.timeProvider.EXPECT().Now().Return(s.now).Times(2)

	// Happy path
	s.mock.ExpectSet("combo:progress:139", s.snapshotJSON(139, 2), 0).SetVal("OK")
	s.mock.ExpectSAdd("combo:progress:groups", "139").SetVal(1)

	snapshot := &progress.Snapshot{GroupID: 139, Index: 2}
	s.NoError(s.repo.Save(ctx, snapshot))
	s.Equal(s.now, snapshot.UpdatedAt)

	// Dependency error
	s.mock.ExpectSet("combo:progress:139", s.snapshotJSON(139, 2), 0).SetErr(errors.New("redis error"))

	err := s.repo.Save(ctx, &progress.Snapshot{GroupID: 139, Index: 2})
	s.Error(err)
	s.Equal(dnderr.CodeUnavailable, dnderr.GetCode(err))

	// Input validation
	s.True(dnderr.IsInvalidArgument(s.repo.Save(ctx, nil)))
	s.True(dnderr.IsInvalidArgument(s.repo.Save(ctx, &progress.Snapshot{GroupID: 1, Index: -1})))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()

	s.mock.ExpectGet("combo:progress:139").SetVal(s.snapshotJSON(139, 3))

	snapshot, err := s.repo.Get(ctx, 139)
	s.Require().NoError(err)
	s.Equal(combo.GroupID(139), snapshot.GroupID)
	s.Equal(3, snapshot.Index)
	s.True(s.now.Equal(snapshot.UpdatedAt))

	// Not found
	s.mock.ExpectGet("combo:progress:7").RedisNil()

	_, err = s.repo.Get(ctx, 7)
	s.True(dnderr.IsNotFound(err))
	s.Equal(combo.GroupID(7), dnderr.GetMeta(err)["group_id"])

	// Dependency error
	s.mock.ExpectGet("combo:progress:7").SetErr(errors.New("redis error"))

	_, err = s.repo.Get(ctx, 7)
	s.Equal(dnderr.CodeUnavailable, dnderr.GetCode(err))

	// Corrupt payload
	s.mock.ExpectGet("combo:progress:8").SetVal("{not json")

	_, err = s.repo.Get(ctx, 8)
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestList() {
	ctx := context.Background()
	s.mock.MatchExpectationsInOrder(false)

	s.mock.ExpectSMembers("combo:progress:groups").SetVal([]string{"9", "3"})
	s.mock.ExpectGet("combo:progress:9").SetVal(s.snapshotJSON(9, 1))
	s.mock.ExpectGet("combo:progress:3").SetVal(s.snapshotJSON(3, 0))

	snapshots, err := s.repo.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(snapshots, 2)
	s.Equal(combo.GroupID(3), snapshots[0].GroupID)
	s.Equal(combo.GroupID(9), snapshots[1].GroupID)
	s.Equal(1, snapshots[1].Index)
}

func (s *RedisRepoTestSuite) TestList_MissingMember() {
	ctx := context.Background()

	s.mock.ExpectSMembers("combo:progress:groups").SetVal([]string{"4"})
	s.mock.ExpectGet("combo:progress:4").RedisNil()

	_, err := s.repo.List(ctx)
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestList_Error() {
	s.mock.ExpectSMembers("combo:progress:groups").SetErr(errors.New("redis error"))

	_, err := s.repo.List(context.Background())
	s.Equal(dnderr.CodeUnavailable, dnderr.GetCode(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	s.mock.ExpectDel("combo:progress:139").SetVal(1)
	s.mock.ExpectSRem("combo:progress:groups", "139").SetVal(1)
	s.NoError(s.repo.Delete(ctx, 139))

	s.mock.ExpectDel("combo:progress:139").SetVal(0)
	s.mock.ExpectSRem("combo:progress:groups", "139").SetVal(0)
	s.True(dnderr.IsNotFound(s.repo.Delete(ctx, 139)))
}
