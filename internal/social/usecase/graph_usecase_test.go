package usecase_test

import (
	"context"
	"errors"
	"testing"

	apperrors "snapfeed/internal/shared/errors"
	"snapfeed/internal/shared/eventbus"
	"snapfeed/internal/shared/logger"
	"snapfeed/internal/shared/utils"
	"snapfeed/internal/social/domain/model"
	"snapfeed/internal/social/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type GraphUsecaseTestSuite struct {
	suite.Suite
	profiles *mockProfileRepository
	usecase  *usecase.GraphUsecase
}

func (suite *GraphUsecaseTestSuite) SetupTest() {
	suite.profiles = &mockProfileRepository{}
	suite.usecase = usecase.NewGraphUsecase(suite.profiles, eventbus.NewEventBus(nil), logger.NewLogger())
}

func callerCtx(userID string) context.Context {
	return utils.WithUserID(context.Background(), userID)
}

func (suite *GraphUsecaseTestSuite) TestFollow_Success() {
	ctx := callerCtx("alice")
	caller := &model.Profile{ID: "alice", Name: "Alice", Email: "a@x.co"}

	suite.profiles.On("GetByID", ctx, "alice").Return(caller, nil)
	suite.profiles.On("AddFollowing", ctx, "alice", "bob").Return(nil)
	suite.profiles.On("AddFollower", ctx, "bob", "alice").Return(nil)

	updated, err := suite.usecase.Follow(ctx, "bob")
	require.NoError(suite.T(), err)
	assert.Contains(suite.T(), updated.FollowingID, "bob")
	suite.profiles.AssertExpectations(suite.T())
}

func (suite *GraphUsecaseTestSuite) TestFollow_Idempotent() {
	ctx := callerCtx("alice")
	caller := &model.Profile{ID: "alice", FollowingID: []string{"bob"}}

	suite.profiles.On("GetByID", ctx, "alice").Return(caller, nil)

	updated, err := suite.usecase.Follow(ctx, "bob")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"bob"}, updated.FollowingID)
	suite.profiles.AssertNotCalled(suite.T(), "AddFollowing")
	suite.profiles.AssertNotCalled(suite.T(), "AddFollower")
}

func (suite *GraphUsecaseTestSuite) TestFollow_FirstWriteFails() {
	ctx := callerCtx("alice")
	caller := &model.Profile{ID: "alice"}

	suite.profiles.On("GetByID", ctx, "alice").Return(caller, nil)
	suite.profiles.On("AddFollowing", ctx, "alice", "bob").Return(errors.New("store down"))

	_, err := suite.usecase.Follow(ctx, "bob")
	assert.Error(suite.T(), err)
	suite.profiles.AssertNotCalled(suite.T(), "AddFollower")
}

func (suite *GraphUsecaseTestSuite) TestFollow_SecondWriteFailurePropagatesWithoutRollback() {
	ctx := callerCtx("alice")
	caller := &model.Profile{ID: "alice"}

	suite.profiles.On("GetByID", ctx, "alice").Return(caller, nil)
	suite.profiles.On("AddFollowing", ctx, "alice", "bob").Return(nil)
	suite.profiles.On("AddFollower", ctx, "bob", "alice").Return(errors.New("store down"))

	_, err := suite.usecase.Follow(ctx, "bob")
	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsPartialWrite(err))

	// the surviving first write is never undone
	suite.profiles.AssertNotCalled(suite.T(), "RemoveFollowing")
}

func (suite *GraphUsecaseTestSuite) TestFollow_SelfFollowRejected() {
	_, err := suite.usecase.Follow(callerCtx("alice"), "alice")
	assert.Error(suite.T(), err)
}

func (suite *GraphUsecaseTestSuite) TestFollow_NoIdentity() {
	_, err := suite.usecase.Follow(context.Background(), "bob")
	assert.ErrorIs(suite.T(), err, apperrors.ErrIdentityMissing)
}

func (suite *GraphUsecaseTestSuite) TestUnfollow_UndoesFollow() {
	ctx := callerCtx("alice")
	caller := &model.Profile{ID: "alice", FollowingID: []string{"bob", "carol"}}

	suite.profiles.On("GetByID", ctx, "alice").Return(caller, nil)
	suite.profiles.On("RemoveFollowing", ctx, "alice", "bob").Return(nil)
	suite.profiles.On("RemoveFollower", ctx, "bob", "alice").Return(nil)

	updated, err := suite.usecase.Unfollow(ctx, "bob")
	require.NoError(suite.T(), err)
	assert.NotContains(suite.T(), updated.FollowingID, "bob")
	assert.Contains(suite.T(), updated.FollowingID, "carol")
}

func (suite *GraphUsecaseTestSuite) TestUnfollow_NotFollowingIsNoOp() {
	ctx := callerCtx("alice")
	caller := &model.Profile{ID: "alice"}

	suite.profiles.On("GetByID", ctx, "alice").Return(caller, nil)

	updated, err := suite.usecase.Unfollow(ctx, "bob")
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), updated.FollowingID)
	suite.profiles.AssertNotCalled(suite.T(), "RemoveFollowing")
}

func (suite *GraphUsecaseTestSuite) TestUnfollow_ErrorsPropagate() {
	ctx := callerCtx("alice")
	caller := &model.Profile{ID: "alice", FollowingID: []string{"bob"}}

	suite.profiles.On("GetByID", ctx, "alice").Return(caller, nil)
	suite.profiles.On("RemoveFollowing", ctx, "alice", "bob").Return(errors.New("store down"))

	_, err := suite.usecase.Unfollow(ctx, "bob")
	assert.Error(suite.T(), err)
}

func (suite *GraphUsecaseTestSuite) TestIsFollowing() {
	ctx := callerCtx("alice")
	caller := &model.Profile{ID: "alice", FollowingID: []string{"bob"}}

	suite.profiles.On("GetByID", ctx, "alice").Return(caller, nil)

	assert.True(suite.T(), suite.usecase.IsFollowing(ctx, "bob"))
	assert.False(suite.T(), suite.usecase.IsFollowing(ctx, "carol"))
}

func (suite *GraphUsecaseTestSuite) TestIsFollowing_UnresolvedCallerIsFalse() {
	assert.False(suite.T(), suite.usecase.IsFollowing(context.Background(), "bob"))

	ctx := callerCtx("ghost")
	suite.profiles.On("GetByID", ctx, "ghost").Return(nil, apperrors.ErrProfileNotFound)
	assert.False(suite.T(), suite.usecase.IsFollowing(ctx, "bob"))
}

func (suite *GraphUsecaseTestSuite) TestFollowerCount() {
	ctx := context.Background()
	suite.profiles.On("GetByID", ctx, "bob").
		Return(&model.Profile{ID: "bob", FollowerID: []string{"alice", "carol"}}, nil)

	assert.Equal(suite.T(), 2, suite.usecase.FollowerCount(ctx, "bob"))
}

func (suite *GraphUsecaseTestSuite) TestFollowerCount_MissingListIsZero() {
	ctx := context.Background()
	suite.profiles.On("GetByID", ctx, "bob").Return(&model.Profile{ID: "bob"}, nil)

	assert.Equal(suite.T(), 0, suite.usecase.FollowerCount(ctx, "bob"))
}

func (suite *GraphUsecaseTestSuite) TestFollowerCount_ResolutionFailureIsZero() {
	ctx := context.Background()
	suite.profiles.On("GetByID", ctx, "ghost").Return(nil, errors.New("store down"))

	assert.Equal(suite.T(), 0, suite.usecase.FollowerCount(ctx, "ghost"))
	assert.Equal(suite.T(), 0, suite.usecase.FollowingCount(ctx, "ghost"))
}

func TestGraphUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(GraphUsecaseTestSuite))
}
